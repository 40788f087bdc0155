package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Geetanshgarg/future-gaze/internal/cli"
	"github.com/Geetanshgarg/future-gaze/internal/config"
	"github.com/Geetanshgarg/future-gaze/internal/db"
	"github.com/Geetanshgarg/future-gaze/internal/logging"
	"github.com/Geetanshgarg/future-gaze/internal/repository"
	"github.com/Geetanshgarg/future-gaze/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Options{})
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Settings{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database ready", zap.String("path", cfg.DBPath))

	// Wire repositories
	slotRepo := repository.NewSQLiteAnswerSlotRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	observer := service.NewZapUseCaseObserver(logger)
	intakeSvc := service.NewIntakeService(cfg.SlotKey, slotRepo, submissionRepo, uow, observer)

	app := &cli.App{
		Intake:     intakeSvc,
		Results:    service.NewResultsService(intakeSvc, observer),
		Catalog:    service.NewCatalogService(observer),
		Dashboard:  service.NewDashboardService(intakeSvc, submissionRepo, observer),
		Transition: cfg.Transition,
		Logger:     logger,
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
