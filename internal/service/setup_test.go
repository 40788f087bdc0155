package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/Geetanshgarg/future-gaze/internal/db"
	"github.com/Geetanshgarg/future-gaze/internal/repository"
	"github.com/Geetanshgarg/future-gaze/internal/testutil"
)

const testSlotKey = "futureGazeFormData"

type testEnv struct {
	db          *sql.DB
	slots       *repository.SQLiteAnswerSlotRepo
	submissions *repository.SQLiteSubmissionRepo
	events      *recordingObserver
	intake      IntakeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestEnvWithUoW(t, database, testutil.NewTestUoW(database))
}

func newTestEnvWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *testEnv {
	t.Helper()
	env := &testEnv{
		db:          database,
		slots:       repository.NewSQLiteAnswerSlotRepo(database),
		submissions: repository.NewSQLiteSubmissionRepo(database),
		events:      &recordingObserver{},
	}
	env.intake = NewIntakeService(testSlotKey, env.slots, env.submissions, uow, env.events)
	return env
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
