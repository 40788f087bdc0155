package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/Geetanshgarg/future-gaze/internal/intake"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// transitionDoneMsg clears the animating flag set by a step change. The seq
// guards against a stale tick clearing a newer transition.
type transitionDoneMsg struct{ seq int }

var (
	keyBack   = key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "previous step"))
	keyCancel = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyNext   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next"))
)

// intakeView runs the intake wizard one huh form per step. The wizard is the
// source of truth for the step index; the form is rebuilt on every move.
type intakeView struct {
	state   *SharedState
	wizard  *intake.Wizard
	form    *huh.Form
	scratch *stepScratch
	bar     progress.Model

	animating     bool
	transitionSeq int
	submitErr     error
}

func newIntakeView(state *SharedState, rec *domain.AnswerRecord) *intakeView {
	v := &intakeView{
		state:  state,
		wizard: intake.New(rec, state.App.Intake),
		bar: progress.New(
			progress.WithSolidFill(string(formatter.ColorHeader)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
	}
	v.rebuild()
	return v
}

func (v *intakeView) ID() ViewID          { return ViewIntake }
func (v *intakeView) Title() string       { return "Assessment" }
func (v *intakeView) CapturesInput() bool { return true }

func (v *intakeView) ShortHelp() []key.Binding {
	if v.wizard.Index() == 0 {
		return []key.Binding{keyNext, keyCancel}
	}
	return []key.Binding{keyNext, keyBack, keyCancel}
}

func (v *intakeView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *intakeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.bar.Width = min(max(msg.Width-20, 10), 60)

	case transitionDoneMsg:
		if msg.seq == v.transitionSeq {
			v.animating = false
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyCancel):
			return v, func() tea.Msg { return intakeCancelledMsg{} }
		case key.Matches(msg, keyBack):
			return v, v.back()
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.commit())
	}
	return v, cmd
}

// commit applies the finished form to the wizard and asks it to advance.
func (v *intakeView) commit() tea.Cmd {
	v.scratch.apply(v.wizard.Current(), v.wizard)
	v.submitErr = nil

	out, err := v.wizard.Next(context.Background())
	log := v.state.App.logger()
	if err != nil {
		log.Error("intake submit failed", zap.Error(err))
		v.submitErr = err
		v.rebuild()
		return v.form.Init()
	}

	log.Debug("intake step",
		zap.String("outcome", out.String()),
		zap.Int("index", v.wizard.Index()),
		zap.String("step", v.wizard.Current().Label()),
	)

	switch out {
	case intake.OutcomeCompleted:
		rec := v.wizard.Record()
		return func() tea.Msg { return intakeCompleteMsg{record: rec} }
	case intake.OutcomeAdvanced:
		v.rebuild()
		return tea.Batch(v.form.Init(), v.startTransition())
	default:
		v.rebuild()
		return v.form.Init()
	}
}

func (v *intakeView) back() tea.Cmd {
	if v.wizard.Index() == 0 {
		return nil
	}
	v.scratch.apply(v.wizard.Current(), v.wizard)
	v.wizard.Previous()
	v.submitErr = nil
	v.rebuild()
	return tea.Batch(v.form.Init(), v.startTransition())
}

func (v *intakeView) rebuild() {
	v.scratch = newStepScratch(v.wizard.Record())
	v.form = stepForm(v.wizard.Current(), v.wizard.Record(), v.scratch)
}

func (v *intakeView) startTransition() tea.Cmd {
	d := v.state.App.Transition
	if d <= 0 {
		v.animating = false
		return nil
	}
	v.transitionSeq++
	v.animating = true
	seq := v.transitionSeq
	return tea.Tick(d, func(time.Time) tea.Msg { return transitionDoneMsg{seq: seq} })
}

func (v *intakeView) View() string {
	var b strings.Builder

	w := v.wizard
	titleStyle := formatter.StyleHeader
	if v.animating {
		titleStyle = formatter.StyleDim
	}
	fmt.Fprintf(&b, "%s %s\n",
		formatter.Dim(fmt.Sprintf("Step %d of %d ·", w.Index()+1, w.Len())),
		titleStyle.Render(w.Current().Label()))
	fmt.Fprintf(&b, "%s %s\n\n",
		v.bar.ViewAs(w.Progress()/100),
		formatter.Dim(fmt.Sprintf("%.0f%% complete", w.Progress())))

	b.WriteString(v.form.View())
	b.WriteString("\n")

	if errs := formatter.FormatFieldErrors(w.Errors()); errs != "" {
		b.WriteString("\n")
		b.WriteString(errs)
	}
	if v.submitErr != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render("Could not save your answers: " + v.submitErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
