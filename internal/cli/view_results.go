package cli

import (
	"context"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/Geetanshgarg/future-gaze/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type resultsLoadedMsg struct {
	resp *contract.ResultsResponse
	err  error
}

var (
	keyDashboard = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard"))
	keyRetake    = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "retake"))
	keyQuit      = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	keyRefresh   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
)

// resultsView shows the recommendations for the handoff record, or for the
// stored slot when the session has not completed an intake.
type resultsView struct {
	state   *SharedState
	vp      viewport.Model
	resp    *contract.ResultsResponse
	err     error
	loading bool
}

func newResultsView(state *SharedState) *resultsView {
	return &resultsView{
		state:   state,
		vp:      newContentViewport(state),
		loading: true,
	}
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "Results" }

func (v *resultsView) ShortHelp() []key.Binding {
	return []key.Binding{keyDashboard, keyRetake, keyQuit}
}

func (v *resultsView) Init() tea.Cmd {
	svc := v.state.App.Results
	req := contract.ResultsRequest{Answers: v.state.Handoff}
	return func() tea.Msg {
		resp, err := svc.Results(context.Background(), req)
		return resultsLoadedMsg{resp: resp, err: err}
	}
}

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		v.loading = false
		v.resp, v.err = msg.resp, msg.err
		v.vp.SetContent(v.render())
		v.vp.GotoTop()
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyDashboard):
			d := newDashboardView(v.state)
			return v, pushView(d)
		case key.Matches(msg, keyRetake):
			var rec *domain.AnswerRecord
			if v.state.Handoff != nil {
				rec = v.state.Handoff.Clone()
			}
			return v, replaceView(newIntakeView(v.state, rec))
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *resultsView) render() string {
	if v.err != nil {
		return formatter.StyleRed.Render("Could not load results: " + v.err.Error())
	}
	return formatter.FormatResults(v.resp)
}

func (v *resultsView) View() string {
	if v.loading {
		return formatter.Dim("Loading results...")
	}
	return v.vp.View()
}

// newContentViewport returns a viewport sized to the content area.
func newContentViewport(state *SharedState) viewport.Model {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	vp.MouseWheelEnabled = true
	return vp
}
