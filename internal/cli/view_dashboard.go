package cli

import (
	"context"

	"github.com/Geetanshgarg/future-gaze/internal/cli/formatter"
	"github.com/Geetanshgarg/future-gaze/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type dashboardLoadedMsg struct {
	resp *contract.DashboardResponse
	err  error
}

// dashboardView renders the progress dashboard in a scrollable viewport.
type dashboardView struct {
	state   *SharedState
	vp      viewport.Model
	resp    *contract.DashboardResponse
	err     error
	loading bool
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		vp:      newContentViewport(state),
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{keyRefresh, keyQuit}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

func (v *dashboardView) load() tea.Cmd {
	svc := v.state.App.Dashboard
	return func() tea.Msg {
		resp, err := svc.Dashboard(context.Background())
		return dashboardLoadedMsg{resp: resp, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.resp, v.err = msg.resp, msg.err
		if v.err != nil {
			v.vp.SetContent(formatter.StyleRed.Render("Could not load dashboard: " + v.err.Error()))
		} else {
			v.vp.SetContent(formatter.FormatDashboard(v.resp))
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, keyRefresh) {
			v.loading = true
			return v, v.load()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *dashboardView) View() string {
	if v.loading {
		return formatter.Dim("Loading dashboard...")
	}
	return v.vp.View()
}
