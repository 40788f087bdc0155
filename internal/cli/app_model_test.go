package cli

import (
	"strings"
	"testing"

	"github.com/Geetanshgarg/future-gaze/internal/testutil"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	captures   bool
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return nil }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) CapturesInput() bool      { return v.captures }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtIntake(t *testing.T) {
	m := newAppModel(testApp(t), nil)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewIntake, m.activeView().ID())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	v2 := newStubView(ViewResults, "Results", "results view")
	v3 := newStubView(ViewDashboard, "Dashboard", "dashboard view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(replaceViewMsg{view: v3})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v3, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewIntake, m.activeView().ID())
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	v := newStubView(ViewResults, "Results", "results")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 26, m.state.ContentHeight())
	require.Len(t, v.updateSeen, 1)
	assert.IsType(t, tea.WindowSizeMsg{}, v.updateSeen[0])
}

func TestAppModel_KeyHandling(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		m.viewStack = []View{newStubView(ViewResults, "Results", "results")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("capturing view receives q and esc", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		v := newStubView(ViewIntake, "Assessment", "form")
		v.captures = true
		m.viewStack = []View{newStubView(ViewResults, "Results", ""), v}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)

		assert.False(t, m.quitting)
		require.Len(t, m.viewStack, 2)
		require.Len(t, v.updateSeen, 2)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc pops back stack", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		m.viewStack = []View{
			newStubView(ViewResults, "Results", "results"),
			newStubView(ViewDashboard, "Dashboard", "dashboard"),
		}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Nil(t, cmd)
		require.Len(t, m.viewStack, 1)
		assert.Equal(t, ViewResults, m.activeView().ID())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	})
}

func TestAppModel_IntakeCompleteSwapsInResults(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	rec := testutil.NewTestAnswers(testutil.WithName("Asha Verma"))

	model, cmd := m.Update(intakeCompleteMsg{record: rec})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewResults, m.activeView().ID())
	assert.Same(t, rec, m.state.Handoff)
	assert.Contains(t, stripANSI(m.View()), "[Asha Verma]")
}

func TestAppModel_IntakeCancelled(t *testing.T) {
	t.Run("quits at the root", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		model, cmd := m.Update(intakeCancelledMsg{})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.cancelled)
		assert.True(t, m.quitting)
	})

	t.Run("pops when stacked", func(t *testing.T) {
		m := newAppModel(testApp(t), nil)
		m.viewStack = append([]View{newStubView(ViewResults, "Results", "")}, m.viewStack...)
		model, cmd := m.Update(intakeCancelledMsg{})
		m = model.(appModel)
		assert.Nil(t, cmd)
		assert.False(t, m.quitting)
		require.Len(t, m.viewStack, 1)
		assert.Equal(t, ViewResults, m.activeView().ID())
	})
}

func TestAppModel_ViewChrome(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	m.viewStack = []View{
		newStubView(ViewResults, "Results", "results body"),
		newStubView(ViewDashboard, "Dashboard", "dashboard body"),
	}
	model, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = model.(appModel)

	out := stripANSI(m.View())
	assert.Contains(t, out, "future-gaze › Results › Dashboard")
	assert.Contains(t, out, "dashboard body")
	assert.Contains(t, out, "esc: back")
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.False(t, viewCapturesInput(newStubView(ViewResults, "Results", "")))

	v := newStubView(ViewIntake, "Assessment", "")
	v.captures = true
	assert.True(t, viewCapturesInput(v))
}
