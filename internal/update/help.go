package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/dayplan/internal/nav"
	"github.com/sandeepkv93/dayplan/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Context:  m.helpContext(),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) helpContext() string {
	if m.Nav.Route() == nav.RouteOnboarding {
		return "onboarding"
	}
	return string(m.Nav.Tab())
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.DailyPlan, Action: "switch to Daily Plan"},
		{Key: m.Keys.Todo, Action: "switch to To Do"},
		{Key: m.Keys.Profile, Action: "switch to Profile"},
		{Key: "tab", Action: "next tab"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) contextBindings() []KeyBinding {
	if m.Nav.Route() == nav.RouteOnboarding {
		return []KeyBinding{
			{Key: "enter", Action: "next step"},
			{Key: "s", Action: "skip onboarding"},
		}
	}
	switch m.Nav.Tab() {
	case nav.TabDailyPlan:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle done"},
			{Key: "x", Action: "delete task"},
			{Key: "a", Action: "add task"},
		}
	case nav.TabTodo:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle done"},
			{Key: "x", Action: "delete item"},
			{Key: "a", Action: "add item"},
			{Key: "f/F", Action: "next/previous filter"},
		}
	case nav.TabProfile:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	var all []KeyBinding
	if m.Nav.Route() == nav.RouteMainTabs {
		all = append(all, m.globalBindings()...)
	}
	all = append(all, m.contextBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
