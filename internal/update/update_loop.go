package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/nav"
	"github.com/sandeepkv93/dayplan/internal/plan"
	"github.com/sandeepkv93/dayplan/internal/todo"
	"github.com/sandeepkv93/dayplan/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dayplan")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		if h := typed.Height - 16; h > 4 {
			m.profileViewport.Height = h
		}
		return m, nil
	case SwitchTabMsg:
		return m.switchTab(typed.Tab), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.log.WithError(typed.Err).Error("app error")
		}
		return m, nil
	case OnboardingCompleteMsg:
		m.Nav.CompleteOnboarding()
		m.Status = StatusBar{Text: "welcome to dayplan"}
		m.log.Info("onboarding complete")
		return m, nil
	case TimePickedMsg:
		return m.applyTimePick(typed), nil
	case AddTaskMsg:
		task, err := m.Plan.Add(plan.Draft{
			Title:       typed.Title,
			Description: typed.Description,
			Time:        typed.Time,
			Priority:    priorityOrDefault(typed.Priority),
		})
		m.afterTaskAdd(task, err)
		return m, nil
	case AddTodoMsg:
		item, err := m.Todo.Add(todo.Draft{
			Title:    typed.Title,
			DueDate:  typed.DueDate,
			Priority: priorityOrDefault(typed.Priority),
		})
		m.afterTodoAdd(item, err)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return m.quit()
	}
	if m.picker.Active {
		return m.handlePickerKey(msg)
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Nav.Route() == nav.RouteOnboarding {
		switch keyStr {
		case m.Keys.Quit:
			return m.quit()
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handleOnboardingKey(msg)
	}
	if m.planForm.Active {
		return m.handlePlanFormKey(msg)
	}
	if m.todoForm.Active {
		return m.handleTodoFormKey(msg), nil
	}

	switch keyStr {
	case m.Keys.Quit:
		return m.quit()
	case m.Keys.Palette:
		return m.openPalette(), nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "esc":
		if m.HelpVisible {
			m.HelpVisible = false
			return m, nil
		}
		m.Nav.Back()
		return m, nil
	case m.Keys.DailyPlan:
		return m.switchTab(nav.TabDailyPlan), nil
	case m.Keys.Todo:
		return m.switchTab(nav.TabTodo), nil
	case m.Keys.Profile:
		return m.switchTab(nav.TabProfile), nil
	case "tab":
		m.log.WithField("tab", m.Nav.NextTab()).Debug("tab switched")
		return m, nil
	case "shift+tab":
		m.log.WithField("tab", m.Nav.PrevTab()).Debug("tab switched")
		return m, nil
	}

	switch m.Nav.Tab() {
	case nav.TabDailyPlan:
		return m.handlePlanKey(msg), nil
	case nav.TabTodo:
		return m.handleTodoKey(msg), nil
	case nav.TabProfile:
		var cmd tea.Cmd
		m.profileViewport, cmd = m.profileViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.log.Info("session ended")
	return m, tea.Quit
}

func (m Model) switchTab(t nav.Tab) Model {
	if m.Nav.SelectTab(t) {
		m.log.WithField("tab", t).Debug("tab switched")
	}
	return m
}

func priorityOrDefault(p model.Priority) model.Priority {
	if p == "" {
		return model.PriorityMedium
	}
	return p
}

func (m Model) View() string {
	var header, tabBar, left string
	if m.Nav.Route() == nav.RouteOnboarding {
		header = "dayplan | welcome"
		left = m.renderOnboardingPanel()
	} else {
		header = fmt.Sprintf("dayplan | %s", m.Nav.Tab())
		tabs := make([]views.TabData, 0, len(nav.Tabs))
		for i, t := range nav.Tabs {
			tabs = append(tabs, views.TabData{Label: string(t), Key: fmt.Sprint(i + 1), Active: t == m.Nav.Tab()})
		}
		tabBar = views.RenderTabBar(m.Theme, tabs)
		switch m.Nav.Tab() {
		case nav.TabTodo:
			left = m.renderTodoPanel()
		case nav.TabProfile:
			left = m.renderProfilePanel()
		default:
			left = m.renderPlanPanel()
		}
	}

	var right []string
	switch {
	case m.planForm.Active:
		right = append(right, m.renderPlanForm())
	case m.todoForm.Active:
		right = append(right, m.renderTodoForm())
	}
	if m.picker.Active {
		right = append(right, m.renderTimePicker())
	}
	if m.Palette.Active {
		right = append(right, m.renderCommandPalette())
	}
	if help := m.renderHelpIfVisible(); help != "" {
		right = append(right, help)
	}

	return views.RenderApp(m.Theme, views.AppData{
		Header:     header,
		TabBar:     tabBar,
		LeftPane:   left,
		RightPane:  strings.Join(right, "\n\n"),
		StatusLine: statusLine(m.Status),
		StatusErr:  m.Status.IsError,
		Footer:     m.footer(),
	})
}

func (m Model) footer() string {
	if m.Nav.Route() == nav.RouteOnboarding {
		return fmt.Sprintf("keys: enter next | s skip | %s help | %s quit", m.Keys.Help, m.Keys.Quit)
	}
	return fmt.Sprintf("keys: %s plan | %s todo | %s profile | %s cmd | %s help | %s quit",
		m.Keys.DailyPlan, m.Keys.Todo, m.Keys.Profile, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
