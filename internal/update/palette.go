package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/commands"
	"github.com/sandeepkv93/dayplan/internal/nav"
	"github.com/sandeepkv93/dayplan/internal/plan"
	"github.com/sandeepkv93/dayplan/internal/todo"
	"github.com/sandeepkv93/dayplan/internal/views"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = editInput(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.WithError(err).WithField("input", raw).Warn("palette command rejected")
		return m.closePalette()
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Todo: func(a commands.TodoArgs) (commands.Result, error) {
			item, err := m.Todo.Add(todo.Draft{Title: a.Title, Priority: a.Priority})
			if !m.afterTodoAdd(item, err) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Nav.SelectTab(nav.TabTodo)
			return commands.Result{Message: fmt.Sprintf("added todo: %s", item.Title)}, nil
		},
		Plan: func(a commands.PlanArgs) (commands.Result, error) {
			task, err := m.Plan.Add(plan.Draft{Title: a.Title, Time: a.Time, Priority: a.Priority})
			if !m.afterTaskAdd(task, err) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.Nav.SelectTab(nav.TabDailyPlan)
			return commands.Result{Message: fmt.Sprintf("added task: %s at %s", task.Title, task.Time)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			m = m.setTodoFilter(a.Filter)
			m.Nav.SelectTab(nav.TabTodo)
			return commands.Result{Message: fmt.Sprintf("filter: %s", a.Filter.Label())}, nil
		},
		Tab: func(a commands.TabArgs) (commands.Result, error) {
			m = m.switchTab(a.Tab)
			return commands.Result{Message: fmt.Sprintf("switched to %s", a.Tab)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.WithError(err).WithField("input", raw).Warn("palette command failed")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.log.WithField("command", cmd.Type).Debug("palette command executed")
	}
	return m.closePalette()
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
