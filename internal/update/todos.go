package update

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/todo"
	"github.com/sandeepkv93/dayplan/internal/views"
)

func (m Model) handleTodoKey(msg tea.KeyMsg) Model {
	visible := m.Todo.Visible()
	switch msg.String() {
	case "j", "down":
		m.TodoCursor = clampCursor(m.TodoCursor+1, len(visible))
	case "k", "up":
		m.TodoCursor = clampCursor(m.TodoCursor-1, len(visible))
	case " ":
		if m.TodoCursor < len(visible) {
			item := visible[m.TodoCursor]
			if m.Todo.Toggle(item.ID) {
				m.log.WithField("todo_id", item.ID).Debug("todo toggled")
			}
			m.TodoCursor = clampCursor(m.TodoCursor, len(m.Todo.Visible()))
		}
	case "x":
		if m.TodoCursor < len(visible) {
			item := visible[m.TodoCursor]
			if m.Todo.Delete(item.ID) {
				m.log.WithField("todo_id", item.ID).Debug("todo deleted")
				m.Status = StatusBar{Text: fmt.Sprintf("deleted todo: %s", item.Title)}
			}
			m.TodoCursor = clampCursor(m.TodoCursor, len(m.Todo.Visible()))
		}
	case "f":
		m = m.setTodoFilter(m.Todo.Filter().Next())
	case "F":
		m = m.setTodoFilter(m.Todo.Filter().Prev())
	case "a":
		m = m.openTodoForm()
	}
	return m
}

func (m Model) setTodoFilter(f todo.Filter) Model {
	if m.Todo.SetFilter(f) {
		m.TodoCursor = 0
		m.log.WithField("filter", f).Debug("todo filter changed")
	}
	return m
}

func (m Model) openTodoForm() Model {
	f := &m.todoForm
	f.Active = true
	f.Focus = todoFieldTitle
	f.title.SetValue(m.Todo.Draft.Title)
	f.dueDate.SetValue(m.Todo.Draft.DueDate)
	f.title.CursorEnd()
	f.dueDate.CursorEnd()
	m.focusTodoField()
	return m
}

func (m *Model) focusTodoField() {
	f := &m.todoForm
	switch f.Focus {
	case todoFieldTitle:
		focusOnly(&f.title, &f.title, &f.dueDate)
	case todoFieldDueDate:
		focusOnly(&f.dueDate, &f.title, &f.dueDate)
	default:
		focusOnly(nil, &f.title, &f.dueDate)
	}
}

func (m *Model) syncTodoDraft() {
	m.Todo.Draft.Title = m.todoForm.title.Value()
	m.Todo.Draft.DueDate = m.todoForm.dueDate.Value()
}

func (m Model) handleTodoFormKey(msg tea.KeyMsg) Model {
	f := &m.todoForm
	switch msg.String() {
	case "esc":
		m.syncTodoDraft()
		f.Active = false
		focusOnly(nil, &f.title, &f.dueDate)
		return m
	case "tab":
		f.Focus = (f.Focus + 1) % todoFieldCount
		m.focusTodoField()
		return m
	case "shift+tab":
		f.Focus = (f.Focus + todoFieldCount - 1) % todoFieldCount
		m.focusTodoField()
		return m
	case "enter":
		m.syncTodoDraft()
		item, err := m.Todo.Submit()
		if m.afterTodoAdd(item, err) {
			f.Active = false
			f.Focus = todoFieldTitle
			f.title.SetValue(m.Todo.Draft.Title)
			f.dueDate.SetValue(m.Todo.Draft.DueDate)
			focusOnly(nil, &f.title, &f.dueDate)
		}
		return m
	}

	switch f.Focus {
	case todoFieldTitle:
		f.title = editInput(f.title, msg)
	case todoFieldDueDate:
		f.dueDate = editInput(f.dueDate, msg)
	case todoFieldPriority:
		switch msg.String() {
		case "left", "h":
			m.Todo.Draft.Priority = m.Todo.Draft.Priority.Prev()
		case "right", "l":
			m.Todo.Draft.Priority = m.Todo.Draft.Priority.Next()
		}
	}
	m.syncTodoDraft()
	return m
}

func (m *Model) afterTodoAdd(item model.TodoItem, err error) bool {
	if err != nil {
		entry := m.log.WithError(err)
		if errors.Is(err, model.ErrEmptyTitle) {
			entry.Debug("todo add rejected: empty title")
		} else {
			entry.Debug("todo add rejected")
		}
		return false
	}
	if idx := slices.IndexFunc(m.Todo.Visible(), func(t model.TodoItem) bool { return t.ID == item.ID }); idx >= 0 {
		m.TodoCursor = idx
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added todo: %s", item.Title)}
	m.log.WithField("todo_id", item.ID).Debug("todo added")
	return true
}

func (m Model) renderTodoPanel() string {
	counts := m.Todo.Counts()
	filters := make([]views.FilterTabData, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		filters = append(filters, views.FilterTabData{
			Label:  f.Label(),
			Count:  counts[f],
			Active: f == m.Todo.Filter(),
		})
	}
	visible := m.Todo.Visible()
	rows := make([]views.TodoItemData, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, views.TodoItemData{
			ID:        item.ID,
			Title:     item.Title,
			DueDate:   item.DueDate,
			Priority:  item.Priority,
			Completed: item.Completed,
		})
	}
	return views.RenderTodoPanel(m.Theme, views.TodoPanelData{
		Filters:      filters,
		Items:        rows,
		Cursor:       m.TodoCursor,
		EmptyMessage: m.Todo.Filter().EmptyMessage(),
	})
}

func (m Model) renderTodoForm() string {
	f := m.todoForm
	return views.RenderForm(m.Theme, views.FormData{
		Title: "New to-do",
		Fields: []views.FormFieldData{
			{Label: "Title", View: f.title.View(), Focused: f.Focus == todoFieldTitle},
			{Label: "Due", View: f.dueDate.View(), Focused: f.Focus == todoFieldDueDate},
			{Label: "Priority", View: m.Theme.Priority(m.Todo.Draft.Priority).Render(m.Todo.Draft.Priority.Label()), Focused: f.Focus == todoFieldPriority},
		},
		Hint: "[tab] field [enter] add [left/right] priority [esc] close",
	})
}
