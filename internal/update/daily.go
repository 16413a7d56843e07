package update

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/views"
	"github.com/sirupsen/logrus"
)

func (m Model) handlePlanKey(msg tea.KeyMsg) Model {
	tasks := m.Plan.Tasks()
	switch msg.String() {
	case "j", "down":
		m.PlanCursor = clampCursor(m.PlanCursor+1, len(tasks))
	case "k", "up":
		m.PlanCursor = clampCursor(m.PlanCursor-1, len(tasks))
	case " ":
		if m.PlanCursor < len(tasks) {
			task := tasks[m.PlanCursor]
			if m.Plan.Toggle(task.ID) {
				m.log.WithField("task_id", task.ID).Debug("task toggled")
			}
		}
	case "x":
		if m.PlanCursor < len(tasks) {
			task := tasks[m.PlanCursor]
			if m.Plan.Delete(task.ID) {
				m.log.WithField("task_id", task.ID).Debug("task deleted")
				m.Status = StatusBar{Text: fmt.Sprintf("deleted task: %s", task.Title)}
			}
			m.PlanCursor = clampCursor(m.PlanCursor, m.Plan.Len())
		}
	case "a":
		m = m.openPlanForm()
	}
	return m
}

func (m Model) openPlanForm() Model {
	m.planForm.Active = true
	m.planForm.Focus = planFieldTitle
	m.planForm.title.SetValue(m.Plan.Draft.Title)
	m.planForm.description.SetValue(m.Plan.Draft.Description)
	m.planForm.title.CursorEnd()
	m.planForm.description.CursorEnd()
	m.focusPlanField()
	return m
}

func (m *Model) focusPlanField() {
	f := &m.planForm
	switch f.Focus {
	case planFieldTitle:
		focusOnly(&f.title, &f.title, &f.description)
	case planFieldDescription:
		focusOnly(&f.description, &f.title, &f.description)
	default:
		focusOnly(nil, &f.title, &f.description)
	}
}

func (m *Model) syncPlanDraft() {
	m.Plan.Draft.Title = m.planForm.title.Value()
	m.Plan.Draft.Description = m.planForm.description.Value()
}

func (m Model) handlePlanFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	f := &m.planForm
	switch msg.String() {
	case "esc":
		m.syncPlanDraft()
		f.Active = false
		focusOnly(nil, &f.title, &f.description)
		return m, nil
	case "tab":
		f.Focus = (f.Focus + 1) % planFieldCount
		m.focusPlanField()
		return m, nil
	case "shift+tab":
		f.Focus = (f.Focus + planFieldCount - 1) % planFieldCount
		m.focusPlanField()
		return m, nil
	case "enter":
		if f.Focus == planFieldTime {
			m = m.openTimePicker()
			return m, nil
		}
		m.syncPlanDraft()
		task, err := m.Plan.Submit()
		if m.afterTaskAdd(task, err) {
			m = m.closePlanForm()
		}
		return m, nil
	}

	switch f.Focus {
	case planFieldTitle:
		f.title = editInput(f.title, msg)
	case planFieldDescription:
		f.description = editInput(f.description, msg)
	case planFieldPriority:
		switch msg.String() {
		case "left", "h":
			m.Plan.Draft.Priority = m.Plan.Draft.Priority.Prev()
		case "right", "l":
			m.Plan.Draft.Priority = m.Plan.Draft.Priority.Next()
		}
	}
	m.syncPlanDraft()
	return m, nil
}

func (m Model) closePlanForm() Model {
	f := &m.planForm
	f.Active = false
	f.Focus = planFieldTitle
	f.title.SetValue(m.Plan.Draft.Title)
	f.description.SetValue(m.Plan.Draft.Description)
	focusOnly(nil, &f.title, &f.description)
	return m
}

// afterTaskAdd reports whether the add succeeded. Rejections are silent apart
// from a debug log entry.
func (m *Model) afterTaskAdd(task model.ScheduledTask, err error) bool {
	if err != nil {
		entry := m.log.WithError(err)
		if errors.Is(err, model.ErrEmptyTitle) {
			entry.Debug("task add rejected: empty title")
		} else {
			entry.Debug("task add rejected")
		}
		return false
	}
	m.PlanCursor = slices.IndexFunc(m.Plan.Tasks(), func(t model.ScheduledTask) bool { return t.ID == task.ID })
	m.Status = StatusBar{Text: fmt.Sprintf("added task: %s at %s", task.Title, task.Time)}
	m.log.WithFields(logrus.Fields{"task_id": task.ID, "time": task.Time}).Debug("task added")
	return true
}

func (m Model) renderPlanPanel() string {
	stats := m.Plan.Stats()
	date, day := m.Plan.Heading()
	tasks := m.Plan.Tasks()
	rows := make([]views.PlanTaskData, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, views.PlanTaskData{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Time:        t.Time,
			Priority:    t.Priority,
			Completed:   t.Completed,
		})
	}
	return views.RenderPlanPanel(m.Theme, views.PlanPanelData{
		DateLine:     date,
		DayLabel:     day,
		Completed:    stats.Completed,
		Total:        stats.Total,
		HighPending:  stats.HighPending,
		ProgressView: m.dayProgress.ViewAs(stats.Progress()),
		Tasks:        rows,
		Cursor:       m.PlanCursor,
	})
}

func (m Model) renderPlanForm() string {
	f := m.planForm
	return views.RenderForm(m.Theme, views.FormData{
		Title: "New scheduled task",
		Fields: []views.FormFieldData{
			{Label: "Title", View: f.title.View(), Focused: f.Focus == planFieldTitle},
			{Label: "Description", View: f.description.View(), Focused: f.Focus == planFieldDescription},
			{Label: "Time", View: m.Plan.Draft.Time, Focused: f.Focus == planFieldTime},
			{Label: "Priority", View: m.Theme.Priority(m.Plan.Draft.Priority).Render(m.Plan.Draft.Priority.Label()), Focused: f.Focus == planFieldPriority},
		},
		Hint: "[tab] field [enter] add (on time: pick) [left/right] priority [esc] close",
	})
}
