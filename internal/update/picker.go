package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/plan"
	"github.com/sandeepkv93/dayplan/internal/views"
)

// timePicker is modal: while active it receives every key and ends with
// exactly one TimePickedMsg.
type timePicker struct {
	Active      bool
	Clock       model.Clock
	MinuteFocus bool
}

func (m Model) openTimePicker() Model {
	c, err := model.ParseClock(m.Plan.Draft.Time)
	if err != nil {
		c, _ = model.ParseClock(m.Plan.NewDraft().Time)
	}
	m.picker = timePicker{Active: true, Clock: c}
	return m
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := &m.picker
	switch msg.String() {
	case "up", "k":
		p.Clock = p.step(1)
	case "down", "j":
		p.Clock = p.step(-1)
	case "left", "h":
		p.MinuteFocus = false
	case "right", "l":
		p.MinuteFocus = true
	case "enter":
		value := p.Clock.String()
		p.Active = false
		return m, func() tea.Msg { return TimePickedMsg{Value: value, Selected: true} }
	case "esc":
		p.Active = false
		return m, func() tea.Msg { return TimePickedMsg{Selected: false} }
	}
	return m, nil
}

func (p timePicker) step(n int) model.Clock {
	if p.MinuteFocus {
		return p.Clock.AddMinutes(n)
	}
	return p.Clock.AddHours(n)
}

func (m Model) applyTimePick(msg TimePickedMsg) Model {
	if m.Plan.PickTime(plan.TimePick{Value: msg.Value, Selected: msg.Selected}) {
		m.log.WithField("time", msg.Value).Debug("draft time picked")
	}
	return m
}

func (m Model) renderTimePicker() string {
	return views.RenderTimePicker(m.Theme, views.TimePickerData{
		Hour:        m.picker.Clock.Hour,
		Minute:      m.picker.Clock.Minute,
		MinuteFocus: m.picker.MinuteFocus,
	})
}
