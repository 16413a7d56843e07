package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type planField int

const (
	planFieldTitle planField = iota
	planFieldDescription
	planFieldTime
	planFieldPriority
	planFieldCount
)

type planForm struct {
	Active      bool
	Focus       planField
	title       textinput.Model
	description textinput.Model
}

func newPlanForm() planForm {
	return planForm{
		title:       newFieldInput("Task title"),
		description: newFieldInput("Optional description"),
	}
}

type todoField int

const (
	todoFieldTitle todoField = iota
	todoFieldDueDate
	todoFieldPriority
	todoFieldCount
)

type todoForm struct {
	Active  bool
	Focus   todoField
	title   textinput.Model
	dueDate textinput.Model
}

func newTodoForm() todoForm {
	return todoForm{
		title:   newFieldInput("What needs to be done?"),
		dueDate: newFieldInput("Optional due date"),
	}
}

func newFieldInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 40
	return in
}

// editInput applies a key to a text field. Runes and backspace always act on
// the end of the value.
func editInput(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	switch msg.Type {
	case tea.KeyRunes:
		in.SetValue(in.Value() + string(msg.Runes))
		in.CursorEnd()
		return in
	case tea.KeySpace:
		in.SetValue(in.Value() + " ")
		in.CursorEnd()
		return in
	case tea.KeyBackspace:
		runes := []rune(in.Value())
		if len(runes) > 0 {
			in.SetValue(string(runes[:len(runes)-1]))
		}
		in.CursorEnd()
		return in
	}
	in, _ = in.Update(msg)
	return in
}

func focusOnly(active *textinput.Model, all ...*textinput.Model) {
	for _, in := range all {
		if in == active {
			in.Focus()
			continue
		}
		in.Blur()
	}
}
