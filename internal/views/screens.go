package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/theme"
)

type PlanTaskData struct {
	ID          string
	Title       string
	Description string
	Time        string
	Priority    model.Priority
	Completed   bool
}

type PlanPanelData struct {
	DateLine     string
	DayLabel     string
	Completed    int
	Total        int
	HighPending  int
	ProgressView string
	Tasks        []PlanTaskData
	Cursor       int
}

type TodoItemData struct {
	ID        string
	Title     string
	DueDate   string
	Priority  model.Priority
	Completed bool
}

type FilterTabData struct {
	Label  string
	Count  int
	Active bool
}

type TodoPanelData struct {
	Filters      []FilterTabData
	Items        []TodoItemData
	Cursor       int
	EmptyMessage string
}

type OnboardingPanelData struct {
	Index    int
	Total    int
	Icon     string
	Title    string
	BodyView string
	IsLast   bool
}

type ProfilePanelData struct {
	Name         string
	Email        string
	SectionsView string
}

type FormFieldData struct {
	Label   string
	View    string
	Focused bool
}

type FormData struct {
	Title  string
	Fields []FormFieldData
	Hint   string
}

type TimePickerData struct {
	Hour        int
	Minute      int
	MinuteFocus bool
}

type HelpPanelData struct {
	Context  string
	Bindings []string
	HelpView string
}

const maxTitleWidth = 40

var iconGlyphs = map[string]string{
	"calendar-check": "[v]",
	"chart-line":     "[/]",
	"target":         "(o)",
}

func RenderPlanPanel(th theme.Theme, data PlanPanelData) string {
	var b strings.Builder
	b.WriteString(th.Title().Render(data.DateLine) + "\n")
	b.WriteString(th.Muted().Render(data.DayLabel) + "\n\n")
	b.WriteString(fmt.Sprintf("Completed %d | Total Tasks %d | High Priority %d\n",
		data.Completed, data.Total, data.HighPending))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	b.WriteString("\n")
	if len(data.Tasks) == 0 {
		b.WriteString(th.Muted().Render("No tasks scheduled for today"))
		return b.String()
	}
	for i, task := range data.Tasks {
		b.WriteString(renderPlanTask(th, task, i == data.Cursor) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderPlanTask(th theme.Theme, task PlanTaskData, selected bool) string {
	title := ansi.Truncate(task.Title, maxTitleWidth, "…")
	if task.Completed {
		title = th.Done().Render(title)
	}
	line := fmt.Sprintf("%s %s %s %s %s",
		cursorMark(selected),
		checkbox(task.Completed),
		th.Accent().Render(task.Time),
		title,
		th.Priority(task.Priority).Render(task.Priority.Label()),
	)
	if task.Description != "" {
		line += "\n      " + th.Muted().Render(task.Description)
	}
	return line
}

func RenderTodoPanel(th theme.Theme, data TodoPanelData) string {
	var b strings.Builder
	tabs := make([]string, 0, len(data.Filters))
	for _, f := range data.Filters {
		label := fmt.Sprintf("%s (%d)", f.Label, f.Count)
		if f.Active {
			tabs = append(tabs, th.ActiveTab().Render(label))
			continue
		}
		tabs = append(tabs, th.InactiveTab().Render(label))
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")
	if len(data.Items) == 0 {
		b.WriteString(th.Muted().Render(data.EmptyMessage))
		return b.String()
	}
	for i, item := range data.Items {
		title := ansi.Truncate(item.Title, maxTitleWidth, "…")
		if item.Completed {
			title = th.Done().Render(title)
		}
		line := fmt.Sprintf("%s %s %s %s",
			cursorMark(i == data.Cursor),
			checkbox(item.Completed),
			title,
			th.Priority(item.Priority).Render(item.Priority.Label()),
		)
		if item.DueDate != "" {
			line += th.Muted().Render(" due " + item.DueDate)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderOnboardingPanel(th theme.Theme, data OnboardingPanelData) string {
	var b strings.Builder
	glyph, ok := iconGlyphs[data.Icon]
	if !ok {
		glyph = "[*]"
	}
	b.WriteString(th.Accent().Render(glyph) + "\n\n")
	b.WriteString(th.Title().Render(data.Title) + "\n\n")
	b.WriteString(data.BodyView + "\n\n")
	b.WriteString(stepDots(th, data.Index, data.Total) + "\n")
	action := "Next"
	if data.IsLast {
		action = "Get Started"
	}
	b.WriteString(th.Muted().Render(fmt.Sprintf("step %d/%d  [enter] %s  [s] Skip", data.Index+1, data.Total, action)))
	return b.String()
}

func RenderProfilePanel(th theme.Theme, data ProfilePanelData) string {
	var b strings.Builder
	b.WriteString(th.ActiveTab().Render(initials(data.Name)) + "\n")
	b.WriteString(th.Title().Render(data.Name) + "\n")
	b.WriteString(th.Muted().Render(data.Email) + "\n\n")
	b.WriteString(data.SectionsView)
	return b.String()
}

func RenderForm(th theme.Theme, data FormData) string {
	var b strings.Builder
	b.WriteString(th.Title().Render(data.Title) + "\n\n")
	for _, f := range data.Fields {
		label := th.Muted().Render(f.Label + ":")
		if f.Focused {
			label = th.Accent().Render("> " + f.Label + ":")
		}
		b.WriteString(label + " " + f.View + "\n")
	}
	if data.Hint != "" {
		b.WriteString("\n" + th.Muted().Render(data.Hint))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTimePicker(th theme.Theme, data TimePickerData) string {
	hour := fmt.Sprintf("%02d", data.Hour)
	minute := fmt.Sprintf("%02d", data.Minute)
	focus := th.Accent().Bold(true).Reverse(true)
	if data.MinuteFocus {
		minute = focus.Render(minute)
	} else {
		hour = focus.Render(hour)
	}
	return fmt.Sprintf("%s\n\n  %s : %s\n\n%s",
		th.Title().Render("Select time"),
		hour, minute,
		th.Muted().Render("[up/down] adjust [left/right] field [enter] ok [esc] cancel"),
	)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command:\n%s\n\ntodo [!prio] <title> | plan <HH:MM> [!prio] <title>\nfilter <all|active|completed> | tab <plan|todo|profile>", inputView)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help: %s\n%s\n\n%s",
		strings.ToLower(data.Context),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func stepDots(th theme.Theme, index, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == index {
			dots[i] = th.Accent().Render("●")
		} else {
			dots[i] = th.Muted().Render("○")
		}
	}
	return strings.Join(dots, " ")
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
