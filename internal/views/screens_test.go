package views

import (
	"strings"
	"testing"

	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/theme"
)

func TestRenderPlanPanel(t *testing.T) {
	out := RenderPlanPanel(theme.Default(), PlanPanelData{
		DateLine:    "Monday, February 9",
		DayLabel:    "Today",
		Completed:   1,
		Total:       2,
		HighPending: 1,
		Tasks: []PlanTaskData{
			{ID: "1", Title: "Morning Routine", Time: "08:00", Priority: model.PriorityMedium, Completed: true},
			{ID: "2", Title: "Team Meeting", Description: "Weekly sync", Time: "10:30", Priority: model.PriorityHigh},
		},
		Cursor: 1,
	})
	for _, want := range []string{
		"Monday, February 9",
		"Today",
		"Completed 1 | Total Tasks 2 | High Priority 1",
		"[x] 08:00 Morning Routine",
		"> [ ] 10:30 Team Meeting High",
		"Weekly sync",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in plan panel:\n%s", want, out)
		}
	}
}

func TestRenderPlanPanelEmpty(t *testing.T) {
	out := RenderPlanPanel(theme.Default(), PlanPanelData{DateLine: "d", DayLabel: "Today"})
	if !strings.Contains(out, "No tasks scheduled for today") {
		t.Fatalf("expected empty message:\n%s", out)
	}
}

func TestRenderTodoPanel(t *testing.T) {
	out := RenderTodoPanel(theme.Default(), TodoPanelData{
		Filters: []FilterTabData{
			{Label: "All", Count: 2, Active: true},
			{Label: "Active", Count: 1},
			{Label: "Completed", Count: 1},
		},
		Items: []TodoItemData{
			{ID: "a", Title: "Call mom", Priority: model.PriorityLow},
			{ID: "b", Title: "Pay rent", DueDate: "Friday", Priority: model.PriorityHigh, Completed: true},
		},
	})
	for _, want := range []string{"All (2)", "Active (1)", "Completed (1)", "> [ ] Call mom Low", "[x] Pay rent High due Friday"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in todo panel:\n%s", want, out)
		}
	}

	empty := RenderTodoPanel(theme.Default(), TodoPanelData{EmptyMessage: "No completed tasks yet!"})
	if !strings.Contains(empty, "No completed tasks yet!") {
		t.Fatalf("expected empty message:\n%s", empty)
	}
}

func TestRenderOnboardingPanel(t *testing.T) {
	out := RenderOnboardingPanel(theme.Default(), OnboardingPanelData{
		Index: 2, Total: 3, Icon: "target", Title: "Focus on What Matters", BodyView: "body", IsLast: true,
	})
	for _, want := range []string{"(o)", "Focus on What Matters", "step 3/3", "Get Started", "[s] Skip"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in onboarding panel:\n%s", want, out)
		}
	}
	if strings.Count(out, "○") != 2 || strings.Count(out, "●") != 1 {
		t.Fatalf("unexpected step dots:\n%s", out)
	}
}

func TestRenderProfilePanelInitials(t *testing.T) {
	out := RenderProfilePanel(theme.Default(), ProfilePanelData{Name: "John Doe", Email: "john.doe@example.com"})
	for _, want := range []string{"JD", "John Doe", "john.doe@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in profile panel:\n%s", want, out)
		}
	}
	if got := initials("   "); got != "?" {
		t.Fatalf("initials of blank name = %q", got)
	}
}

func TestRenderTimePickerAndForm(t *testing.T) {
	out := RenderTimePicker(theme.Default(), TimePickerData{Hour: 9, Minute: 5})
	if !strings.Contains(out, "09 : 05") {
		t.Fatalf("unexpected picker:\n%s", out)
	}
	form := RenderForm(theme.Default(), FormData{
		Title:  "New task",
		Fields: []FormFieldData{{Label: "Title", View: "Standup", Focused: true}, {Label: "Time", View: "09:00"}},
	})
	if !strings.Contains(form, "> Title: Standup") || !strings.Contains(form, "Time: 09:00") {
		t.Fatalf("unexpected form:\n%s", form)
	}
}

func TestRenderMarkdownFallback(t *testing.T) {
	if RenderMarkdown("   ", "light") != "" {
		t.Fatal("blank markdown should render empty")
	}
	out := RenderMarkdown("# Account", "no-such-style")
	if out != "# Account" {
		t.Fatalf("expected raw fallback, got %q", out)
	}
}

func TestRenderAppIncludesStatus(t *testing.T) {
	out := RenderApp(theme.Default(), AppData{
		Header:     "dayplan",
		LeftPane:   "left",
		RightPane:  "right",
		StatusLine: "status: error: boom",
		StatusErr:  true,
		Footer:     "q quit",
	})
	for _, want := range []string{"dayplan", "left", "right", "status: error: boom", "q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in app view:\n%s", want, out)
		}
	}
}

func TestLongTitlesAreTruncated(t *testing.T) {
	long := strings.Repeat("a", 60)
	out := RenderTodoPanel(theme.Default(), TodoPanelData{
		Items: []TodoItemData{{ID: "1", Title: long, Priority: model.PriorityLow}},
	})
	if strings.Contains(out, long) {
		t.Fatalf("expected truncated title:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("a", maxTitleWidth-1)+"…") {
		t.Fatalf("expected ellipsis tail:\n%s", out)
	}
}
