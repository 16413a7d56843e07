package onboarding

type Step struct {
	Title       string
	Description string
	Icon        string
}

func DefaultSteps() []Step {
	return []Step{
		{
			Title:       "Plan Your Day",
			Description: "Organize your tasks and schedule your day for maximum productivity.",
			Icon:        "calendar-check",
		},
		{
			Title:       "Track Progress",
			Description: "Monitor your progress and stay on top of your goals with insightful analytics.",
			Icon:        "chart-line",
		},
		{
			Title:       "Focus on What Matters",
			Description: "Prioritize important tasks and focus on what truly matters to you.",
			Icon:        "target",
		},
	}
}

// Flow walks a fixed sequence of steps. Advance and Skip report true exactly
// when the flow hands control over to the main area.
type Flow struct {
	steps []Step
	index int
	done  bool
}

// New panics on an empty step list.
func New(steps []Step) *Flow {
	if len(steps) == 0 {
		panic("onboarding: at least one step is required")
	}
	return &Flow{steps: append([]Step(nil), steps...)}
}

func (f *Flow) Advance() bool {
	if f.done {
		return true
	}
	if f.index < len(f.steps)-1 {
		f.index++
		return false
	}
	f.done = true
	return true
}

func (f *Flow) Skip() bool {
	f.done = true
	return true
}

func (f *Flow) Index() int    { return f.index }
func (f *Flow) Len() int      { return len(f.steps) }
func (f *Flow) Done() bool    { return f.done }
func (f *Flow) Current() Step { return f.steps[f.index] }
func (f *Flow) IsLast() bool  { return f.index == len(f.steps)-1 }
