// Package plan holds the daily plan: scheduled tasks for today kept in
// time-of-day order, plus the draft being composed in the add form.
package plan

import (
	"slices"
	"strings"
	"time"

	"github.com/sandeepkv93/dayplan/internal/model"
)

// Draft is the not-yet-committed add form content.
type Draft struct {
	Title       string
	Description string
	Time        string
	Priority    model.Priority
}

// TimePick is the single result delivered by the modal time picker.
type TimePick struct {
	Value    string
	Selected bool
}

// Stats are derived from the current tasks on every call.
type Stats struct {
	Completed   int
	Total       int
	HighPending int
}

type Options struct {
	IDs  model.IDSource
	Now  func() time.Time
	Seed bool
}

type Planner struct {
	Draft Draft
	tasks []model.ScheduledTask
	ids   model.IDSource
	now   func() time.Time
}

func New(opts Options) *Planner {
	p := &Planner{
		ids: opts.IDs,
		now: opts.Now,
	}
	if p.ids == nil {
		p.ids = model.UUIDSource{}
	}
	if p.now == nil {
		p.now = time.Now
	}
	if opts.Seed {
		p.tasks = SeedTasks()
	}
	p.Draft = p.NewDraft()
	return p
}

// SeedTasks returns the demo plan shown on a fresh launch.
func SeedTasks() []model.ScheduledTask {
	return []model.ScheduledTask{
		{ID: "1", Title: "Morning Routine", Description: "Exercise, shower, and breakfast", Time: "08:00", Priority: model.PriorityMedium},
		{ID: "2", Title: "Team Meeting", Description: "Weekly sync with the development team", Time: "10:30", Priority: model.PriorityHigh},
		{ID: "3", Title: "Lunch Break", Time: "13:00", Priority: model.PriorityLow},
	}
}

// NewDraft returns an empty draft set to the current local time.
func (p *Planner) NewDraft() Draft {
	return Draft{
		Time:     model.FormatClock(p.now()),
		Priority: model.PriorityMedium,
	}
}

// Add commits d as a new task. A draft with a blank title, a malformed time or
// an unknown priority is rejected and leaves both the tasks and Draft as they were.
func (p *Planner) Add(d Draft) (model.ScheduledTask, error) {
	task := model.ScheduledTask{
		ID:          p.ids.NextID(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Time:        d.Time,
		Priority:    d.Priority,
	}
	if err := task.Validate(); err != nil {
		return model.ScheduledTask{}, err
	}
	p.tasks = append(p.tasks, task)
	slices.SortStableFunc(p.tasks, func(a, b model.ScheduledTask) int {
		return strings.Compare(a.Time, b.Time)
	})
	p.Draft = p.NewDraft()
	return task, nil
}

// Submit adds the current draft.
func (p *Planner) Submit() (model.ScheduledTask, error) {
	return p.Add(p.Draft)
}

// PickTime applies a picker result to the draft. Dismissals and malformed
// values leave the draft unchanged.
func (p *Planner) PickTime(res TimePick) bool {
	if !res.Selected {
		return false
	}
	if _, err := model.ParseClock(res.Value); err != nil {
		return false
	}
	p.Draft.Time = res.Value
	return true
}

func (p *Planner) Toggle(id string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.tasks[i].Completed = !p.tasks[i].Completed
	return true
}

func (p *Planner) Delete(id string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.tasks = slices.Delete(p.tasks, i, i+1)
	return true
}

// Tasks returns a copy of the plan in display order.
func (p *Planner) Tasks() []model.ScheduledTask {
	return slices.Clone(p.tasks)
}

func (p *Planner) Len() int { return len(p.tasks) }

func (p *Planner) Get(id string) (model.ScheduledTask, bool) {
	i := p.indexOf(id)
	if i < 0 {
		return model.ScheduledTask{}, false
	}
	return p.tasks[i], true
}

func (p *Planner) Stats() Stats {
	s := Stats{Total: len(p.tasks)}
	for _, t := range p.tasks {
		if t.Completed {
			s.Completed++
		} else if t.Priority == model.PriorityHigh {
			s.HighPending++
		}
	}
	return s
}

// Progress is the completed fraction, zero for an empty plan.
func (s Stats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// Heading returns the date line and the relative day label for the plan header.
func (p *Planner) Heading() (string, string) {
	return p.now().Format("Monday, January 2"), "Today"
}

func (p *Planner) indexOf(id string) int {
	return slices.IndexFunc(p.tasks, func(t model.ScheduledTask) bool { return t.ID == id })
}
