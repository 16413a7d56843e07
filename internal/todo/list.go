package todo

import (
	"slices"
	"strings"

	"github.com/sandeepkv93/dayplan/internal/model"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func (f Filter) Matches(item model.TodoItem) bool {
	switch f {
	case FilterActive:
		return !item.Completed
	case FilterCompleted:
		return item.Completed
	default:
		return true
	}
}

func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func (f Filter) Next() Filter {
	i := slices.Index(Filters, f)
	return Filters[(i+1)%len(Filters)]
}

func (f Filter) Prev() Filter {
	i := slices.Index(Filters, f)
	if i < 0 {
		return FilterAll
	}
	return Filters[(i+len(Filters)-1)%len(Filters)]
}

// EmptyMessage is shown in place of the list when the filter selects nothing.
func (f Filter) EmptyMessage() string {
	switch f {
	case FilterActive:
		return "No active tasks. All caught up!"
	case FilterCompleted:
		return "No completed tasks yet."
	default:
		return "No tasks yet. Add your first task!"
	}
}

type Draft struct {
	Title    string
	DueDate  string
	Priority model.Priority
}

func NewDraft() Draft {
	return Draft{Priority: model.PriorityMedium}
}

type Options struct {
	IDs  model.IDSource
	Seed bool
}

// List is the to-do collection in insertion order with a read-side filter.
type List struct {
	Draft  Draft
	items  []model.TodoItem
	filter Filter
	ids    model.IDSource
}

func New(opts Options) *List {
	l := &List{
		Draft:  NewDraft(),
		filter: FilterAll,
		ids:    opts.IDs,
	}
	if l.ids == nil {
		l.ids = model.UUIDSource{}
	}
	if opts.Seed {
		l.items = SeedItems()
	}
	return l
}

func SeedItems() []model.TodoItem {
	return []model.TodoItem{
		{ID: "1", Title: "Complete project proposal", Priority: model.PriorityHigh},
		{ID: "2", Title: "Buy groceries", Completed: true, Priority: model.PriorityMedium},
		{ID: "3", Title: "Call mom", Priority: model.PriorityLow},
	}
}

// Add appends a new item built from d. Blank titles and unknown priorities are
// rejected without touching the list or the draft.
func (l *List) Add(d Draft) (model.TodoItem, error) {
	item := model.TodoItem{
		ID:       l.ids.NextID(),
		Title:    strings.TrimSpace(d.Title),
		DueDate:  strings.TrimSpace(d.DueDate),
		Priority: d.Priority,
	}
	if err := item.Validate(); err != nil {
		return model.TodoItem{}, err
	}
	l.items = append(l.items, item)
	l.Draft = NewDraft()
	return item, nil
}

func (l *List) Submit() (model.TodoItem, error) {
	return l.Add(l.Draft)
}

func (l *List) Toggle(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items[i].Completed = !l.items[i].Completed
	return true
}

func (l *List) Delete(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List) Items() []model.TodoItem {
	return slices.Clone(l.items)
}

func (l *List) Filter() Filter { return l.filter }

// SetFilter ignores unknown filters.
func (l *List) SetFilter(f Filter) bool {
	if !f.IsValid() {
		return false
	}
	l.filter = f
	return true
}

// Visible applies the current filter.
func (l *List) Visible() []model.TodoItem {
	return l.Select(l.filter)
}

func (l *List) Select(f Filter) []model.TodoItem {
	out := make([]model.TodoItem, 0, len(l.items))
	for _, item := range l.items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Counts returns the size of each filter's selection.
func (l *List) Counts() map[Filter]int {
	out := map[Filter]int{FilterAll: len(l.items)}
	for _, item := range l.items {
		if item.Completed {
			out[FilterCompleted]++
		} else {
			out[FilterActive]++
		}
	}
	return out
}

func (l *List) indexOf(id string) int {
	return slices.IndexFunc(l.items, func(t model.TodoItem) bool { return t.ID == id })
}
