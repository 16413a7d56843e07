package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle      = errors.New("model: title is required")
	ErrInvalidPriority = errors.New("model: invalid priority")
	ErrInvalidTime     = errors.New("model: invalid time of day")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the values in the order the add forms cycle through them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Label capitalizes the stored value for display.
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the following priority, wrapping from high to low.
func (p Priority) Next() Priority {
	for i, item := range Priorities {
		if item == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// Prev returns the preceding priority, wrapping from low to high.
func (p Priority) Prev() Priority {
	for i, item := range Priorities {
		if item == p {
			return Priorities[(i+len(Priorities)-1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// ScheduledTask is one entry of the daily plan.
type ScheduledTask struct {
	ID          string
	Title       string
	Description string
	Time        string
	Completed   bool
	Priority    Priority
}

func (t ScheduledTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := ParseClock(t.Time); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// TodoItem is one entry of the to-do list.
type TodoItem struct {
	ID        string
	Title     string
	Completed bool
	DueDate   string
	Priority  Priority
}

func (t TodoItem) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: todo id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}
