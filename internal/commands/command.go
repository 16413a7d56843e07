package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/nav"
	"github.com/sandeepkv93/dayplan/internal/todo"
)

type Type string

const (
	TypeTodo   Type = "todo"
	TypePlan   Type = "plan"
	TypeFilter Type = "filter"
	TypeTab    Type = "tab"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type TodoArgs struct {
	Title    string
	Priority model.Priority
}

type PlanArgs struct {
	Time     string
	Title    string
	Priority model.Priority
}

type FilterArgs struct {
	Filter todo.Filter
}

type TabArgs struct {
	Tab nav.Tab
}

type Command struct {
	Type   Type
	Raw    string
	Todo   *TodoArgs
	Plan   *PlanArgs
	Filter *FilterArgs
	Tab    *TabArgs
}

var tabAliases = map[string]nav.Tab{
	"plan":    nav.TabDailyPlan,
	"daily":   nav.TabDailyPlan,
	"todo":    nav.TabTodo,
	"profile": nav.TabProfile,
}

// Parse reads one palette line. The leading slash is optional.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeTodo:
		return parseTodo(input, args)
	case TypePlan:
		return parsePlan(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeTab:
		return parseTab(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTodo(raw string, args []string) (Command, error) {
	prio, rest, err := takePriority(args)
	if err != nil {
		return Command{}, err
	}
	title := strings.Join(rest, " ")
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "todo requires a title"}
	}
	return Command{Type: TypeTodo, Raw: raw, Todo: &TodoArgs{Title: title, Priority: prio}}, nil
}

func parsePlan(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a time and a title"}
	}
	if _, err := model.ParseClock(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("plan time must be HH:MM, got %q", args[0])}
	}
	prio, rest, err := takePriority(args[1:])
	if err != nil {
		return Command{}, err
	}
	title := strings.Join(rest, " ")
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "plan requires a title"}
	}
	return Command{Type: TypePlan, Raw: raw, Plan: &PlanArgs{Time: args[0], Title: title, Priority: prio}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of all, active, completed"}
	}
	f := todo.Filter(strings.ToLower(args[0]))
	if !f.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}

func parseTab(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tab requires one of plan, todo, profile"}
	}
	tab, ok := tabAliases[strings.ToLower(args[0])]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", args[0])}
	}
	return Command{Type: TypeTab, Raw: raw, Tab: &TabArgs{Tab: tab}}, nil
}

// takePriority consumes a leading !low, !medium or !high token.
func takePriority(args []string) (model.Priority, []string, error) {
	if len(args) == 0 || !strings.HasPrefix(args[0], "!") {
		return model.PriorityMedium, args, nil
	}
	p := model.Priority(strings.ToLower(strings.TrimPrefix(args[0], "!")))
	if !p.IsValid() {
		return "", nil, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", args[0])}
	}
	return p, args[1:], nil
}
