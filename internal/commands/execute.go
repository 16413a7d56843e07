package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Todo   func(TodoArgs) (Result, error)
	Plan   func(PlanArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Tab    func(TabArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTodo:
		if handlers.Todo == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Todo(*cmd.Todo)
	case TypePlan:
		if handlers.Plan == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Plan(*cmd.Plan)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Filter(*cmd.Filter)
	case TypeTab:
		if handlers.Tab == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Tab(*cmd.Tab)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
