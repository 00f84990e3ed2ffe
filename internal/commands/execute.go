package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add        func(AddArgs) (Result, error)
	Template   func(TemplateArgs) (Result, error)
	Untemplate func(UntemplateArgs) (Result, error)
	Done       func(DoneArgs) (Result, error)
	Clear      func() (Result, error)
	Reset      func() (Result, error)
	Apply      func() (Result, error)
	Open       func(OpenArgs) (Result, error)
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeTemplate:
		if handlers.Template == nil {
			return Result{}, missing("template")
		}
		return handlers.Template(*cmd.Template)
	case TypeUntemplate:
		if handlers.Untemplate == nil {
			return Result{}, missing("untemplate")
		}
		return handlers.Untemplate(*cmd.Untemplate)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing("done")
		}
		return handlers.Done(*cmd.Done)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missing("clear")
		}
		return handlers.Clear()
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, missing("reset")
		}
		return handlers.Reset()
	case TypeApply:
		if handlers.Apply == nil {
			return Result{}, missing("apply")
		}
		return handlers.Apply()
	case TypeOpen:
		if handlers.Open == nil {
			return Result{}, missing("open")
		}
		return handlers.Open(*cmd.Open)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
