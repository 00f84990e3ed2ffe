package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Type string

const (
	TypeAdd        Type = "add"
	TypeTemplate   Type = "template"
	TypeUntemplate Type = "untemplate"
	TypeDone       Type = "done"
	TypeClear      Type = "clear"
	TypeReset      Type = "reset"
	TypeApply      Type = "apply"
	TypeOpen       Type = "open"
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

type AddArgs struct {
	Bucket model.Bucket
	Text   string
}

type TemplateArgs struct {
	Bucket model.Bucket
	Text   string
}

// UntemplateArgs carries a zero-based Index; users type it one-based.
type UntemplateArgs struct {
	Bucket model.Bucket
	Index  int
}

type DoneArgs struct {
	Bucket model.Bucket
}

// OpenArgs holds a date key, or "today".
type OpenArgs struct {
	Day string
}

type Command struct {
	Type       Type
	Raw        string
	Add        *AddArgs
	Template   *TemplateArgs
	Untemplate *UntemplateArgs
	Done       *DoneArgs
	Open       *OpenArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		bucket, text, err := bucketAndText(head, args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Bucket: bucket, Text: text}}, nil
	case TypeTemplate, "tpl":
		bucket, text, err := bucketAndText("template", args)
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeTemplate, Raw: input, Template: &TemplateArgs{Bucket: bucket, Text: text}}, nil
	case TypeUntemplate:
		return parseUntemplate(input, args)
	case TypeDone:
		if len(args) != 1 {
			return Command{}, invalid("done requires a bucket")
		}
		bucket, err := model.ParseBucket(args[0])
		if err != nil {
			return Command{}, invalid(err.Error())
		}
		return Command{Type: TypeDone, Raw: input, Done: &DoneArgs{Bucket: bucket}}, nil
	case TypeClear, TypeReset, TypeApply:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeOpen:
		if len(args) != 1 {
			return Command{}, invalid("open requires a date (YYYY-MM-DD) or today")
		}
		day := strings.ToLower(args[0])
		if day != "today" && !model.IsDateKey(day) {
			return Command{}, invalid(fmt.Sprintf("not a date: %s", args[0]))
		}
		return Command{Type: TypeOpen, Raw: input, Open: &OpenArgs{Day: day}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func invalid(msg string) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: msg}
}

func bucketAndText(name string, args []string) (model.Bucket, string, error) {
	if len(args) < 2 {
		return "", "", invalid(name + " requires a bucket and text")
	}
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return "", "", invalid(err.Error())
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		return "", "", invalid(name + " requires text")
	}
	return bucket, text, nil
}

func parseUntemplate(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid("untemplate requires a bucket and position")
	}
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return Command{}, invalid(err.Error())
	}
	pos, err := strconv.Atoi(args[1])
	if err != nil || pos < 1 {
		return Command{}, invalid(fmt.Sprintf("position must be a positive number: %s", args[1]))
	}
	return Command{Type: TypeUntemplate, Raw: raw, Untemplate: &UntemplateArgs{Bucket: bucket, Index: pos - 1}}, nil
}
