// Package commands parses the command palette input. Commands operate on the
// task store and the selected day: add a task, jump between days, toggle or
// delete the highlighted task.
package commands

import (
	"fmt"
	"strings"
	"time"

	"dayplan/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeGoto   Type = "goto"
	TypeToday  Type = "today"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
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
	Title string
	Time  string
}

type GotoArgs struct {
	Date string
}

type Command struct {
	Type Type
	Raw  string
	Add  *AddArgs
	Goto *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
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
		return parseAdd(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	case TypeToggle:
		return Command{Type: TypeToggle, Raw: input}, nil
	case TypeDelete:
		return Command{Type: TypeDelete, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts "add <title>" with an optional trailing "@<time label>",
// e.g. "add Team Football @20:00".
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	timeLabel := ""
	if last := args[len(args)-1]; strings.HasPrefix(last, "@") && len(last) > 1 {
		timeLabel = strings.TrimPrefix(last, "@")
		args = args[:len(args)-1]
	}

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Time: timeLabel}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a date"}
	}
	date := args[0]
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goto wants YYYY-MM-DD, got %q", date)}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: date}}, nil
}
