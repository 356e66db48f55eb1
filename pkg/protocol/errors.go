package protocol

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure reports wire data that is not a JSON object at all.
var ErrInvalidStructure = errors.New("protocol: message is not a JSON object")

// FieldError reports a required field that is missing or of the wrong JSON
// type. Optional fields never produce a FieldError; they decode as absent.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("protocol: invalid or missing field %q", e.Field)
}

// CommandTagError reports a message whose "cmd" value does not match the
// tag the decoder expected.
type CommandTagError struct {
	Expected string
}

func (e *CommandTagError) Error() string {
	return fmt.Sprintf("protocol: message is not a %q command", e.Expected)
}

// UnknownCommandError reports a "cmd" value with no registered decoder.
type UnknownCommandError struct {
	Cmd string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("protocol: unknown command %q", e.Cmd)
}
