package main

import "fmt"

// MovementError describes a rejected movement tick. Reason doubles as the
// metrics label, so keep values short and stable.
type MovementError struct {
	Reason  string
	Message string
}

func (e *MovementError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Reason, e.Message)
}

func movementErrorf(reason, format string, v ...interface{}) *MovementError {
	return &MovementError{Reason: reason, Message: fmt.Sprintf(format, v...)}
}
