package workbook

import (
	"errors"
	"fmt"
)

// ErrNoSheet indicates a workbook without any worksheet
var ErrNoSheet = errors.New("workbook has no worksheet")

// ErrUnexpectedHeader indicates an organized sheet whose header row is not the output header
var ErrUnexpectedHeader = errors.New("unexpected header row")

// UnreadableWorkbookError wraps any failure to turn an upload into rows
type UnreadableWorkbookError struct {
	Name string
	Err  error
}

func (e *UnreadableWorkbookError) Error() string {
	return fmt.Sprintf("unreadable workbook %q: %v", e.Name, e.Err)
}

func (e *UnreadableWorkbookError) Unwrap() error {
	return e.Err
}
