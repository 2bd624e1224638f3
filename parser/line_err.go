package parser

import (
	"errors"
	"fmt"
)

// LineError annotates a malformed token with its position in the input.
type LineError struct {
	Line int
	Raw  string
	err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %v: malformed token %q: %v", e.Line, e.Raw, e.err)
}

func (e *LineError) Is(target error) bool {
	_, ok := target.(*LineError)
	return ok
}

func (e *LineError) Unwrap() error {
	return e.err
}

func WrapLine(line int, raw string, err error) error {
	if errors.Is(err, &LineError{}) {
		return err
	}

	return &LineError{
		Line: line,
		Raw:  raw,
		err:  err,
	}
}
