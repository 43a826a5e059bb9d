package msxfont

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("msxfont: invalid font format")
	// ErrIndex matches every *IndexError.
	ErrIndex = errors.New("msxfont: index out of range")
	// ErrIO matches every *IOError.
	ErrIO = errors.New("msxfont: i/o failure")
)

// FormatError reports data that does not have the fixed font shape:
// 2048 bytes, or 8 rows of 8 pixels per glyph.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "msxfont: " + e.Msg }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IndexError reports a glyph index or pixel coordinate outside [0, Limit).
type IndexError struct {
	What  string
	Value int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("msxfont: %s out of range: %d (want 0..%d)", e.What, e.Value, e.Limit-1)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// IOError reports a failed read or write of a font file. Err is the
// underlying error whatever its concrete type.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("msxfont: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("msxfont: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

func formatErrorf(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}
