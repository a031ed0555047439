package ledger

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below.
var (
	ErrIO      = errors.New("ledger i/o failure")
	ErrCorrupt = errors.New("ledger data corrupted")
)

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// CorruptError reports persisted data that does not decode.
// Line is 1-based; it is 0 for the single-value budget file.
type CorruptError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *CorruptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %s: %q", e.Path, e.Reason, e.Text)
}

// Is lets errors.Is(err, ErrCorrupt) match.
func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }
