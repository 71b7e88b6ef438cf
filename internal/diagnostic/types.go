package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Pipeline stages, used to prefix error messages.
const (
	StageConfig    = "config"
	StageLoad      = "load"
	StageNormalize = "normalize"
	StageExpand    = "expand"
	StageEmit      = "emit"
)

// Error is a fatal generator failure.
type Error struct {
	// Kind of the failure.
	Kind Kind
	// Stage is the pipeline stage that raised the failure.
	Stage string
	// File is the offending input or output file (if any).
	File string
	// Record identifies the offending record inside File (if any).
	Record string
	// Err is the underlying cause.
	Err error
}

// New creates an Error wrapping err.
func New(kind Kind, stage, file, record string, err error) *Error {
	return &Error{
		Kind:   kind,
		Stage:  stage,
		File:   file,
		Record: record,
		Err:    err,
	}
}

// Newf creates an Error with a formatted message as its cause.
func Newf(kind Kind, stage, file, record, format string, args ...any) *Error {
	return New(kind, stage, file, record, fmt.Errorf(format, args...))
}

// Error returns a formatted diagnostic string.
func (e *Error) Error() string {
	var prefix []string
	if e.Stage != "" {
		prefix = append(prefix, e.Stage)
	}

	if e.File != "" {
		prefix = append(prefix, e.File)
	}

	if e.Record != "" {
		prefix = append(prefix, e.Record)
	}

	msg := fmt.Sprintf("[%s]", e.Kind)
	if e.Err != nil {
		msg += " " + e.Err.Error()
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, ": ") + ": " + msg
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e, so that
// errors.Is(err, diagnostic.MalformedInput) works through wrapping.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first diagnostic Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}

	return 0, false
}
