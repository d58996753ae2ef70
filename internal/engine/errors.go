package engine

import (
	"errors"
	"io/fs"
)

// ErrorKind classifies why a whole run could not proceed.
type ErrorKind int

const (
	// KindInvalidFrom means the source root is missing, unreadable or not a directory.
	KindInvalidFrom ErrorKind = iota + 1
	// KindInvalidTo means the destination root is missing, unreadable or not a directory.
	KindInvalidTo
	// KindIO wraps any other failure that stops the run.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidFrom:
		return "invalid-from"
	case KindInvalidTo:
		return "invalid-to"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// UpdateError is returned by UpdateDir when a run fails as a whole.
// Failures on individual files are never returned; they go to Hooks.
type UpdateError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Sentinels for errors.Is. They match any UpdateError of the same Kind.
var (
	ErrInvalidFrom = &UpdateError{Kind: KindInvalidFrom}
	ErrInvalidTo   = &UpdateError{Kind: KindInvalidTo}
	ErrIO          = &UpdateError{Kind: KindIO}
)

var errNotDir = errors.New("not a directory")

func (e *UpdateError) Error() string {
	var msg string
	switch e.Kind {
	case KindInvalidFrom:
		msg = "directory from which to copy files doesn't exist or cannot be accessed"
	case KindInvalidTo:
		msg = "directory into which to copy files doesn't exist or cannot be accessed"
	case KindIO:
		msg = "I/O error occurred"
	default:
		msg = "update failed"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += ": " + withoutPath(e.Path, e.Err).Error()
	}
	return msg
}

// withoutPath strips the *fs.PathError layer from err when it names path,
// so messages that already lead with path do not repeat it.
func withoutPath(path string, err error) error {
	var pe *fs.PathError
	if path != "" && errors.As(err, &pe) && pe.Path == path {
		return pe.Err
	}
	return err
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *UpdateError) Is(target error) bool {
	t, ok := target.(*UpdateError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Path == "" && t.Err == nil
}
