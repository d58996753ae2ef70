package dirupdate

import "github.com/bianoble/dir-update/internal/engine"

// Type aliases re-export engine types as the public API.
// Users import "github.com/bianoble/dir-update/pkg/dirupdate" and use
// dirupdate.Hooks, dirupdate.UpdateError, etc.

type Hooks = engine.Hooks
type DefaultHooks = engine.DefaultHooks
type PrintHooks = engine.PrintHooks
type LogHooks = engine.LogHooks
type MultiHooks = engine.MultiHooks
type UpdateError = engine.UpdateError
type ErrorKind = engine.ErrorKind

const (
	KindInvalidFrom = engine.KindInvalidFrom
	KindInvalidTo   = engine.KindInvalidTo
	KindIO          = engine.KindIO
)

// Sentinels for errors.Is.
var (
	ErrInvalidFrom = engine.ErrInvalidFrom
	ErrInvalidTo   = engine.ErrInvalidTo
	ErrIO          = engine.ErrIO
)
