package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bianoble/dir-update/internal/logging"
)

// Hooks observes a run. Callbacks fire synchronously, in walk order, and
// have no way to influence the run.
type Hooks interface {
	// OnUpdate fires after a destination file has been overwritten.
	OnUpdate(path string)
	// OnSkip fires when source and destination have the same size.
	OnSkip(path string)
	// OnIOError fires when a file could not be inspected or copied.
	OnIOError(path string, err error)
	// OnWalkError fires when the destination walk hits an error.
	// Either path or err may be missing, never both.
	OnWalkError(path string, err error)
}

// DefaultHooks ignores updates and skips and prints errors, one line
// each, to Err (os.Stderr when nil).
type DefaultHooks struct {
	Err io.Writer
}

func (DefaultHooks) OnUpdate(string) {}

func (DefaultHooks) OnSkip(string) {}

func (h DefaultHooks) OnIOError(path string, err error) {
	fmt.Fprintf(h.errOut(), "%s: Error accessing: %v\n", path, withoutPath(path, err))
}

func (h DefaultHooks) OnWalkError(path string, err error) {
	w := h.errOut()
	switch {
	case path != "" && err != nil:
		fmt.Fprintf(w, "%s: Cannot access file. Error: %v\n", path, withoutPath(path, err))
	case path != "":
		fmt.Fprintf(w, "%s: Cannot access file\n", path)
	case err != nil:
		fmt.Fprintf(w, "I/O Error: %v\n", err)
	default:
		fmt.Fprintln(w, "Unknown error happened")
	}
}

func (h DefaultHooks) errOut() io.Writer {
	if h.Err == nil {
		return os.Stderr
	}
	return h.Err
}

// PrintHooks prints a line for every updated file and, when Verbose is
// set, for every skipped one. Errors are handled as in DefaultHooks.
type PrintHooks struct {
	DefaultHooks
	Out     io.Writer
	Verbose bool
}

// NewQuietHooks reports updates on out and errors on errOut.
func NewQuietHooks(out, errOut io.Writer) *PrintHooks {
	return &PrintHooks{DefaultHooks: DefaultHooks{Err: errOut}, Out: out}
}

// NewVerboseHooks reports updates and skips on out and errors on errOut.
func NewVerboseHooks(out, errOut io.Writer) *PrintHooks {
	return &PrintHooks{DefaultHooks: DefaultHooks{Err: errOut}, Out: out, Verbose: true}
}

func (h *PrintHooks) OnUpdate(path string) {
	fmt.Fprintf(h.out(), "%s: Updated...\n", path)
}

func (h *PrintHooks) OnSkip(path string) {
	if h.Verbose {
		fmt.Fprintf(h.out(), "%s: Skipped...\n", path)
	}
}

func (h *PrintHooks) out() io.Writer {
	if h.Out == nil {
		return os.Stdout
	}
	return h.Out
}

// LogHooks records every event on a structured logger. A nil Logger
// discards.
type LogHooks struct {
	Logger *slog.Logger
}

func (h LogHooks) OnUpdate(path string) {
	h.logger().Info("file updated", "path", path)
}

func (h LogHooks) OnSkip(path string) {
	h.logger().Debug("file unchanged", "path", path)
}

func (h LogHooks) OnIOError(path string, err error) {
	h.logger().Warn("file access error", "path", path, "err", err)
}

func (h LogHooks) OnWalkError(path string, err error) {
	h.logger().Warn("walk error", "path", path, "err", err)
}

func (h LogHooks) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.Discard()
	}
	return h.Logger
}

// MultiHooks forwards every callback to each element in order.
type MultiHooks []Hooks

func (m MultiHooks) OnUpdate(path string) {
	for _, h := range m {
		h.OnUpdate(path)
	}
}

func (m MultiHooks) OnSkip(path string) {
	for _, h := range m {
		h.OnSkip(path)
	}
}

func (m MultiHooks) OnIOError(path string, err error) {
	for _, h := range m {
		h.OnIOError(path, err)
	}
}

func (m MultiHooks) OnWalkError(path string, err error) {
	for _, h := range m {
		h.OnWalkError(path, err)
	}
}
