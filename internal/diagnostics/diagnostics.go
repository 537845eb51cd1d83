// Package diagnostics collects the problems readers and passes report
// against source locations, independent of the run log (spec.md §6, §7):
// a diagnostic is about the input program, a log line is about the run.
package diagnostics

import (
	"fmt"
	"sync"

	"github.com/johndpope/SwiftRewriter/internal/cst"
)

// Severity orders diagnostics the way a compiler front end does.
type Severity uint8

const (
	severityNote Severity = iota
	severityWarning
	severityError
)

var ESeverity = Severity(severityNote)

func (Severity) Note() Severity    { return severityNote }
func (Severity) Warning() Severity { return severityWarning }
func (Severity) Error() Severity   { return severityError }

func (s Severity) String() string {
	switch s {
	case severityNote:
		return "note"
	case severityWarning:
		return "warning"
	case severityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem, attributable to the pass or reader
// that raised it and the source location it concerns (spec.md §7: "every
// reported problem carries enough location information to resurface in a
// human-facing message").
type Diagnostic struct {
	Severity Severity
	Source   string // reader/pass name, e.g. "astreader", "overrideDetection"
	Message  string
	At       cst.Pos
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s (%s:%d:%d)", d.Severity, d.Source, d.Message, d.At.File, d.At.Line, d.At.Column)
}

// Sink is how readers and passes report diagnostics (spec.md §6). A
// Collection is the production implementation; tests may substitute a
// smaller fake.
type Sink interface {
	Report(d Diagnostic)
}

// Collection is a concurrency-safe Sink that retains every diagnostic
// reported to it, in report order, for the caller to inspect or print
// once translation finishes. Reports can happen concurrently during the
// parallel parse and Function Body Queue collection phases (spec.md §5),
// so Report takes a lock the way the teacher's rotatingWriter.Write does
// around its own shared state.
type Collection struct {
	mu    sync.Mutex
	items []Diagnostic
}

func NewCollection() *Collection {
	return &Collection{}
}

func (c *Collection) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// Items returns every diagnostic reported so far, in report order.
func (c *Collection) Items() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// HasErrors reports whether any diagnostic of Error severity was recorded.
func (c *Collection) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.items {
		if d.Severity == ESeverity.Error() {
			return true
		}
	}
	return false
}
