// Package passes implements the Intention Passes pipeline (spec.md §4.4):
// a fixed-order sequence of mutators over an intention.Collection, each
// recording history entries for what it changed. Generalized from the
// teacher's enumerator pipeline composition (azcopy/copyEnumerator.go,
// azcopy/syncEnumerator.go chain multiple enumeration stages in a fixed
// order) into a single Pass function type run by Pipeline in the order
// spec.md §4.4 mandates.
package passes

import (
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/pkg/errors"
)

// Pass mutates a collection in place, appending history entries to
// whatever intentions it touches.
type Pass func(col *intention.Collection) error

// Pipeline runs every pass in order, stopping at the first error. The
// structural pipeline is single-threaded cooperative (spec.md §5): each
// pass runs to completion and fully observes the prior pass's invariants
// before the next one starts.
func Pipeline() []Pass {
	return []Pass{
		FileGrouping,
		DuplicateTypeRemoval,
		PropertyMerge,
		SynthesizeBackingField,
		OverrideDetection,
		UsageAnalysis,
	}
}

// Run executes every pass in Pipeline() against col, in order.
func Run(col *intention.Collection) error {
	for _, p := range Pipeline() {
		if err := p(col); err != nil {
			return errors.Wrap(err, "intention pass")
		}
	}
	return nil
}
