package intention

import "github.com/johndpope/SwiftRewriter/internal/cst"

// Record is one human-readable change entry, tagged by the pass (or
// "Creation" for the intention's construction) that emitted it (spec.md
// §3, §4.2).
type Record struct {
	Seq     uint64
	Pass    string
	Message string
	At      cst.Pos
}

// History is an append-only, chronologically ordered log (spec.md §3,
// §8 property 4: record i+1 is produced no earlier than record i). The
// sequence counter, not wall-clock time, establishes that order, since the
// pipeline must not depend on Date.now()-style timestamps to stay
// deterministic and resumable.
type History struct {
	records []Record
	nextSeq uint64
}

// Append adds a new record; it is the one operation every mutation in the
// system must use (spec.md §4.2).
func (h *History) Append(pass, message string, at cst.Pos) {
	h.nextSeq++
	h.records = append(h.records, Record{
		Seq:     h.nextSeq,
		Pass:    pass,
		Message: message,
		At:      at,
	})
}

// Records returns the log in append order. The returned slice is owned by
// the caller's read; it must not be mutated.
func (h *History) Records() []Record {
	return h.records
}
