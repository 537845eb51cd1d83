package intention

import "github.com/google/uuid"

// Identity is the stable identity every intention carries (spec.md §3),
// grounded on the teacher's `ID() uuid.UUID` identity pattern
// (pacer/interface.go).
type Identity = uuid.UUID

func newIdentity() Identity {
	return uuid.New()
}
