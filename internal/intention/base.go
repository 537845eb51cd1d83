package intention

import "github.com/johndpope/SwiftRewriter/internal/cst"

// Intention is implemented by every IR node. Concrete kinds are matched by
// type switch at call sites (Design Note §9 "dynamic type identification"),
// never by reflection-based type tests.
type Intention interface {
	ID() Identity
	SourceLoc() cst.Pos
	InNonnullContext() bool
	History() *History
}

// Base is embedded by every concrete intention and supplies the attributes
// spec.md §3 requires of all of them: identity, source reference,
// in-nonnull-context flag, and history. The parent back-reference is weak
// (lookup-only, never lifetime-extending, per Design Note §9) and lives on
// each concrete type rather than here, because its type differs per kind
// (a MethodIntention's parent is a type intention; a FileIntention's parent
// is the collection).
type Base struct {
	id        Identity
	sourceLoc cst.Pos
	nonnull   bool
	history   History
}

// NewBase constructs a Base and records the Creation history entry every
// intention gets the moment it is built (spec.md §4.2: "Constructing a
// child intention eagerly appends a Creation history record stamped with
// its source location").
func NewBase(loc cst.Pos, inNonnullContext bool) Base {
	b := Base{
		id:        newIdentity(),
		sourceLoc: loc,
		nonnull:   inNonnullContext,
	}
	b.history.Append("Creation", "created", loc)
	return b
}

func (b *Base) ID() Identity               { return b.id }
func (b *Base) SourceLoc() cst.Pos         { return b.sourceLoc }
func (b *Base) InNonnullContext() bool     { return b.nonnull }
func (b *Base) History() *History          { return &b.history }
