package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// Scope is the symbol table one carrier's body is resolved against: its own
// parameters plus whatever self-accessible members its owning type exposes,
// plus every file-level global (spec.md §4.5 "type resolution on
// identifiers and member accesses"). It is rebuilt per carrier rather than
// once for the whole collection, since parameter names shadow members.
type Scope struct {
	locals  map[string]swifttype.Type
	members map[string]swifttype.Type
	globals map[string]swifttype.Type
}

// NewScope builds the symbol table for carrier, drawn from col's globals
// and, for a method/init/property carrier, its owning class's ivars and
// properties.
func NewScope(col *intention.Collection, carrier intention.BodyCarrier) *Scope {
	s := &Scope{
		locals:  map[string]swifttype.Type{},
		members: map[string]swifttype.Type{},
		globals: map[string]swifttype.Type{},
	}

	for _, f := range col.Files {
		for _, g := range f.Globals {
			s.globals[g.Name] = g.Storage.Type
		}
	}

	switch carrier.Kind {
	case intention.ECarrierKind.Method():
		s.addSignature(carrier.Method.Signature)
		s.addOwner(carrier.Method.Parent())
	case intention.ECarrierKind.Init():
		s.addSignature(carrier.Init.Signature)
		s.addOwner(carrier.Init.Parent())
	case intention.ECarrierKind.Global():
		s.addSignature(carrier.Global.Signature)
	case intention.ECarrierKind.Property():
		s.addOwner(carrier.Property.Parent())
		if carrier.IsSetter {
			s.locals["newValue"] = carrier.Property.Storage.Type
		}
	}
	return s
}

func (s *Scope) addSignature(sig intention.Signature) {
	for _, p := range sig.Params {
		s.locals[p.Name] = p.Type
	}
}

// addOwner populates members from whichever concrete type intention owns
// the carrier (a class or a class extension; protocols carry no storage).
func (s *Scope) addOwner(owner intention.Intention) {
	switch o := owner.(type) {
	case *intention.ClassIntention:
		for _, iv := range o.Ivars {
			s.members[iv.Name] = iv.Storage.Type
		}
		for _, p := range o.Props {
			s.members[p.Name] = p.Storage.Type
		}
	case *intention.ClassExtensionIntention:
		for _, iv := range o.Ivars {
			s.members[iv.Name] = iv.Storage.Type
		}
		for _, p := range o.Props {
			s.members[p.Name] = p.Storage.Type
		}
	}
}

// Lookup resolves a bare identifier: locals shadow members, members shadow
// globals. The bool reports whether anything was found.
func (s *Scope) Lookup(name string) (swifttype.Type, bool) {
	if t, ok := s.locals[name]; ok {
		return t, true
	}
	if t, ok := s.members[name]; ok {
		return t, true
	}
	if t, ok := s.globals[name]; ok {
		return t, true
	}
	return swifttype.Type{}, false
}

// Member resolves a member access on self (e.g. `self.name`, `_name`): only
// the owning type's own ivars/properties are visible, never locals or
// globals.
func (s *Scope) Member(name string) (swifttype.Type, bool) {
	t, ok := s.members[name]
	return t, ok
}
