package passes

import (
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// OverrideDetection implements spec.md §4.4.5: a method or initializer is
// marked override iff an ancestor class (walked through the superclass
// chain via the collection-wide type lookup) declares a method with an
// equal selector, or the body contains a `super.x(...)` call naming it,
// even with no visible ancestor declaration (a superclass outside the
// translated sources, e.g. UIKit).
//
// Ancestor methods are collected only from ClassIntention.Methods, never
// from ProtocolIntention.Methods, which is what keeps a protocol
// requirement satisfied purely through conformance from counting as an
// override target.
func OverrideDetection(col *intention.Collection) error {
	for _, c := range col.AllClasses() {
		ancestorSelectors := collectAncestorSelectors(col, c.SuperclassName)

		for _, m := range c.Methods {
			if ancestorSelectors[m.Signature.Selector.String()] || bodyCallsSuper(m.Body, m.Signature.Selector) {
				if !m.IsOverride {
					m.IsOverride = true
					m.History().Append("OverrideDetection", "marked override: "+m.Signature.Selector.String(), m.SourceLoc())
				}
			}
		}
		for _, i := range c.Inits {
			if ancestorSelectors[i.Signature.Selector.String()] || bodyCallsSuper(i.Body, i.Signature.Selector) {
				if !i.IsOverride {
					i.IsOverride = true
					i.History().Append("OverrideDetection", "marked override: "+i.Signature.Selector.String(), i.SourceLoc())
				}
			}
		}
	}
	return nil
}

func collectAncestorSelectors(col *intention.Collection, superclassName string) map[string]bool {
	selectors := map[string]bool{}
	name := superclassName
	seen := map[string]bool{}
	for name != "" && !seen[name] {
		seen[name] = true
		ancestor := col.ClassByName(name)
		if ancestor == nil {
			break
		}
		for _, m := range ancestor.Methods {
			selectors[m.Signature.Selector.String()] = true
		}
		for _, i := range ancestor.Inits {
			selectors[i.Signature.Selector.String()] = true
		}
		name = ancestor.SuperclassName
	}
	return selectors
}

// bodyCallsSuper walks a method body looking for `super.<name>(...)` where
// name is the selector's first keyword piece, the call-site shape
// readMessageSend lowers a `[super doThing:x]` message send into.
func bodyCallsSuper(body *swiftast.Stmt, sel intention.Selector) bool {
	if body == nil || len(sel.Pieces) == 0 {
		return false
	}
	name := sel.Pieces[0]
	found := false
	walkStmt(body, func(e *swiftast.Expr) {
		if e.Kind == swiftast.ExprCall && e.Receiver != nil && e.Receiver.Kind == swiftast.ExprSuper && e.Name == name {
			found = true
		}
	})
	return found
}

