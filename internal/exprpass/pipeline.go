// Package exprpass implements the downstream expression-rewriting passes
// spec.md §4.5 describes as contracts a Function Body Queue consumer must
// fulfill, rather than enumerating as fixed-order intention passes: type
// resolution, null-coalescing insertion, numeric cast insertion, and
// automatic if-let rewriting. Unlike internal/passes, these operate on one
// work item (one body) at a time and have no ordering dependency across
// items — only within one body's own pass sequence.
package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/bodyqueue"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// Run applies every pass, in order, to each item's body and writes the
// rewritten tree back onto the carrier it came from. Order matters: type
// resolution must run first so later passes have InferredType to consult,
// nil-coalescing must run before cast insertion so a coalesced expression's
// now-concrete type is what cast insertion compares, and if-let rewriting
// runs last since it restructures statements rather than expressions.
func Run(col *intention.Collection, items []bodyqueue.WorkItem) {
	for _, item := range items {
		body := item.Body
		if body == nil {
			continue
		}
		scope := NewScope(col, item.Carrier)
		retType := returnTypeFor(item.Carrier)

		TypeResolution(scope, body)
		NilCoalescingInsertion(retType, body)
		CastInsertion(retType, body)
		IfLetRewriting(col, body)

		item.Carrier.SetBody(body)
	}
}

// returnTypeFor reports the type a carrier's body is expected to produce,
// used by NilCoalescingInsertion/CastInsertion to judge its return
// statements; a property setter and a bare statement body (no return type
// tracked) report Void, which neither pass treats as a coercion target.
func returnTypeFor(c intention.BodyCarrier) swifttype.Type {
	switch c.Kind {
	case intention.ECarrierKind.Global():
		return c.Global.Signature.ReturnType
	case intention.ECarrierKind.Method():
		return c.Method.Signature.ReturnType
	case intention.ECarrierKind.Init():
		return swifttype.Void()
	case intention.ECarrierKind.Property():
		if c.IsSetter {
			return swifttype.Void()
		}
		return c.Property.Storage.Type
	default:
		return swifttype.Void()
	}
}
