package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// IfLetRewriting implements spec.md §4.5's "automatic if let rewriting for
// nullable receivers passed to nonnull parameters": a top-level call
// statement that passes an optional-typed identifier to a parameter the
// callee declares non-optional is wrapped in an if-let binding on that
// identifier. Only the statement's own compound-item list is considered —
// nested blocks are rewritten independently by the recursive descent below
// — and only the first unwrappable argument found triggers a rewrite,
// since wrapping each of several optional arguments would require nested
// if-lets the same way Swift itself would read `if let a, let b`.
//
// The rewrite represents `if let <name> = <name> { ... }` as a StmtIf whose
// VarDecl carries the binding and whose Cond is left nil, distinguishing it
// from a boolean-condition if; this reuses the same "introduce one named
// binding" shape StmtVarDecl already has, rather than adding a parallel
// field that would only ever be populated here.
func IfLetRewriting(col *intention.Collection, body *swiftast.Stmt) {
	rewriteBlock(col, body)
}

func rewriteBlock(col *intention.Collection, s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind == swiftast.StmtCompound {
		s.Items = rewriteItems(col, s.Items)
	}
	rewriteBlock(col, s.Then)
	rewriteBlock(col, s.Else)
	rewriteBlock(col, s.Body)
}

func rewriteItems(col *intention.Collection, items []swiftast.CompoundItem) []swiftast.CompoundItem {
	out := make([]swiftast.CompoundItem, 0, len(items))
	for _, item := range items {
		if item.Stmt != nil {
			rewriteBlock(col, item.Stmt)
		}
		if rewritten, ok := tryIfLet(col, item); ok {
			out = append(out, rewritten)
			continue
		}
		out = append(out, item)
	}
	return out
}

func tryIfLet(col *intention.Collection, item swiftast.CompoundItem) (swiftast.CompoundItem, bool) {
	if item.Kind != swiftast.CompoundItemStmt || item.Stmt == nil {
		return item, false
	}
	original := item.Stmt
	if original.Kind != swiftast.StmtExpr || original.Expr == nil || original.Expr.Kind != swiftast.ExprCall {
		return item, false
	}

	sig := resolveCalleeSignature(col, original.Expr)
	if sig == nil {
		return item, false
	}
	for i := range original.Expr.Args {
		if i >= len(sig.Params) {
			break
		}
		arg := &original.Expr.Args[i].Value
		if arg.Kind != swiftast.ExprIdentifier || arg.InferredType.Optionality != swifttype.EOptionality.Optional() {
			continue
		}
		if sig.Params[i].Type.Optionality != swifttype.EOptionality.None() {
			continue // callee itself accepts an optional; nothing to unwrap
		}
		return wrapInIfLet(arg.Name, original), true
	}
	return item, false
}

func wrapInIfLet(name string, original *swiftast.Stmt) swiftast.CompoundItem {
	bound := swiftast.Identifier(name)
	ifLet := &swiftast.Stmt{
		Kind:    swiftast.StmtIf,
		VarDecl: &swiftast.VarDecl{Name: name, Init: &bound},
		Then: &swiftast.Stmt{
			Kind:  swiftast.StmtCompound,
			Items: []swiftast.CompoundItem{{Kind: swiftast.CompoundItemStmt, Stmt: original}},
		},
	}
	return swiftast.CompoundItem{Kind: swiftast.CompoundItemStmt, Stmt: ifLet}
}

// resolveCalleeSignature finds any declared method, initializer, or global
// function whose selector's first keyword piece matches the call's name
// (the shape readMessageSend lowers a send into, spec.md §4.3). This is a
// best-effort lookup, not full overload resolution: the first match wins.
func resolveCalleeSignature(col *intention.Collection, call *swiftast.Expr) *intention.Signature {
	for _, m := range col.AllMethods() {
		if selectorMatchesCallName(m.Signature.Selector, call.Name) {
			return &m.Signature
		}
	}
	for _, f := range col.Files {
		for _, g := range f.GlobalFuncs {
			if selectorMatchesCallName(g.Signature.Selector, call.Name) {
				return &g.Signature
			}
		}
	}
	return nil
}

func selectorMatchesCallName(sel intention.Selector, name string) bool {
	if len(sel.Pieces) == 0 {
		return false
	}
	return sel.Pieces[0] == name
}
