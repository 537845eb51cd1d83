package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// TypeResolution implements the first of spec.md §4.5's downstream
// contracts: "type resolution on identifiers and member accesses". It walks
// body in place and stamps InferredType on every ExprIdentifier and
// self-rooted ExprMemberAccess/ExprOptionalChain node it can resolve against
// scope; nodes it cannot resolve (an access on a non-self receiver whose own
// type isn't tracked, a call result) are left with a zero InferredType for
// the later passes to skip over.
func TypeResolution(scope *Scope, body *swiftast.Stmt) {
	walkMutate(body, func(e *swiftast.Expr) {
		switch e.Kind {
		case swiftast.ExprIdentifier:
			if t, ok := scope.Lookup(e.Name); ok {
				e.InferredType = t
			}
		case swiftast.ExprMemberAccess, swiftast.ExprOptionalChain:
			if e.Receiver != nil && e.Receiver.Kind == swiftast.ExprSelf {
				if t, ok := scope.Member(e.Member); ok {
					e.InferredType = t
				}
			}
		}
	})
}

// walkMutate is walkStmt's equivalent for exprpass: it visits every
// *swiftast.Expr reachable from s and lets visit mutate it in place. Kept
// separate from internal/passes.walkStmt (which only reads) because
// exprpass's rewriting passes need to replace subtrees as they go, and a
// shared read-only walker across packages would have to choose one
// calling convention for both uses.
func walkMutate(s *swiftast.Stmt, visit func(*swiftast.Expr)) {
	if s == nil {
		return
	}
	walkExprMutate(s.Cond, visit)
	walkMutate(s.Then, visit)
	walkMutate(s.Else, visit)
	walkMutate(s.Body, visit)
	if s.Init != nil {
		walkCompoundItemMutate(*s.Init, visit)
	}
	walkExprMutate(s.Step, visit)
	walkExprMutate(s.Collection, visit)
	walkExprMutate(s.Subject, visit)
	for ci := range s.Cases {
		c := &s.Cases[ci]
		for i := range c.Values {
			walkExprMutate(&c.Values[i], visit)
		}
		for _, item := range c.Body {
			walkCompoundItemMutate(item, visit)
		}
	}
	walkExprMutate(s.Value, visit)
	for _, item := range s.Items {
		walkCompoundItemMutate(item, visit)
	}
	if s.VarDecl != nil {
		walkExprMutate(s.VarDecl.Init, visit)
	}
	walkExprMutate(s.Expr, visit)
}

func walkCompoundItemMutate(item swiftast.CompoundItem, visit func(*swiftast.Expr)) {
	if item.Stmt != nil {
		walkMutate(item.Stmt, visit)
	}
	if item.Decl != nil {
		walkExprMutate(item.Decl.Init, visit)
	}
}

func walkExprMutate(e *swiftast.Expr, visit func(*swiftast.Expr)) {
	if e == nil {
		return
	}
	walkExprMutate(e.Cond, visit)
	walkExprMutate(e.Then, visit)
	walkExprMutate(e.Else, visit)
	walkExprMutate(e.Lhs, visit)
	walkExprMutate(e.Rhs, visit)
	walkExprMutate(e.Receiver, visit)
	for i := range e.Args {
		walkExprMutate(&e.Args[i].Value, visit)
	}
	walkExprMutate(e.Operand, visit)
	walkMutate(e.ClosureBody, visit)
	for i := range e.Elements {
		walkExprMutate(&e.Elements[i], visit)
	}
	for i := range e.Keys {
		walkExprMutate(&e.Keys[i], visit)
	}
	walkExprMutate(e.Inner, visit)
	walkExprMutate(e.Index, visit)
	// Visit last, after children: a node's own resolution may depend on
	// its receiver/operand already carrying an InferredType (e.g. cast
	// insertion consulting an assignment's right-hand side).
	visit(e)
}
