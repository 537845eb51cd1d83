package passes

import "github.com/johndpope/SwiftRewriter/internal/swiftast"

// walkStmt visits every expression reachable from s, depth-first. Shared
// by Override Detection (looking for super calls) and Usage Analysis
// (recording reference sites), since both need the same traversal over a
// body-carrying intention's statement tree.
func walkStmt(s *swiftast.Stmt, visit func(*swiftast.Expr)) {
	if s == nil {
		return
	}
	walkExprField(s.Cond, visit)
	walkStmt(s.Then, visit)
	walkStmt(s.Else, visit)
	walkStmt(s.Body, visit)
	if s.Init != nil {
		walkCompoundItem(*s.Init, visit)
	}
	walkExprField(s.Step, visit)
	walkExprField(s.Collection, visit)
	walkExprField(s.Subject, visit)
	for _, c := range s.Cases {
		for i := range c.Values {
			walkExpr(&c.Values[i], visit)
		}
		for _, item := range c.Body {
			walkCompoundItem(item, visit)
		}
	}
	walkExprField(s.Value, visit)
	for _, item := range s.Items {
		walkCompoundItem(item, visit)
	}
	if s.VarDecl != nil {
		walkExprField(s.VarDecl.Init, visit)
	}
	walkExprField(s.Expr, visit)
}

func walkCompoundItem(item swiftast.CompoundItem, visit func(*swiftast.Expr)) {
	if item.Stmt != nil {
		walkStmt(item.Stmt, visit)
	}
	if item.Decl != nil {
		walkExprField(item.Decl.Init, visit)
	}
}

func walkExprField(e *swiftast.Expr, visit func(*swiftast.Expr)) {
	if e == nil {
		return
	}
	walkExpr(e, visit)
}

func walkExpr(e *swiftast.Expr, visit func(*swiftast.Expr)) {
	if e == nil {
		return
	}
	visit(e)
	walkExpr(e.Cond, visit)
	walkExpr(e.Then, visit)
	walkExpr(e.Else, visit)
	walkExpr(e.Lhs, visit)
	walkExpr(e.Rhs, visit)
	walkExpr(e.Receiver, visit)
	for i := range e.Args {
		walkExpr(&e.Args[i].Value, visit)
	}
	walkExpr(e.Operand, visit)
	walkStmt(e.ClosureBody, visit)
	for i := range e.Elements {
		walkExpr(&e.Elements[i], visit)
	}
	for i := range e.Keys {
		walkExpr(&e.Keys[i], visit)
	}
	walkExpr(e.Inner, visit)
	walkExpr(e.Index, visit)
}
