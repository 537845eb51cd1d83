package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// numericNominals is the set of Swift nominal names CastInsertion treats as
// freely convertible via a call-style cast, e.g. `CGFloat divided and
// stored into Int wraps the expression in Int(...)` (spec.md §4.5).
var numericNominals = map[string]bool{
	"Int": true, "Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"UInt": true, "UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true,
	"Double": true, "Float": true, "CGFloat": true, "TimeInterval": true,
}

// CastInsertion implements spec.md §4.5's "insertion of numeric casts when
// an expression's inferred type differs from its use site": wherever a var
// declaration's initializer (or a return value) has a resolved numeric type
// that differs from the declared/return numeric type, wrap it in a
// call-style conversion. Must run after TypeResolution (and after
// NilCoalescingInsertion, so a coalesced expression's now-concrete type is
// what gets compared).
func CastInsertion(returnType swifttype.Type, body *swiftast.Stmt) {
	castVarDeclInits(body)
	castReturns(returnType, body)
}

func castVarDeclInits(s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind == swiftast.StmtVarDecl && s.VarDecl != nil && s.VarDecl.Init != nil {
		castIfNeeded(&s.VarDecl.Init, s.VarDecl.Type)
	}
	for _, item := range s.Items {
		if item.Decl != nil && item.Decl.Init != nil {
			castIfNeeded(&item.Decl.Init, item.Decl.Type)
		}
		if item.Stmt != nil {
			castVarDeclInits(item.Stmt)
		}
	}
	castVarDeclInits(s.Then)
	castVarDeclInits(s.Else)
	castVarDeclInits(s.Body)
}

func castReturns(returnType swifttype.Type, s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind == swiftast.StmtReturn && s.Value != nil {
		castIfNeeded(&s.Value, returnType)
	}
	for _, item := range s.Items {
		if item.Stmt != nil {
			castReturns(returnType, item.Stmt)
		}
	}
	castReturns(returnType, s.Then)
	castReturns(returnType, s.Else)
	castReturns(returnType, s.Body)
}

func castIfNeeded(slot **swiftast.Expr, target swifttype.Type) {
	e := *slot
	if e == nil {
		return
	}
	src := e.InferredType
	if src.Kind != swifttype.EKind.Nominal() || target.Kind != swifttype.EKind.Nominal() {
		return
	}
	if !numericNominals[src.Name] || !numericNominals[target.Name] {
		return
	}
	if src.Name == target.Name {
		return
	}
	inner := *e
	cast := swiftast.Expr{Kind: swiftast.ExprCallCast, CastType: target, Operand: &inner, InferredType: target}
	*slot = &cast
}
