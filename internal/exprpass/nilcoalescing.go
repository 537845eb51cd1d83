package exprpass

import (
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// NilCoalescingInsertion implements spec.md §4.5's "insertion of
// null-coalescing defaults on chained optional access whose target is
// non-optional": wherever a var declaration's initializer, or a function's
// return value, is an optional chain (`a?.b`) but the declared/return type
// is non-optional, wrap the chain in `?? <default>`. Only types with an
// unambiguous default (String, Bool, and the known numeric nominals) are
// rewritten; anything else is left unchanged, with no diagnostic, instead
// of guessing a default for an arbitrary reference type. Must run after TypeResolution so
// InferredType is populated, and before CastInsertion so the coalesced
// expression's type (now non-optional) is what CastInsertion sees.
func NilCoalescingInsertion(returnType swifttype.Type, body *swiftast.Stmt) {
	rewriteVarDeclInits(body)
	rewriteReturns(returnType, body)
}

func rewriteVarDeclInits(s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind == swiftast.StmtVarDecl && s.VarDecl != nil && s.VarDecl.Init != nil {
		coalesceIfNeeded(&s.VarDecl.Init, s.VarDecl.Type)
	}
	for _, item := range s.Items {
		if item.Decl != nil && item.Decl.Init != nil {
			coalesceIfNeeded(&item.Decl.Init, item.Decl.Type)
		}
		if item.Stmt != nil {
			rewriteVarDeclInits(item.Stmt)
		}
	}
	rewriteVarDeclInits(s.Then)
	rewriteVarDeclInits(s.Else)
	rewriteVarDeclInits(s.Body)
}

func rewriteReturns(returnType swifttype.Type, s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind == swiftast.StmtReturn && s.Value != nil {
		coalesceIfNeeded(&s.Value, returnType)
	}
	for _, item := range s.Items {
		if item.Stmt != nil {
			rewriteReturns(returnType, item.Stmt)
		}
	}
	rewriteReturns(returnType, s.Then)
	rewriteReturns(returnType, s.Else)
	rewriteReturns(returnType, s.Body)
}

func coalesceIfNeeded(slot **swiftast.Expr, target swifttype.Type) {
	e := *slot
	if e == nil || e.Kind != swiftast.ExprOptionalChain {
		return
	}
	if e.InferredType.Optionality != swifttype.EOptionality.Optional() {
		return
	}
	if target.Optionality != swifttype.EOptionality.None() {
		return
	}
	def, ok := defaultLiteralFor(target)
	if !ok {
		return
	}
	chain := *e
	coalesced := swiftast.NilCoalescing(chain, def)
	*slot = &coalesced
}

// defaultLiteralFor returns the zero-value literal for the handful of
// nominal types that have an unambiguous one.
func defaultLiteralFor(t swifttype.Type) (swiftast.Expr, bool) {
	if t.Kind != swifttype.EKind.Nominal() {
		return swiftast.Expr{}, false
	}
	switch t.Name {
	case "String":
		return swiftast.Expr{Kind: swiftast.ExprStringLiteral, StringValue: ""}, true
	case "Bool":
		return swiftast.Expr{Kind: swiftast.ExprBoolLiteral, BoolValue: false}, true
	case "Int", "Int8", "Int16", "Int32", "Int64",
		"UInt", "UInt8", "UInt16", "UInt32", "UInt64":
		return swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "0"}, true
	case "Double", "Float", "CGFloat":
		return swiftast.Expr{Kind: swiftast.ExprFloatLiteral, FloatText: "0"}, true
	case "TimeInterval":
		return swiftast.Expr{Kind: swiftast.ExprFloatLiteral, FloatText: "0"}, true
	default:
		return swiftast.Expr{}, false
	}
}
