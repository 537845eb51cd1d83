package exprpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/SwiftRewriter/internal/bodyqueue"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

func newTestClassWithIvar(name string, ivarType swifttype.Type) (*intention.Collection, *intention.ClassIntention) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, name)
	f.AddClass(c)
	c.AddIvar(intention.NewInstanceVariable(cst.Pos{}, true, "title", intention.StorageSpec{Type: ivarType}, cst.AccessPrivate))
	return col, c
}

func TestTypeResolution_ResolvesSelfMemberAccess(t *testing.T) {
	col, c := newTestClassWithIvar("Foo", swifttype.Nominal("String").WithOptionality(swifttype.EOptionality.Optional()))

	access := swiftast.MemberAccess(swiftast.SelfExpr(), "title")
	body := &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &access}
	m := intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("run")}, body)
	c.AddMethod(m)

	scope := NewScope(col, intention.MethodCarrier(m))
	TypeResolution(scope, body)

	assert.Equal(t, "String", body.Expr.InferredType.Name)
	assert.Equal(t, swifttype.EOptionality.Optional(), body.Expr.InferredType.Optionality)
}

func TestTypeResolution_ResolvesParameterIdentifier(t *testing.T) {
	col, c := newTestClassWithIvar("Foo", swifttype.Nominal("String"))

	ident := swiftast.Identifier("count")
	body := &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &ident}
	sig := intention.Signature{
		Selector: intention.NewSelector("runWith:"),
		Params:   []intention.ParamSignature{{Name: "count", Type: swifttype.Nominal("Int32")}},
	}
	m := intention.NewMethod(cst.Pos{}, true, sig, body)
	c.AddMethod(m)

	scope := NewScope(col, intention.MethodCarrier(m))
	TypeResolution(scope, body)

	assert.Equal(t, "Int32", body.Expr.InferredType.Name)
}

func TestNilCoalescingInsertion_WrapsOptionalChainReturnedAsNonOptional(t *testing.T) {
	chain := swiftast.OptionalChain(swiftast.SelfExpr(), "title")
	chain.InferredType = swifttype.Nominal("String").WithOptionality(swifttype.EOptionality.Optional())
	body := &swiftast.Stmt{Kind: swiftast.StmtReturn, Value: &chain}

	NilCoalescingInsertion(swifttype.Nominal("String"), body)

	require.Equal(t, swiftast.ExprNilCoalescing, body.Value.Kind)
	assert.Equal(t, swiftast.ExprStringLiteral, body.Value.Rhs.Kind)
}

func TestNilCoalescingInsertion_LeavesAlreadyNonOptionalUntouched(t *testing.T) {
	access := swiftast.MemberAccess(swiftast.SelfExpr(), "title")
	access.InferredType = swifttype.Nominal("String")
	body := &swiftast.Stmt{Kind: swiftast.StmtReturn, Value: &access}

	NilCoalescingInsertion(swifttype.Nominal("String"), body)

	assert.Equal(t, swiftast.ExprMemberAccess, body.Value.Kind)
}

func TestCastInsertion_WrapsMismatchedNumericVarDeclInit(t *testing.T) {
	ident := swiftast.Identifier("x")
	ident.InferredType = swifttype.Nominal("CGFloat")
	body := &swiftast.Stmt{
		Kind: swiftast.StmtVarDecl,
		VarDecl: &swiftast.VarDecl{
			Name: "y",
			Type: swifttype.Nominal("Int"),
			Init: &ident,
		},
	}

	CastInsertion(swifttype.Void(), body)

	require.Equal(t, swiftast.ExprCallCast, body.VarDecl.Init.Kind)
	assert.Equal(t, "Int", body.VarDecl.Init.CastType.Name)
}

func TestCastInsertion_LeavesMatchingTypesUntouched(t *testing.T) {
	ident := swiftast.Identifier("x")
	ident.InferredType = swifttype.Nominal("Int")
	body := &swiftast.Stmt{
		Kind: swiftast.StmtVarDecl,
		VarDecl: &swiftast.VarDecl{
			Name: "y",
			Type: swifttype.Nominal("Int"),
			Init: &ident,
		},
	}

	CastInsertion(swifttype.Void(), body)

	assert.Equal(t, swiftast.ExprIdentifier, body.VarDecl.Init.Kind)
}

func TestIfLetRewriting_WrapsCallWithOptionalArgumentForNonnullParam(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{
		Selector: intention.NewSelector("consume:"),
		Params:   []intention.ParamSignature{{Name: "value", Type: swifttype.Nominal("String")}},
	}, nil))

	arg := swiftast.Identifier("maybeName")
	arg.InferredType = swifttype.Nominal("String").WithOptionality(swifttype.EOptionality.Optional())
	call := swiftast.Call(&swiftast.Expr{Kind: swiftast.ExprSelf}, "consume:", swiftast.Argument{Value: arg})
	callStmt := &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &call}
	body := &swiftast.Stmt{Kind: swiftast.StmtCompound, Items: []swiftast.CompoundItem{
		{Kind: swiftast.CompoundItemStmt, Stmt: callStmt},
	}}

	IfLetRewriting(col, body)

	require.Len(t, body.Items, 1)
	rewritten := body.Items[0].Stmt
	require.Equal(t, swiftast.StmtIf, rewritten.Kind)
	require.NotNil(t, rewritten.VarDecl)
	assert.Equal(t, "maybeName", rewritten.VarDecl.Name)
	require.NotNil(t, rewritten.Then)
	assert.Same(t, callStmt, rewritten.Then.Items[0].Stmt)
}

func TestIfLetRewriting_LeavesNonOptionalArgumentUntouched(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{
		Selector: intention.NewSelector("consume:"),
		Params:   []intention.ParamSignature{{Name: "value", Type: swifttype.Nominal("String")}},
	}, nil))

	arg := swiftast.Identifier("definiteName")
	arg.InferredType = swifttype.Nominal("String")
	call := swiftast.Call(&swiftast.Expr{Kind: swiftast.ExprSelf}, "consume:", swiftast.Argument{Value: arg})
	callStmt := &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &call}
	body := &swiftast.Stmt{Kind: swiftast.StmtCompound, Items: []swiftast.CompoundItem{
		{Kind: swiftast.CompoundItemStmt, Stmt: callStmt},
	}}

	IfLetRewriting(col, body)

	assert.Equal(t, swiftast.StmtExpr, body.Items[0].Stmt.Kind)
}

func TestRun_AppliesFullPipelineAndWritesBodyBack(t *testing.T) {
	col, c := newTestClassWithIvar("Foo", swifttype.Nominal("String").WithOptionality(swifttype.EOptionality.Optional()))

	chain := swiftast.OptionalChain(swiftast.SelfExpr(), "title")
	body := &swiftast.Stmt{Kind: swiftast.StmtReturn, Value: &chain}
	m := intention.NewMethod(cst.Pos{}, true, intention.Signature{
		Selector:   intention.NewSelector("title"),
		ReturnType: swifttype.Nominal("String"),
	}, body)
	c.AddMethod(m)

	items := []bodyqueue.WorkItem{{Body: body, Carrier: intention.MethodCarrier(m)}}
	Run(col, items)

	require.Equal(t, swiftast.ExprNilCoalescing, m.Body.Value.Kind)
}
