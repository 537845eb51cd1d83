package passes

import (
	"testing"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClass(name, file string, fromImpl bool) *intention.ClassIntention {
	c := intention.NewClass(cst.Pos{File: file}, true, name)
	c.FromImplementation = fromImpl
	return c
}

func TestFileGrouping_MergesHeaderIntoImplementation_AndDropsHeader(t *testing.T) {
	col := intention.NewCollection()

	header := intention.NewFile(cst.Pos{}, true, "Foo.h")
	col.AddFile(header)
	hc := newClass("Foo", "Foo.h", false)
	hc.ProtocolNames = []string{"NSCopying"}
	header.AddClass(hc)

	impl := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(impl)
	ic := newClass("Foo", "Foo.m", true)
	impl.AddClass(ic)

	require.NoError(t, FileGrouping(col))

	require.Len(t, col.Files, 1)
	assert.Equal(t, "Foo.m", col.Files[0].Name)
	assert.Contains(t, col.Files[0].Classes[0].ProtocolNames, "NSCopying")
}

func TestFileGrouping_MethodMerge_NullabilityPropagatesWhenTargetUnspecified(t *testing.T) {
	col := intention.NewCollection()
	header := intention.NewFile(cst.Pos{}, true, "Foo.h")
	col.AddFile(header)
	impl := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(impl)

	hc := newClass("Foo", "Foo.h", false)
	hm := intention.NewMethod(cst.Pos{}, true, intention.Signature{
		Selector:            intention.NewSelector("name"),
		ReturnType:          swifttype.Nominal("String"),
		ReturnRawAnnotation: nullability.EAnnotation.Nonnull(),
	}, nil)
	hc.AddMethod(hm)
	header.AddClass(hc)

	ic := newClass("Foo", "Foo.m", true)
	body := swiftast.Stmt{Kind: swiftast.StmtReturn}
	im := intention.NewMethod(cst.Pos{}, true, intention.Signature{
		Selector:            intention.NewSelector("name"),
		ReturnType:          swifttype.Nominal("String").WithOptionality(swifttype.EOptionality.ImplicitlyUnwrapped()),
		ReturnRawAnnotation: nullability.EAnnotation.Unspecified(),
	}, &body)
	ic.AddMethod(im)
	impl.AddClass(ic)

	require.NoError(t, FileGrouping(col))

	merged := col.Files[0].Classes[0].Methods[0]
	assert.Equal(t, nullability.EAnnotation.Nonnull(), merged.Signature.ReturnRawAnnotation)
	assert.Equal(t, swifttype.EOptionality.None(), merged.Signature.ReturnType.Optionality)
	assert.NotNil(t, merged.Body) // implementation's body wins
}

func TestDuplicateTypeRemoval_KeepsImplementationSourced(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)

	ifaceClass := newClass("Foo", "Foo.m", false)
	ifaceClass.ProtocolNames = []string{"NSCopying"}
	f.AddClass(ifaceClass)

	implClass := newClass("Foo", "Foo.m", true)
	f.AddClass(implClass)

	require.NoError(t, DuplicateTypeRemoval(col))

	require.Len(t, f.Classes, 1)
	assert.True(t, f.Classes[0].FromImplementation)
	assert.Contains(t, f.Classes[0].ProtocolNames, "NSCopying")
}

func TestPropertyMerge_AbsorbsGetterSetterMethodsIntoProperty(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := newClass("Foo", "Foo.m", true)
	f.AddClass(c)

	prop := intention.NewProperty(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, 0)
	c.AddProperty(prop)

	getterBody := swiftast.Stmt{Kind: swiftast.StmtReturn}
	getter := intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("name")}, &getterBody)
	setterBody := swiftast.Stmt{Kind: swiftast.StmtExpr}
	setter := intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("setName:")}, &setterBody)
	c.AddMethod(getter)
	c.AddMethod(setter)

	require.NoError(t, PropertyMerge(col))

	assert.Empty(t, c.Methods)
	assert.NotNil(t, prop.GetterBody)
	assert.NotNil(t, prop.SetterBody)
	assert.Equal(t, intention.EPropertyMode.ComputedGetterSetter(), prop.Mode)
}

func TestSynthesizeBackingField_SameNameCollapsesToStoredProperty(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := newClass("Foo", "Foo.m", true)
	f.AddClass(c)

	prop := intention.NewProperty(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, cst.PropAttrReadonly)
	c.AddProperty(prop)
	iv := intention.NewInstanceVariable(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, cst.AccessPrivate)
	c.AddIvar(iv)
	c.Synthesizes = []cst.SynthesizeDirective{{PropertyName: "name", BackingName: "name"}}

	require.NoError(t, SynthesizeBackingField(col))

	assert.Equal(t, "name", prop.BackingIvarName)
	assert.Equal(t, "private(set)", prop.AccessDowngrade)
	assert.Empty(t, c.Synthesizes)
}

func TestSynthesizeBackingField_DifferentNameBecomesComputed(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := newClass("Foo", "Foo.m", true)
	f.AddClass(c)

	prop := intention.NewProperty(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, 0)
	c.AddProperty(prop)
	c.Synthesizes = []cst.SynthesizeDirective{{PropertyName: "name", BackingName: "_name"}}

	require.NoError(t, SynthesizeBackingField(col))

	assert.Equal(t, "_name", prop.BackingIvarName)
	require.NotNil(t, c.IvarByName("_name"))
	assert.NotNil(t, prop.GetterBody)
	assert.NotNil(t, prop.SetterBody)
}

func TestOverrideDetection_MarksMethodSharedWithAncestor(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)

	base := newClass("NSObject", "Foo.m", true)
	base.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("description")}, nil))
	f.AddClass(base)

	sub := newClass("Foo", "Foo.m", true)
	sub.SuperclassName = "NSObject"
	sub.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("description")}, nil))
	f.AddClass(sub)

	require.NoError(t, OverrideDetection(col))

	assert.True(t, sub.Methods[0].IsOverride)
	assert.False(t, base.Methods[0].IsOverride)
}

func TestOverrideDetection_SuperCallIsSufficientEvidence(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)

	sub := newClass("Foo", "Foo.m", true)
	sub.SuperclassName = "UIView" // not in the translated sources
	superCall := swiftast.Expr{Kind: swiftast.ExprCall, Name: "layoutSubviews", Receiver: &swiftast.Expr{Kind: swiftast.ExprSuper}}
	body := swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &superCall}
	sub.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("layoutSubviews")}, &body))
	f.AddClass(sub)

	require.NoError(t, OverrideDetection(col))

	assert.True(t, sub.Methods[0].IsOverride)
}

func TestUsageAnalysis_RecordsMethodCallSites(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := newClass("Foo", "Foo.m", true)
	f.AddClass(c)

	call := swiftast.Expr{Kind: swiftast.ExprCall, Name: "reload", Receiver: &swiftast.Expr{Kind: swiftast.ExprSelf}}
	body := swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &call}
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("run")}, &body))

	require.NoError(t, UsageAnalysis(col))

	assert.Len(t, col.UsagesFor(intention.UsageMethod, "reload"), 1)
}
