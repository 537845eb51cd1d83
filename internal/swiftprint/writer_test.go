package swiftprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

func bodyReturning(e swiftast.Expr) *swiftast.Stmt {
	return &swiftast.Stmt{Kind: swiftast.StmtReturn, Value: &e}
}

func TestPrint_ClassWithIvarPropertyInitMethod_DefaultOptions(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)

	c := intention.NewClass(cst.Pos{}, true, "Foo")
	c.SuperclassName = "NSObject"
	f.AddClass(c)

	c.AddIvar(intention.NewInstanceVariable(cst.Pos{}, true, "count", intention.StorageSpec{Type: swifttype.Nominal("Int32")}, cst.AccessPrivate))

	prop := intention.NewProperty(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, 0)
	c.AddProperty(prop)

	initSig := intention.Signature{Selector: intention.NewSelector("initWithName:")}
	initSig.Params = []intention.ParamSignature{{Name: "name", Type: swifttype.Nominal("String")}}
	c.AddInit(intention.NewInitializer(cst.Pos{}, true, initSig, &swiftast.Stmt{Kind: swiftast.StmtCompound}))

	methodSig := intention.Signature{Selector: intention.NewSelector("greet"), ReturnType: swifttype.Nominal("String")}
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, methodSig, bodyReturning(swiftast.Identifier("name"))))

	out := Print(col, config.WriterConfig{})

	assert.Contains(t, out, "@objc\nclass Foo: NSObject {")
	assert.Contains(t, out, "private var count: Int32")
	assert.Contains(t, out, "var name: String")
	assert.Contains(t, out, "init(name: String) {")
	assert.Contains(t, out, "func greet() -> String {")
	assert.Contains(t, out, "return name")
}

func TestPrint_OmitObjCCompatibility_DropsAttributeAndNSObjectBase(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	c.SuperclassName = "NSObject"
	f.AddClass(c)

	out := Print(col, config.WriterConfig{OmitObjCCompatibility: true})

	assert.NotContains(t, out, "@objc")
	assert.Contains(t, out, "class Foo {")
	assert.NotContains(t, out, "NSObject")
}

func TestPrint_NamedCategoryGetsMarkComment(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	ext := intention.NewClassExtension(cst.Pos{}, true, "Foo", "Convenience")
	f.AddExtension(ext)
	ext.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("helper")}, &swiftast.Stmt{Kind: swiftast.StmtCompound}))

	out := Print(col, config.WriterConfig{})

	assert.Contains(t, out, "// MARK: - Convenience")
	assert.Contains(t, out, "extension Foo {")
	assert.Contains(t, out, "func helper() {")
}

func TestPrint_TypealiasAndGlobalsPrecedeTypes(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	f.AddTypealias(intention.NewTypealias(cst.Pos{}, true, "MyInt", swifttype.Nominal("Int32")))
	f.AddGlobal(intention.NewGlobalVariable(cst.Pos{}, true, "counter", intention.StorageSpec{Type: swifttype.Nominal("Int32")}, nil))
	f.AddClass(intention.NewClass(cst.Pos{}, true, "Foo"))

	out := Print(col, config.WriterConfig{})

	typealiasIdx := strings.Index(out, "typealias MyInt")
	globalIdx := strings.Index(out, "var counter")
	classIdx := strings.Index(out, "class Foo")
	require.True(t, typealiasIdx >= 0 && globalIdx >= 0 && classIdx >= 0)
	assert.Less(t, typealiasIdx, globalIdx)
	assert.Less(t, globalIdx, classIdx)
}

func TestPrint_ComputedPropertyRendersGetAndSet(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)

	prop := intention.NewProperty(cst.Pos{}, true, "total", intention.StorageSpec{Type: swifttype.Nominal("Int32")}, 0)
	prop.Mode = intention.EPropertyMode.ComputedGetterSetter()
	prop.GetterBody = bodyReturning(swiftast.Identifier("_total"))
	assign := swiftast.Expr{Kind: swiftast.ExprBinary, Operator: "=", Lhs: exprPtr(swiftast.Identifier("_total")), Rhs: exprPtr(swiftast.Identifier("newValue"))}
	prop.SetterBody = &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &assign}
	c.AddProperty(prop)

	out := Print(col, config.WriterConfig{})

	assert.Contains(t, out, "var total: Int32 {")
	assert.Contains(t, out, "get {")
	assert.Contains(t, out, "set {")
	assert.Contains(t, out, "return _total")
	assert.Contains(t, out, "_total = newValue")
}

func TestPrint_IfLetStatementRendersAsIfLetBinding(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)

	bound := swiftast.Identifier("maybeName")
	ifLet := &swiftast.Stmt{
		Kind:    swiftast.StmtIf,
		VarDecl: &swiftast.VarDecl{Name: "maybeName", Init: &bound},
		Then: &swiftast.Stmt{Kind: swiftast.StmtCompound, Items: []swiftast.CompoundItem{
			{Kind: swiftast.CompoundItemStmt, Stmt: &swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: exprPtr(swiftast.Identifier("maybeName"))}},
		}},
	}
	body := &swiftast.Stmt{Kind: swiftast.StmtCompound, Items: []swiftast.CompoundItem{
		{Kind: swiftast.CompoundItemStmt, Stmt: ifLet},
	}}
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("run")}, body))

	out := Print(col, config.WriterConfig{})

	assert.Contains(t, out, "if let maybeName = maybeName {")
}

func TestPrint_HistoryCommentOnlyWhenEnabled(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	f.AddClass(intention.NewClass(cst.Pos{}, true, "Foo"))

	without := Print(col, config.WriterConfig{})
	assert.NotContains(t, without, "history:")

	withHistory := Print(col, config.WriterConfig{PrintIntentionHistory: true})
	assert.Contains(t, withHistory, "history:")
	assert.Contains(t, withHistory, "Creation")
}

func TestPrint_MultiKeywordMethodLabelsParamsAfterTheFirst(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)

	sig := intention.Signature{
		Selector: intention.NewSelector("doThing:", "withValue:"),
		Params: []intention.ParamSignature{
			{Name: "thing", Type: swifttype.Nominal("String")},
			{Name: "value", Type: swifttype.Nominal("Int32")},
		},
	}
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, sig, &swiftast.Stmt{Kind: swiftast.StmtCompound}))

	out := Print(col, config.WriterConfig{})

	assert.Contains(t, out, "func doThing(_ thing: String, withValue value: Int32) {")
}

func exprPtr(e swiftast.Expr) *swiftast.Expr { return &e }
