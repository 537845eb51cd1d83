package passes

import (
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// SynthesizeBackingField implements spec.md §4.4.4: for each
// `@synthesize name = backing;` directive attached to an implementation,
// collapse the property and its backing ivar (when backing == name) or
// rewrite the property as computed over an explicit stored ivar (when
// backing != name). `@dynamic` directives are a no-op.
func SynthesizeBackingField(col *intention.Collection) error {
	for _, f := range col.Files {
		for _, c := range f.Classes {
			synthesizeClass(c)
		}
	}
	return nil
}

func synthesizeClass(c *intention.ClassIntention) {
	for _, d := range c.Synthesizes {
		if d.IsDynamic {
			continue
		}
		prop := c.PropertyByName(d.PropertyName)
		if prop == nil {
			continue
		}
		if d.BackingName == "" || d.BackingName == d.PropertyName {
			collapseIntoStoredProperty(c, prop, d.PropertyName)
		} else {
			rewriteAsComputedOverIvar(c, prop, d.BackingName)
		}
	}
	c.Synthesizes = nil
}

// collapseIntoStoredProperty handles `@synthesize name = name;` (or the
// bare `@synthesize name;` form): the property and its same-named ivar
// become one stored property. A readonly property backed by a @private
// ivar downgrades to `private(set)` rather than losing its setter
// entirely, since the ivar was never publicly settable either.
func collapseIntoStoredProperty(c *intention.ClassIntention, prop *intention.PropertyIntention, ivarName string) {
	prop.BackingIvarName = ivarName
	if iv := c.IvarByName(ivarName); iv != nil {
		if prop.IsReadonly() && iv.Access == cst.AccessPrivate {
			prop.AccessDowngrade = "private(set)"
		}
	}
	prop.Mode = intention.EPropertyMode.Field()
	prop.History().Append("SynthesizeBackingField", "collapsed into stored property backed by "+ivarName, prop.SourceLoc())
}

// rewriteAsComputedOverIvar handles `@synthesize name = backing;` where
// backing != name: an explicit stored ivar named backing is introduced (if
// not already present) and the property becomes computed over it.
func rewriteAsComputedOverIvar(c *intention.ClassIntention, prop *intention.PropertyIntention, backing string) {
	if c.IvarByName(backing) == nil {
		iv := intention.NewInstanceVariable(prop.SourceLoc(), prop.InNonnullContext(), backing, prop.Storage, cst.AccessPrivate)
		c.AddIvar(iv)
	}

	prop.BackingIvarName = backing
	prop.GetterBody = ptrStmt(swiftast.Stmt{
		Kind: swiftast.StmtReturn,
		Value: ptrExpr(swiftast.Identifier(backing)),
	})
	if !prop.IsReadonly() {
		assign := swiftast.Expr{
			Kind:     swiftast.ExprBinary,
			Operator: "=",
			Lhs:      ptrExpr(swiftast.Identifier(backing)),
			Rhs:      ptrExpr(swiftast.Identifier("newValue")),
		}
		prop.SetterBody = ptrStmt(swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &assign})
	}
	prop.Mode = intention.EPropertyMode.ComputedGetterSetter()
	if prop.IsReadonly() {
		prop.Mode = intention.EPropertyMode.ComputedGetter()
	}
	prop.History().Append("SynthesizeBackingField", "rewritten as computed property over ivar "+backing, prop.SourceLoc())
}

func ptrStmt(s swiftast.Stmt) *swiftast.Stmt { return &s }
func ptrExpr(e swiftast.Expr) *swiftast.Expr { return &e }
