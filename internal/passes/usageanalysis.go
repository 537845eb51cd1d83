package passes

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// UsageAnalysis implements spec.md §4.4.6: walk every function body and
// record, for each referenced declaration, the list of call or reference
// sites. The data lands on intention.Collection.Usages for the downstream
// expression-rewriting passes to consult.
func UsageAnalysis(col *intention.Collection) error {
	globalNames, enumCaseNames := collectKnownNames(col)

	for _, f := range col.Files {
		for _, gf := range f.GlobalFuncs {
			walkBodyForUsage(col, gf.Body, globalNames, enumCaseNames)
		}
		for _, c := range f.Classes {
			for _, m := range c.Methods {
				walkBodyForUsage(col, m.Body, globalNames, enumCaseNames)
			}
			for _, i := range c.Inits {
				walkBodyForUsage(col, i.Body, globalNames, enumCaseNames)
			}
			for _, p := range c.Props {
				walkBodyForUsage(col, p.GetterBody, globalNames, enumCaseNames)
				walkBodyForUsage(col, p.SetterBody, globalNames, enumCaseNames)
			}
		}
		for _, e := range f.Extensions {
			for _, m := range e.Methods {
				walkBodyForUsage(col, m.Body, globalNames, enumCaseNames)
			}
			for _, p := range e.Props {
				walkBodyForUsage(col, p.GetterBody, globalNames, enumCaseNames)
				walkBodyForUsage(col, p.SetterBody, globalNames, enumCaseNames)
			}
		}
	}
	return nil
}

func collectKnownNames(col *intention.Collection) (globals, enumCases map[string]bool) {
	globals = map[string]bool{}
	enumCases = map[string]bool{}
	for _, f := range col.Files {
		for _, g := range f.Globals {
			globals[g.Name] = true
		}
		for _, e := range f.Enums {
			for _, c := range e.Cases {
				enumCases[c.Name] = true
			}
		}
	}
	return
}

// walkBodyForUsage records each reference site at a zero cst.Pos: by this
// pass, swiftast has already been lowered from the cst tree and carries no
// source location of its own, so sites are attributable to their owning
// declaration rather than a specific line.
func walkBodyForUsage(col *intention.Collection, body *swiftast.Stmt, globals, enumCases map[string]bool) {
	if body == nil {
		return
	}
	walkStmt(body, func(e *swiftast.Expr) {
		switch e.Kind {
		case swiftast.ExprCall:
			if e.Receiver != nil {
				col.RecordUsage(intention.UsageMethod, e.Name, cst.Pos{})
			}
		case swiftast.ExprMemberAccess, swiftast.ExprOptionalChain:
			kind := intention.UsageProperty
			if strings.HasPrefix(e.Member, "_") {
				kind = intention.UsageIvar
			}
			col.RecordUsage(kind, e.Member, cst.Pos{})
		case swiftast.ExprIdentifier:
			if globals[e.Name] {
				col.RecordUsage(intention.UsageGlobal, e.Name, cst.Pos{})
			}
			if enumCases[e.Name] {
				col.RecordUsage(intention.UsageEnumCase, e.Name, cst.Pos{})
			}
		}
	})
}
