package astreader

import (
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// readStmt lowers one cst.Stmt into its swiftast.Stmt equivalent,
// preserving the source order of statements and local declarations within
// a compound statement exactly (spec.md §4.3, §8 property 5). A classic C
// for loop becomes a StmtFor node (see readFor), which the pretty-printer
// renders in Swift's while-loop-plus-step shape, since Swift dropped
// C-style for.
func readStmt(ctx Context, s *cst.Stmt) swiftast.Stmt {
	if s == nil {
		return swiftast.Stmt{Kind: swiftast.StmtCompound}
	}
	switch s.Kind {
	case cst.StmtIf:
		return readIf(ctx, s)

	case cst.StmtWhile:
		cond := readExpr(ctx, s.Cond)
		body := readStmt(ctx, s.Body)
		return swiftast.Stmt{Kind: swiftast.StmtWhile, Cond: &cond, Body: &body}

	case cst.StmtDoWhile:
		cond := readExpr(ctx, s.Cond)
		body := readStmt(ctx, s.Body)
		return swiftast.Stmt{Kind: swiftast.StmtRepeatWhile, Cond: &cond, Body: &body}

	case cst.StmtFor:
		return readFor(ctx, s)

	case cst.StmtForIn:
		collection := readExpr(ctx, s.Collection)
		body := readStmt(ctx, s.Body)
		return swiftast.Stmt{
			Kind:        swiftast.StmtForIn,
			LoopVarName: s.LoopVarName,
			LoopVarType: resolveType(ctx, s.LoopVarType),
			Collection:  &collection,
			Body:        &body,
		}

	case cst.StmtSwitch:
		return readSwitch(ctx, s)

	case cst.StmtReturn:
		if s.Value == nil {
			return swiftast.Stmt{Kind: swiftast.StmtReturn}
		}
		v := readExpr(ctx, s.Value)
		return swiftast.Stmt{Kind: swiftast.StmtReturn, Value: &v}

	case cst.StmtBreak:
		return swiftast.Stmt{Kind: swiftast.StmtBreak}

	case cst.StmtContinue:
		return swiftast.Stmt{Kind: swiftast.StmtContinue}

	case cst.StmtCompound:
		items := make([]swiftast.CompoundItem, len(s.Items))
		for i := range s.Items {
			items[i] = readCompoundItem(ctx, &s.Items[i])
		}
		return swiftast.Stmt{Kind: swiftast.StmtCompound, Items: items}

	case cst.StmtVarDecl:
		decl := readVarDecl(ctx, s.VarDecl)
		return swiftast.Stmt{Kind: swiftast.StmtVarDecl, VarDecl: &decl}

	case cst.StmtExpr:
		e := readExpr(ctx, s.Expr)
		return swiftast.Stmt{Kind: swiftast.StmtExpr, Expr: &e}

	default:
		ctx.report(diagnostics.ESeverity.Warning(), "astreader.statement", "unrecognized statement construct", s.Pos)
		return swiftast.Stmt{Kind: swiftast.StmtUnknown, RawText: s.RawText}
	}
}

func readIf(ctx Context, s *cst.Stmt) swiftast.Stmt {
	cond := readExpr(ctx, s.Cond)
	then := readStmt(ctx, s.Then)
	out := swiftast.Stmt{Kind: swiftast.StmtIf, Cond: &cond, Then: &then}
	if s.Else != nil {
		elseStmt := readStmt(ctx, s.Else)
		out.Else = &elseStmt
	}
	return out
}

// readFor lowers a classic C for(init;cond;step) loop into a StmtFor node
// that keeps Init, Cond, Step and Body as separate fields; the writer
// (swiftprint's writeDesugaredFor) renders it as the init followed by a
// Swift while loop with the step at the end of its body, since Swift has
// no direct equivalent (spec.md §4.3).
func readFor(ctx Context, s *cst.Stmt) swiftast.Stmt {
	body := readStmt(ctx, s.Body)
	whileStmt := swiftast.Stmt{Kind: swiftast.StmtFor, Body: &body}
	if s.Cond != nil {
		cond := readExpr(ctx, s.Cond)
		whileStmt.Cond = &cond
	}
	if s.Init != nil {
		init := readCompoundItem(ctx, s.Init)
		whileStmt.Init = &init
	}
	if s.Step != nil {
		step := readExpr(ctx, s.Step)
		whileStmt.Step = &step
	}
	return whileStmt
}

func readSwitch(ctx Context, s *cst.Stmt) swiftast.Stmt {
	subject := readExpr(ctx, s.Subject)
	cases := make([]swiftast.SwitchCase, len(s.Cases))
	for i, c := range s.Cases {
		values := make([]swiftast.Expr, len(c.Values))
		for j := range c.Values {
			values[j] = readExpr(ctx, &c.Values[j])
		}
		body := make([]swiftast.CompoundItem, len(c.Body))
		for j := range c.Body {
			body[j] = readCompoundItem(ctx, &c.Body[j])
		}
		cases[i] = swiftast.SwitchCase{Values: values, Body: body}
	}
	return swiftast.Stmt{Kind: swiftast.StmtSwitch, Subject: &subject, Cases: cases}
}

func readCompoundItem(ctx Context, item *cst.CompoundItem) swiftast.CompoundItem {
	if item.Kind == cst.CompoundItemDecl {
		decl := readVarDecl(ctx, item.Decl)
		return swiftast.CompoundItem{Kind: swiftast.CompoundItemDecl, Decl: &decl}
	}
	s := readStmt(ctx, item.Stmt)
	return swiftast.CompoundItem{Kind: swiftast.CompoundItemStmt, Stmt: &s}
}

func readVarDecl(ctx Context, d *cst.VarDeclStmt) swiftast.VarDecl {
	out := swiftast.VarDecl{Name: d.Name, Type: resolveType(ctx, d.Type), IsVariable: true}
	if d.Init != nil {
		init := readExpr(ctx, d.Init)
		out.Init = &init
	}
	return out
}
