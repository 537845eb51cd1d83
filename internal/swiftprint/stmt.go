package swiftprint

import "github.com/johndpope/SwiftRewriter/internal/swiftast"

// writeStmtBody renders a compound statement's items as a sequence of
// indented lines; the caller is responsible for the surrounding braces.
// A nil body (an abstract method with no implementation) prints nothing.
func (w *Writer) writeStmtBody(s *swiftast.Stmt) {
	if s == nil {
		return
	}
	if s.Kind != swiftast.StmtCompound {
		w.writeIndent()
		w.writeStmt(s)
		w.b.WriteByte('\n')
		return
	}
	for _, item := range s.Items {
		w.writeCompoundItem(item)
	}
}

func (w *Writer) writeCompoundItem(item swiftast.CompoundItem) {
	switch item.Kind {
	case swiftast.CompoundItemDecl:
		w.writeIndent()
		w.writeVarDecl(item.Decl)
		w.b.WriteByte('\n')
	case swiftast.CompoundItemStmt:
		if item.Stmt == nil {
			return
		}
		w.writeIndent()
		w.writeStmt(item.Stmt)
		w.b.WriteByte('\n')
	}
}

func (w *Writer) writeVarDecl(d *swiftast.VarDecl) {
	if d.IsVariable {
		w.b.WriteString("var ")
	} else {
		w.b.WriteString("let ")
	}
	w.b.WriteString(d.Name)
	w.b.WriteString(": ")
	w.b.WriteString(d.Type.String())
	if d.Init != nil {
		w.b.WriteString(" = ")
		w.writeExpr(d.Init)
	}
}

// writeStmt renders one non-compound statement. StmtCompound is handled by
// writeStmtBody's caller wrapping it in braces (an if/while/for's Then/Body),
// so this only ever sees it when a compound appears somewhere unusual; that
// case is rendered as a nested brace block for safety.
func (w *Writer) writeStmt(s *swiftast.Stmt) {
	switch s.Kind {
	case swiftast.StmtIf:
		w.writeIf(s)
	case swiftast.StmtWhile:
		w.b.WriteString("while ")
		w.writeExpr(s.Cond)
		w.b.WriteString(" {\n")
		w.indent++
		w.writeStmtBody(s.Body)
		w.indent--
		w.writeIndent()
		w.b.WriteByte('}')
	case swiftast.StmtRepeatWhile:
		w.b.WriteString("repeat {\n")
		w.indent++
		w.writeStmtBody(s.Body)
		w.indent--
		w.writeIndent()
		w.b.WriteString("} while ")
		w.writeExpr(s.Cond)
	case swiftast.StmtFor:
		w.writeDesugaredFor(s)
	case swiftast.StmtForIn:
		w.b.WriteString("for ")
		w.b.WriteString(s.LoopVarName)
		w.b.WriteString(" in ")
		w.writeExpr(s.Collection)
		w.b.WriteString(" {\n")
		w.indent++
		w.writeStmtBody(s.Body)
		w.indent--
		w.writeIndent()
		w.b.WriteByte('}')
	case swiftast.StmtSwitch:
		w.writeSwitch(s)
	case swiftast.StmtReturn:
		w.b.WriteString("return")
		if s.Value != nil {
			w.b.WriteByte(' ')
			w.writeExpr(s.Value)
		}
	case swiftast.StmtBreak:
		w.b.WriteString("break")
	case swiftast.StmtContinue:
		w.b.WriteString("continue")
	case swiftast.StmtCompound:
		w.b.WriteString("{\n")
		w.indent++
		w.writeStmtBody(s)
		w.indent--
		w.writeIndent()
		w.b.WriteByte('}')
	case swiftast.StmtVarDecl:
		w.writeVarDecl(s.VarDecl)
	case swiftast.StmtExpr:
		w.writeExpr(s.Expr)
	case swiftast.StmtUnknown:
		w.b.WriteString(s.RawText)
	default:
		w.b.WriteString("/* unrenderable statement */")
	}
}

func (w *Writer) writeIf(s *swiftast.Stmt) {
	w.b.WriteString("if ")
	if s.VarDecl != nil && s.Cond == nil {
		// if-let binding, the shape IfLetRewriting produces (spec.md §4.5):
		// VarDecl carries the name, Cond stays nil.
		w.b.WriteString("let ")
		w.b.WriteString(s.VarDecl.Name)
		w.b.WriteString(" = ")
		w.writeExpr(s.VarDecl.Init)
	} else {
		w.writeExpr(s.Cond)
	}
	w.b.WriteString(" {\n")
	w.indent++
	w.writeStmtBody(s.Then)
	w.indent--
	w.writeIndent()
	w.b.WriteByte('}')
	if s.Else != nil {
		w.b.WriteString(" else ")
		if s.Else.Kind == swiftast.StmtIf {
			w.writeIf(s.Else)
		} else {
			w.b.WriteString("{\n")
			w.indent++
			w.writeStmtBody(s.Else)
			w.indent--
			w.writeIndent()
			w.b.WriteByte('}')
		}
	}
}

// writeDesugaredFor renders the classic C for loop the way spec.md §4.3
// says it must be lowered: as a while loop with the step expression
// appended to the end of the body.
func (w *Writer) writeDesugaredFor(s *swiftast.Stmt) {
	if s.Init != nil {
		switch s.Init.Kind {
		case swiftast.CompoundItemDecl:
			w.writeVarDecl(s.Init.Decl)
		case swiftast.CompoundItemStmt:
			if s.Init.Stmt != nil {
				w.writeStmt(s.Init.Stmt)
			}
		}
		w.b.WriteString("\n")
		w.writeIndent()
	}
	w.b.WriteString("while ")
	w.writeExpr(s.Cond)
	w.b.WriteString(" {\n")
	w.indent++
	w.writeStmtBody(s.Body)
	if s.Step != nil {
		w.writeIndent()
		w.writeExpr(s.Step)
		w.b.WriteByte('\n')
	}
	w.indent--
	w.writeIndent()
	w.b.WriteByte('}')
}

func (w *Writer) writeSwitch(s *swiftast.Stmt) {
	w.b.WriteString("switch ")
	w.writeExpr(s.Subject)
	w.b.WriteString(" {\n")
	for _, c := range s.Cases {
		w.writeIndent()
		if len(c.Values) == 0 {
			w.b.WriteString("default:\n")
		} else {
			w.b.WriteString("case ")
			for i := range c.Values {
				if i > 0 {
					w.b.WriteString(", ")
				}
				w.writeExpr(&c.Values[i])
			}
			w.b.WriteString(":\n")
		}
		w.indent++
		for _, item := range c.Body {
			w.writeCompoundItem(item)
		}
		w.indent--
	}
	w.writeIndent()
	w.b.WriteByte('}')
}
