package swiftprint

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// writeExpr renders one expression to w, with no leading/trailing
// whitespace of its own; callers that need indentation or a trailing
// newline add it themselves.
func (w *Writer) writeExpr(e *swiftast.Expr) {
	if e == nil {
		w.b.WriteString("nil")
		return
	}
	switch e.Kind {
	case swiftast.ExprIdentifier:
		w.b.WriteString(e.Name)
	case swiftast.ExprIntLiteral:
		w.b.WriteString(swiftNumberLiteral(e.IntText, e.NumberBase))
	case swiftast.ExprFloatLiteral:
		w.b.WriteString(swiftNumberLiteral(e.FloatText, e.NumberBase))
	case swiftast.ExprStringLiteral:
		w.b.WriteByte('"')
		w.b.WriteString(e.StringValue)
		w.b.WriteByte('"')
	case swiftast.ExprBoolLiteral:
		if e.BoolValue {
			w.b.WriteString("true")
		} else {
			w.b.WriteString("false")
		}
	case swiftast.ExprNilLiteral:
		w.b.WriteString("nil")
	case swiftast.ExprSelf:
		w.b.WriteString("self")
	case swiftast.ExprSuper:
		w.b.WriteString("super")
	case swiftast.ExprNilCoalescing:
		w.writeExpr(e.Lhs)
		w.b.WriteString(" ?? ")
		w.writeExpr(e.Rhs)
	case swiftast.ExprTernary:
		w.writeExpr(e.Cond)
		w.b.WriteString(" ? ")
		w.writeExpr(e.Then)
		w.b.WriteString(" : ")
		w.writeExpr(e.Else)
	case swiftast.ExprBinary:
		w.writeExpr(e.Lhs)
		w.b.WriteByte(' ')
		w.b.WriteString(e.Operator)
		w.b.WriteByte(' ')
		w.writeExpr(e.Rhs)
	case swiftast.ExprUnary:
		w.b.WriteString(e.Operator)
		w.writeExpr(e.Operand)
	case swiftast.ExprCompoundAssign:
		w.writeExpr(e.Lhs)
		w.b.WriteByte(' ')
		w.b.WriteString(e.Operator)
		w.b.WriteString("= ")
		w.writeExpr(e.Rhs)
	case swiftast.ExprCall:
		w.writeCall(e)
	case swiftast.ExprMemberAccess:
		w.writeExpr(e.Receiver)
		w.b.WriteByte('.')
		w.b.WriteString(e.Member)
	case swiftast.ExprOptionalChain:
		w.writeExpr(e.Receiver)
		w.b.WriteString("?.")
		w.b.WriteString(e.Member)
	case swiftast.ExprSelectorLiteral:
		w.b.WriteString("#selector(")
		w.b.WriteString(e.SelectorText)
		w.b.WriteByte(')')
	case swiftast.ExprAsCast:
		w.writeExpr(e.Operand)
		if e.AsForced {
			w.b.WriteString(" as! ")
		} else {
			w.b.WriteString(" as? ")
		}
		w.b.WriteString(e.CastType.String())
	case swiftast.ExprCallCast:
		w.b.WriteString(e.CastType.String())
		w.b.WriteByte('(')
		w.writeExpr(e.Operand)
		w.b.WriteByte(')')
	case swiftast.ExprClosure:
		w.writeClosure(e)
	case swiftast.ExprArrayLiteral:
		w.b.WriteByte('[')
		for i := range e.Elements {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.writeExpr(&e.Elements[i])
		}
		w.b.WriteByte(']')
	case swiftast.ExprDictionaryLiteral:
		w.writeDictionaryLiteral(e)
	case swiftast.ExprParenthesized:
		w.b.WriteByte('(')
		w.writeExpr(e.Inner)
		w.b.WriteByte(')')
	case swiftast.ExprSubscript:
		w.writeExpr(e.Receiver)
		w.b.WriteByte('[')
		w.writeExpr(e.Index)
		w.b.WriteByte(']')
	case swiftast.ExprUnknown:
		w.b.WriteString(e.RawText)
	default:
		w.b.WriteString("/* unrenderable expression */")
	}
}

func (w *Writer) writeCall(e *swiftast.Expr) {
	if e.Receiver != nil {
		w.writeExpr(e.Receiver)
		w.b.WriteByte('.')
	}
	w.b.WriteString(e.Name)
	w.b.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			w.b.WriteString(", ")
		}
		if a.Label != "" {
			w.b.WriteString(a.Label)
			w.b.WriteString(": ")
		}
		w.writeExpr(&e.Args[i].Value)
	}
	w.b.WriteByte(')')
}

func (w *Writer) writeClosure(e *swiftast.Expr) {
	w.b.WriteByte('{')
	if len(e.ClosureParams) > 0 {
		w.b.WriteByte(' ')
		for i, p := range e.ClosureParams {
			if i > 0 {
				w.b.WriteString(", ")
			}
			w.b.WriteString(p.Name)
			w.b.WriteString(": ")
			w.b.WriteString(p.Type.String())
		}
		w.b.WriteString(" in")
	}
	w.b.WriteByte('\n')
	w.indent++
	w.writeStmtBody(e.ClosureBody)
	w.indent--
	w.writeIndent()
	w.b.WriteByte('}')
}

func (w *Writer) writeDictionaryLiteral(e *swiftast.Expr) {
	if len(e.Keys) == 0 {
		w.b.WriteString("[:]")
		return
	}
	w.b.WriteByte('[')
	for i := range e.Keys {
		if i > 0 {
			w.b.WriteString(", ")
		}
		w.writeExpr(&e.Keys[i])
		w.b.WriteString(": ")
		w.writeExpr(&e.Elements[i])
	}
	w.b.WriteByte(']')
}

// swiftNumberLiteral re-encodes an Objective-C numeric literal's digits
// under Swift's own base prefix. Octal needs this: ObjC's C-style leading
// zero (`010`) is decimal 10 in Swift, not octal 8, so passing the raw
// text through would silently change the value. Hex and binary already
// share syntax with Swift, but are re-prefixed the same way for
// consistency rather than trusting the source text's casing.
func swiftNumberLiteral(text string, base swiftast.NumberBase) string {
	switch base {
	case swiftast.NumBaseOctal:
		return "0o" + nonEmptyDigits(strings.TrimPrefix(text, "0"))
	case swiftast.NumBaseHex:
		return "0x" + nonEmptyDigits(trimAny(text, "0x", "0X"))
	case swiftast.NumBaseBinary:
		return "0b" + nonEmptyDigits(trimAny(text, "0b", "0B"))
	default:
		return text
	}
}

func trimAny(text string, prefixes ...string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return strings.TrimPrefix(text, p)
		}
	}
	return text
}

func nonEmptyDigits(digits string) string {
	if digits == "" {
		return "0"
	}
	return digits
}

// exprString renders e to a standalone string, used where an expression
// appears inline in a declaration header (a default parameter value, a
// global variable's initializer) rather than inside a statement body.
func exprString(e *swiftast.Expr) string {
	var w Writer
	w.writeExpr(e)
	return w.b.String()
}
