package astreader

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

// readExpr lowers one cst.Expr into its swiftast.Expr equivalent, applying
// the rewrite rules spec.md §4.3 calls out explicitly:
//
//   - a ?: b (Then == nil) becomes a ?? b, a nil-coalescing expression;
//   - a message send becomes a call, its keyword pieces becoming argument
//     labels (the first piece becomes the method name, the rest become
//     labels on the following arguments);
//   - @selector(...) becomes a selector literal;
//   - ++/-- become the desugared compound-assignment form;
//   - a cast to a known reference type becomes `as?`; a cast to a
//     primitive/value type becomes a call-style conversion `T(...)`;
//   - a block literal becomes a closure.
//
// Anything this function doesn't recognize becomes swiftast.Unknown with
// the original text preserved, per spec.md §7's "unrecognized construct"
// policy: translation proceeds, never aborts.
func readExpr(ctx Context, e *cst.Expr) swiftast.Expr {
	if e == nil {
		return swiftast.NilLiteral()
	}
	switch e.Kind {
	case cst.ExprIdentifier:
		return swiftast.Identifier(e.Name)

	case cst.ExprNumberLiteral:
		if e.IsFloat {
			return swiftast.Expr{Kind: swiftast.ExprFloatLiteral, FloatText: e.NumberText, NumberBase: swiftast.NumberBase(e.NumberBase)}
		}
		return swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: e.NumberText, NumberBase: swiftast.NumberBase(e.NumberBase)}

	case cst.ExprStringLiteral:
		return swiftast.Expr{Kind: swiftast.ExprStringLiteral, StringValue: e.StringValue}

	case cst.ExprBoolLiteral:
		return swiftast.Expr{Kind: swiftast.ExprBoolLiteral, BoolValue: e.BoolValue}

	case cst.ExprNilLiteral:
		return swiftast.NilLiteral()

	case cst.ExprSelf:
		return swiftast.SelfExpr()

	case cst.ExprSuper:
		return swiftast.Expr{Kind: swiftast.ExprSuper}

	case cst.ExprTernary:
		return readTernary(ctx, e)

	case cst.ExprBinary:
		lhs := readExpr(ctx, e.Lhs)
		rhs := readExpr(ctx, e.Rhs)
		return swiftast.Expr{Kind: swiftast.ExprBinary, Operator: e.Operator, Lhs: &lhs, Rhs: &rhs}

	case cst.ExprUnary:
		operand := readExpr(ctx, e.Rhs)
		return swiftast.Expr{Kind: swiftast.ExprUnary, Operator: e.Operator, Rhs: &operand}

	case cst.ExprIncDec:
		return readIncDec(ctx, e)

	case cst.ExprMessageSend:
		return readMessageSend(ctx, e)

	case cst.ExprSelectorLiteral:
		return swiftast.Expr{Kind: swiftast.ExprSelectorLiteral, SelectorText: e.SelectorText}

	case cst.ExprCast:
		return readCast(ctx, e)

	case cst.ExprBlockLiteral:
		return readBlockLiteral(ctx, e)

	case cst.ExprArrayLiteral:
		elems := make([]swiftast.Expr, len(e.Elements))
		for i := range e.Elements {
			elems[i] = readExpr(ctx, &e.Elements[i])
		}
		return swiftast.Expr{Kind: swiftast.ExprArrayLiteral, Elements: elems}

	case cst.ExprDictionaryLiteral:
		keys := make([]swiftast.Expr, len(e.Keys))
		vals := make([]swiftast.Expr, len(e.Elements))
		for i := range e.Keys {
			keys[i] = readExpr(ctx, &e.Keys[i])
		}
		for i := range e.Elements {
			vals[i] = readExpr(ctx, &e.Elements[i])
		}
		return swiftast.Expr{Kind: swiftast.ExprDictionaryLiteral, Keys: keys, Elements: vals}

	case cst.ExprParenthesized:
		inner := readExpr(ctx, e.Inner)
		return swiftast.Expr{Kind: swiftast.ExprParenthesized, Inner: &inner}

	case cst.ExprMemberAccess:
		receiver := readExpr(ctx, e.Receiver)
		return swiftast.MemberAccess(receiver, e.Member)

	case cst.ExprSubscript:
		receiver := readExpr(ctx, e.Receiver)
		index := readExpr(ctx, e.Index)
		return swiftast.Expr{Kind: swiftast.ExprSubscript, Receiver: &receiver, Index: &index}

	default:
		ctx.report(diagnostics.ESeverity.Warning(), "astreader.expression", "unrecognized expression construct", e.Pos)
		return swiftast.Unknown(e.RawText)
	}
}

// readTernary elides `a ?: b` (Then == nil, the GCC extension) into Swift's
// nil-coalescing operator, and lowers a full `a ? b : c` ternary as-is
// (spec.md §4.3).
func readTernary(ctx Context, e *cst.Expr) swiftast.Expr {
	cond := readExpr(ctx, e.Cond)
	elseExpr := readExpr(ctx, e.Else)
	if e.Then == nil {
		return swiftast.NilCoalescing(cond, elseExpr)
	}
	then := readExpr(ctx, e.Then)
	return swiftast.Expr{Kind: swiftast.ExprTernary, Cond: &cond, Then: &then, Else: &elseExpr}
}

// readIncDec desugars `x++`/`x--`/`++x`/`--x` into the compound-assignment
// form Swift uses since it dropped ++/-- (spec.md §4.3).
func readIncDec(ctx Context, e *cst.Expr) swiftast.Expr {
	operand := readExpr(ctx, e.Lhs)
	op := "+="
	if e.Operator == "--" {
		op = "-="
	}
	one := swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "1"}
	return swiftast.Expr{Kind: swiftast.ExprCompoundAssign, Operator: op, Lhs: &operand, Rhs: &one}
}

// readMessageSend lowers `[receiver kw1:a1 kw2:a2]` into a call whose name
// is the selector's first keyword piece and whose remaining pieces become
// argument labels (spec.md §4.3). Extra comma-separated expressions within
// one keyword become unlabeled positional arguments immediately following
// it, mirroring cst.MessageArg's shape.
func readMessageSend(ctx Context, e *cst.Expr) swiftast.Expr {
	receiver := readExpr(ctx, e.Receiver)

	name := ""
	if len(e.SelectorPieces) > 0 {
		name = e.SelectorPieces[0]
	}

	var args []swiftast.Argument
	for i, piece := range e.SelectorPieces {
		if i >= len(e.Args) {
			break
		}
		label := ""
		if i > 0 {
			label = piece
		}
		arg := e.Args[i]
		args = append(args, swiftast.Argument{Label: label, Value: readExpr(ctx, &arg.Value)})
		for j := range arg.Extra {
			args = append(args, swiftast.Argument{Value: readExpr(ctx, &arg.Extra[j])})
		}
	}

	return swiftast.Call(&receiver, name, args...)
}

// readCast lowers `(T)expr`: a cast to a known reference type becomes
// Swift's conditional cast `as?`; a cast to a primitive/value type becomes
// a call-style conversion, e.g. `(NSInteger)x` -> `Int(x)` (spec.md §4.3).
func readCast(ctx Context, e *cst.Expr) swiftast.Expr {
	targetType := resolveType(ctx, e.CastType)
	operand := readExpr(ctx, e.Operand)

	if isValueTypeCast(e.CastType.Text) {
		return swiftast.Expr{Kind: swiftast.ExprCallCast, CastType: targetType, Operand: &operand}
	}
	return swiftast.Expr{Kind: swiftast.ExprAsCast, CastType: targetType, Operand: &operand}
}

func isValueTypeCast(typeText string) bool {
	t := strings.TrimSpace(typeText)
	_, isPrimitive := primitiveTypeNames[t]
	return isPrimitive
}

var primitiveTypeNames = buildPrimitiveTypeNameSet()

func buildPrimitiveTypeNameSet() map[string]struct{} {
	names := []string{"BOOL", "NSInteger", "NSUInteger", "CGFloat", "float", "double",
		"int", "int8_t", "int16_t", "int32_t", "int64_t",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t", "char", "short", "long", "NSTimeInterval"}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// readBlockLiteral lowers an Objective-C block literal into a Swift
// closure (spec.md §4.3).
func readBlockLiteral(ctx Context, e *cst.Expr) swiftast.Expr {
	params := make([]swiftast.ClosureParam, len(e.BlockParams))
	for i, p := range e.BlockParams {
		params[i] = swiftast.ClosureParam{Name: p.Name, Type: resolveType(ctx, p.Type)}
	}
	ret := resolveType(ctx, e.BlockReturn)
	body := readStmt(ctx, e.BlockBody)
	return swiftast.Expr{Kind: swiftast.ExprClosure, ClosureParams: params, ClosureReturn: ret, ClosureBody: &body}
}
