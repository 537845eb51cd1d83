// Package swiftast models the Swift-flavored expression/statement trees the
// AST readers produce (spec.md §3, §4.3) and the downstream expression
// passes (§4.5) rewrite in place.
package swiftast

import "github.com/johndpope/SwiftRewriter/internal/swifttype"

type ExprKind uint8

const (
	ExprIdentifier ExprKind = iota
	ExprIntLiteral
	ExprFloatLiteral
	ExprStringLiteral
	ExprBoolLiteral
	ExprNilLiteral
	ExprSelf
	ExprSuper
	ExprNilCoalescing // a ?? b
	ExprTernary       // a ? b : c (full, non-elided form)
	ExprBinary
	ExprUnary
	ExprCompoundAssign // a += 1 (the desugared form of ++/--)
	ExprCall           // receiver.name(args...)
	ExprMemberAccess   // receiver.member
	ExprOptionalChain  // receiver?.member / receiver?.call(...)
	ExprSelectorLiteral
	ExprAsCast   // expr as? T / expr as! T
	ExprCallCast // T(expr) for numeric value-type casts
	ExprClosure
	ExprArrayLiteral
	ExprDictionaryLiteral
	ExprParenthesized
	ExprSubscript
	ExprUnknown
)

type NumberBase uint8

const (
	NumBaseDecimal NumberBase = iota
	NumBaseOctal
	NumBaseHex
	NumBaseBinary
)

// Argument is a (possibly labeled) call argument, labeled arguments coming
// from Objective-C keyword pieces, unlabeled ones from extra comma-separated
// expressions within one keyword (spec.md §4.3).
type Argument struct {
	Label string // "" for positional
	Value Expr
}

type ClosureParam struct {
	Name string
	Type swifttype.Type
}

type Expr struct {
	Kind ExprKind

	Name string // ExprIdentifier / ExprMemberAccess(Member) / ExprCall(Name)

	IntText    string // suffix-stripped numeric literal text
	NumberBase NumberBase
	FloatText  string // kept as raw text when Swift float parsing would fail
	StringValue string
	BoolValue  bool

	Cond *Expr
	Then *Expr
	Else *Expr

	Operator string
	Lhs      *Expr
	Rhs      *Expr

	Receiver *Expr
	Member   string
	Args     []Argument

	SelectorText string

	CastType swifttype.Type
	Operand  *Expr
	AsForced bool // `as!` instead of `as?`

	ClosureParams []ClosureParam
	ClosureReturn swifttype.Type
	ClosureBody   *Stmt

	Elements []Expr
	Keys     []Expr

	Inner *Expr
	Index *Expr

	RawText string

	// InferredType is filled in by internal/exprpass's type resolution
	// pass (spec.md §4.5); zero-value (Kind: swifttype's nominal zero,
	// i.e. an empty Nominal) until that pass runs.
	InferredType swifttype.Type
}

func Identifier(name string) Expr { return Expr{Kind: ExprIdentifier, Name: name} }
func NilLiteral() Expr            { return Expr{Kind: ExprNilLiteral} }
func SelfExpr() Expr              { return Expr{Kind: ExprSelf} }

func NilCoalescing(lhs, rhs Expr) Expr {
	return Expr{Kind: ExprNilCoalescing, Lhs: &lhs, Rhs: &rhs}
}

func MemberAccess(receiver Expr, member string) Expr {
	return Expr{Kind: ExprMemberAccess, Receiver: &receiver, Member: member}
}

func OptionalChain(receiver Expr, member string) Expr {
	return Expr{Kind: ExprOptionalChain, Receiver: &receiver, Member: member}
}

func Call(receiver *Expr, name string, args ...Argument) Expr {
	return Expr{Kind: ExprCall, Receiver: receiver, Name: name, Args: args}
}

func Unknown(rawText string) Expr {
	return Expr{Kind: ExprUnknown, RawText: rawText}
}
