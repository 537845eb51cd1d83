package cst

// ExprKind tags the Objective-C expression grammar forms the expression
// reader (spec.md §4.3) consumes.
type ExprKind uint8

const (
	ExprIdentifier ExprKind = iota
	ExprNumberLiteral
	ExprStringLiteral
	ExprBoolLiteral
	ExprNilLiteral
	ExprSelf
	ExprSuper
	ExprTernary       // a ? b : c, where b may be absent (GCC ?: extension)
	ExprBinary        // includes the paired-token shift-operator case
	ExprUnary
	ExprIncDec // ++/-- prefix or postfix
	ExprMessageSend    // [receiver kw1:a1 kw2:a2]
	ExprSelectorLiteral // @selector(x:y:)
	ExprCast           // (T)expr
	ExprBlockLiteral
	ExprArrayLiteral
	ExprDictionaryLiteral
	ExprParenthesized
	ExprMemberAccess // receiver.member (dot syntax, distinct from message send)
	ExprSubscript
	ExprUnknown // unrecognized construct; RawText preserves source
)

type NumberBase uint8

const (
	NumBaseDecimal NumberBase = iota
	NumBaseOctal
	NumBaseHex
	NumBaseBinary
)

type Expr struct {
	Kind ExprKind
	Pos  Pos

	// ExprIdentifier
	Name string

	// ExprNumberLiteral
	NumberText string // suffix-stripped (u/U/l/L/f/F/d/D removed before this point)
	NumberBase NumberBase
	IsFloat    bool

	// ExprStringLiteral
	StringValue string

	// ExprBoolLiteral
	BoolValue bool

	// ExprTernary: Else is never nil; Then is nil for the `a ?: c` elision
	Cond *Expr
	Then *Expr
	Else *Expr

	// ExprBinary / ExprUnary / ExprIncDec
	Operator string // "+","-","<<",">>","++","--", etc.
	Lhs      *Expr
	Rhs      *Expr
	IsPrefix bool // ExprUnary / ExprIncDec

	// ExprMessageSend
	Receiver       *Expr
	SelectorPieces []string
	Args           []MessageArg

	// ExprSelectorLiteral
	SelectorText string // e.g. "doSomething:withArg:"

	// ExprCast
	CastType TypeRef
	Operand  *Expr

	// ExprBlockLiteral
	BlockParams []Param
	BlockReturn TypeRef
	BlockBody   *Stmt

	// ExprArrayLiteral / ExprDictionaryLiteral
	Elements []Expr
	Keys     []Expr // ExprDictionaryLiteral: parallel to Elements (values)

	// ExprParenthesized
	Inner *Expr

	// ExprMemberAccess
	Member string

	// ExprSubscript
	Index *Expr

	// ExprUnknown
	RawText string
}

// MessageArg is one keyword's argument list in a message send; a single
// keyword may carry more than one comma-separated expression, which become
// unlabeled positional arguments after the first (spec.md §4.3).
type MessageArg struct {
	Extra []Expr // comma-separated expressions beyond the first, if any
	Value Expr
}
