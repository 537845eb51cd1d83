package swiftast

import "github.com/johndpope/SwiftRewriter/internal/swifttype"

type StmtKind uint8

const (
	StmtIf StmtKind = iota
	StmtWhile
	StmtRepeatWhile // Swift's do-while equivalent
	StmtFor         // desugared classic C for, emitted as while + step
	StmtForIn
	StmtSwitch
	StmtReturn
	StmtBreak
	StmtContinue
	StmtCompound
	StmtVarDecl
	StmtExpr
	StmtUnknown
)

type CompoundItemKind uint8

const (
	CompoundItemStmt CompoundItemKind = iota
	CompoundItemDecl
)

// CompoundItem preserves the source order of statements and local
// declarations within a compound statement (spec.md §4.3, §8 property 5).
type CompoundItem struct {
	Kind CompoundItemKind
	Stmt *Stmt
	Decl *VarDecl
}

type VarDecl struct {
	Name       string
	Type       swifttype.Type
	Init       *Expr
	IsVariable bool // `var` vs `let`
}

type SwitchCase struct {
	Values []Expr // empty = default
	Body   []CompoundItem
}

type Stmt struct {
	Kind StmtKind

	Cond *Expr
	Then *Stmt
	Else *Stmt

	Body *Stmt

	Init *CompoundItem
	Step *Expr

	LoopVarName string
	LoopVarType swifttype.Type
	Collection  *Expr

	Subject *Expr
	Cases   []SwitchCase

	Value *Expr

	Items []CompoundItem

	VarDecl *VarDecl

	Expr *Expr

	RawText string
}

func Compound(items ...CompoundItem) Stmt {
	return Stmt{Kind: StmtCompound, Items: items}
}

func ExprStmt(e Expr) CompoundItem {
	return CompoundItem{Kind: CompoundItemStmt, Stmt: &Stmt{Kind: StmtExpr, Expr: &e}}
}

func DeclItem(d VarDecl) CompoundItem {
	return CompoundItem{Kind: CompoundItemDecl, Decl: &d}
}
