// Package cst defines the boundary between the external Objective-C
// parser and this repository: the parsed CST/AST shape the parser is
// expected to deliver (spec.md §1, §6). Lexing and grammar production are
// explicitly out of scope; this package only models the node shapes the
// structural, expression, and statement readers consume.
//
// Every node kind is a tagged variant (a Kind field plus the fields that
// kind populates), matched by a switch on Kind rather than reflection, per
// Design Note §9.
package cst

// DeclKind tags the top-level declaration forms the structural reader
// visits (spec.md §4.3's enumerated CST node kinds).
type DeclKind uint8

const (
	DeclInterface DeclKind = iota
	DeclImplementation
	DeclCategory
	DeclCategoryImplementation
	DeclProtocol
	DeclTypedefEnum
	DeclTypedefStruct
	DeclTypedefSimple
	DeclGlobalVariable
	DeclGlobalFunction
	DeclPreprocessorDirective
)

// Pos is a source location used for diagnostics and history provenance.
type Pos struct {
	File   string
	Line   int
	Column int
	// Token is the index of this node's leading token in the file's token
	// stream, used to test membership in an assume-nonnull region.
	Token int
}

// Decl is one top-level or type-member declaration node.
type Decl struct {
	Kind DeclKind
	Pos  Pos

	Name          string // type/function/global name
	SuperclassName string // DeclInterface / DeclImplementation
	CategoryName  string // DeclCategory / DeclCategoryImplementation; "" = class extension
	ProtocolNames []string

	Ivars      []IvarDecl
	Properties []PropertyDecl
	Methods    []MethodDecl
	Inits      []InitDecl

	// DeclTypedefEnum
	RawType string
	Cases   []EnumCaseDecl

	// DeclTypedefStruct: reuses Ivars for struct fields
	// DeclTypedefSimple
	AliasedType TypeRef

	// DeclGlobalVariable
	VarStorage StorageSpec
	VarInit    *Expr

	// DeclGlobalFunction
	Signature Signature
	Body      *Stmt

	// DeclImplementation / DeclCategoryImplementation: @synthesize/@dynamic
	// directives attached to this implementation.
	Synthesizes []SynthesizeDirective

	// DeclPreprocessorDirective
	RawText string

	// @optional / @required marker state for protocol members is stored per
	// member, on MethodDecl.IsOptional.
}

// AccessLevel models the ivar-list access level the external parser
// resolves from @private/@protected/@package/@public tokens and attaches
// to each IvarDecl.Access.
type AccessLevel uint8

const (
	AccessPrivate AccessLevel = iota
	AccessProtected
	AccessPackage
	AccessPublic
)

// TypeRef is the raw Objective-C type reference the parser hands back,
// including whatever explicit nullability modifier annotated it; the Type
// Mapper converts this into a swifttype.Type.
type TypeRef struct {
	Text            string // e.g. "NSString *", "id<Foo,Bar>", "NSArray<NSString*>*"
	NullabilityMark string // "nonnull" | "nullable" | "null_unspecified" | "null_resettable" | ""
	Pos             Pos
}

type Param struct {
	Name string
	Type TypeRef
}

// Signature is shared by methods, initializers, and global functions.
type Signature struct {
	// SelectorPieces is the ordered list of keyword labels (a single
	// colon-free entry for a unary/no-arg selector, one entry per
	// ":"-terminated keyword otherwise). Parameter names/types ride alongside in Params and are
	// NOT part of selector identity (spec.md §3).
	SelectorPieces []string
	Params         []Param
	ReturnType     TypeRef
	IsClassMethod  bool
}

type MethodDecl struct {
	Signature  Signature
	Body       *Stmt // nil for an @interface/@protocol declaration with no body
	IsOptional bool  // true when declared under a protocol's @optional marker
	Pos        Pos
}

type InitDecl struct {
	Signature Signature
	Body      *Stmt
	Pos       Pos
}

type PropertyAttr uint8

const (
	PropAttrWeak PropertyAttr = 1 << iota
	PropAttrAssign
	PropAttrCopy
	PropAttrReadonly
	PropAttrClass
	PropAttrNonatomic
)

type PropertyDecl struct {
	Name       string
	Type       TypeRef
	Attrs      PropertyAttr
	GetterName string // explicit getter= override, "" if none
	SetterName string // explicit setter= override, "" if none
	Pos        Pos
}

type IvarDecl struct {
	Name   string
	Type   TypeRef
	Access AccessLevel
	Pos    Pos
}

type EnumCaseDecl struct {
	Name string
	Pos  Pos
}

type StorageSpec struct {
	Type      TypeRef
	IsConst   bool
	IsWeak    bool
	IsStatic  bool
}

// SynthesizeDirective models `@synthesize name = backing;` (backing == name
// when omitted) or `@dynamic name;` attached to an @implementation.
type SynthesizeDirective struct {
	PropertyName string
	BackingName  string
	IsDynamic    bool
	Pos          Pos
}
