package intention

import (
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// ParamSignature is one parameter of a Signature. RawAnnotation is kept
// alongside the already-mapped Type so method merge (spec.md §4.4.1) can
// tell an explicitly annotated parameter from one whose optionality merely
// fell out of an assume-nonnull region or the implicitly-unwrapped default.
type ParamSignature struct {
	Name          string
	Type          swifttype.Type
	RawAnnotation nullability.Annotation
}

// Signature is shared by methods, initializers, and global functions.
type Signature struct {
	Selector Selector
	Params   []ParamSignature

	ReturnType          swifttype.Type
	ReturnRawAnnotation nullability.Annotation

	IsClassMethod bool
}

// ApplyNullabilityFrom copies any specified (non-unspecified) nullability
// from incoming onto the receiver, per parameter position and for the
// return, wherever the receiver's own annotation is still unspecified
// (spec.md §4.4.1, §8 property 2). Parameter *names* are left untouched:
// "implementation wins for parameter names" is enforced by the caller
// choosing which signature is the merge target.
func (s *Signature) ApplyNullabilityFrom(incoming Signature) {
	unspecified := nullability.EAnnotation.Unspecified()

	if s.ReturnRawAnnotation == unspecified && incoming.ReturnRawAnnotation != unspecified {
		s.ReturnRawAnnotation = incoming.ReturnRawAnnotation
		s.ReturnType = s.ReturnType.WithOptionality(optionalityFor(incoming.ReturnRawAnnotation))
	}

	for i := range s.Params {
		if i >= len(incoming.Params) {
			break
		}
		if s.Params[i].RawAnnotation == unspecified && incoming.Params[i].RawAnnotation != unspecified {
			s.Params[i].RawAnnotation = incoming.Params[i].RawAnnotation
			s.Params[i].Type = s.Params[i].Type.WithOptionality(optionalityFor(incoming.Params[i].RawAnnotation))
		}
	}
}

func optionalityFor(a nullability.Annotation) swifttype.Optionality {
	switch a {
	case nullability.EAnnotation.Nonnull(), nullability.EAnnotation.NullResettable():
		return swifttype.EOptionality.None()
	case nullability.EAnnotation.Nullable():
		return swifttype.EOptionality.Optional()
	default:
		return swifttype.EOptionality.ImplicitlyUnwrapped()
	}
}

// StorageSpec describes a variable/ivar's declared type plus ownership and
// constness (spec.md §3).
type StorageSpec struct {
	Type     swifttype.Type
	IsConst  bool
	IsWeak   bool
	IsStatic bool
}

// --- InstanceVariableIntention ---

type InstanceVariableIntention struct {
	Base
	parent *ClassIntention // weak; nil once unlinked

	Name    string
	Storage StorageSpec
	Access  cst.AccessLevel
}

func NewInstanceVariable(loc cst.Pos, nonnull bool, name string, storage StorageSpec, access cst.AccessLevel) *InstanceVariableIntention {
	return &InstanceVariableIntention{
		Base:    NewBase(loc, nonnull),
		Name:    name,
		Storage: storage,
		Access:  access,
	}
}

func (i *InstanceVariableIntention) Parent() *ClassIntention { return i.parent }

// --- PropertyIntention ---

type PropertyMode uint8

const (
	PropertyModeField PropertyMode = iota
	PropertyModeComputedGetter
	PropertyModeComputedGetterSetter
)

var EPropertyMode = PropertyModeField

func (PropertyMode) Field() PropertyMode            { return PropertyModeField }
func (PropertyMode) ComputedGetter() PropertyMode   { return PropertyModeComputedGetter }
func (PropertyMode) ComputedGetterSetter() PropertyMode { return PropertyModeComputedGetterSetter }

type PropertyIntention struct {
	Base
	parent Intention // *ClassIntention, *ClassExtensionIntention, or *ProtocolIntention

	Name       string
	Storage    StorageSpec
	Attrs      cst.PropertyAttr
	Mode       PropertyMode
	GetterName string
	SetterName string
	IsOptional bool // protocol member under @optional

	// Backing field name, set by Synthesize Backing Field (spec.md §4.4.4);
	// empty until that pass runs or the property stays a plain field.
	BackingIvarName string
	// AccessDowngrade records a readonly+private ivar downgrade to
	// `private(set)` (spec.md §4.4.4); empty otherwise.
	AccessDowngrade string

	GetterBody *swiftast.Stmt
	SetterBody *swiftast.Stmt
}

func NewProperty(loc cst.Pos, nonnull bool, name string, storage StorageSpec, attrs cst.PropertyAttr) *PropertyIntention {
	p := &PropertyIntention{
		Base:    NewBase(loc, nonnull),
		Name:    name,
		Storage: storage,
		Attrs:   attrs,
		Mode:    EPropertyMode.Field(),
	}
	if attrs&cst.PropAttrReadonly != 0 {
		// readonly alone doesn't change mode; Property Merge/Synthesize do.
	}
	return p
}

func (p *PropertyIntention) Parent() Intention { return p.parent }

func (p *PropertyIntention) IsReadonly() bool {
	return p.Attrs&cst.PropAttrReadonly != 0
}

func (p *PropertyIntention) GetterSelector() Selector {
	if p.GetterName != "" {
		return NewSelector(p.GetterName)
	}
	return GetterSelector(p.Name)
}

func (p *PropertyIntention) SetterSelector() Selector {
	if p.SetterName != "" {
		return NewSelector(p.SetterName)
	}
	return SetterSelector(p.Name)
}

// --- MethodIntention ---

type MethodIntention struct {
	Base
	parent Intention // *ClassIntention, *ClassExtensionIntention, or *ProtocolIntention

	Signature  Signature
	Body       *swiftast.Stmt
	IsOptional bool
	IsOverride bool
}

func NewMethod(loc cst.Pos, nonnull bool, sig Signature, body *swiftast.Stmt) *MethodIntention {
	return &MethodIntention{
		Base:      NewBase(loc, nonnull),
		Signature: sig,
		Body:      body,
	}
}

func (m *MethodIntention) Parent() Intention { return m.parent }

// --- InitializerIntention ---

type InitializerIntention struct {
	Base
	parent *ClassIntention

	Signature  Signature
	Body       *swiftast.Stmt
	IsOverride bool
}

func NewInitializer(loc cst.Pos, nonnull bool, sig Signature, body *swiftast.Stmt) *InitializerIntention {
	return &InitializerIntention{
		Base:      NewBase(loc, nonnull),
		Signature: sig,
		Body:      body,
	}
}

func (i *InitializerIntention) Parent() *ClassIntention { return i.parent }

// --- GlobalVariableIntention / GlobalFunctionIntention ---

type GlobalVariableIntention struct {
	Base
	parent *FileIntention

	Name    string
	Storage StorageSpec
	Init    *swiftast.Expr
}

func NewGlobalVariable(loc cst.Pos, nonnull bool, name string, storage StorageSpec, init *swiftast.Expr) *GlobalVariableIntention {
	return &GlobalVariableIntention{
		Base:    NewBase(loc, nonnull),
		Name:    name,
		Storage: storage,
		Init:    init,
	}
}

func (g *GlobalVariableIntention) Parent() *FileIntention { return g.parent }

type GlobalFunctionIntention struct {
	Base
	parent *FileIntention

	Name      string
	Signature Signature
	Body      *swiftast.Stmt
}

func NewGlobalFunction(loc cst.Pos, nonnull bool, name string, sig Signature, body *swiftast.Stmt) *GlobalFunctionIntention {
	return &GlobalFunctionIntention{
		Base:      NewBase(loc, nonnull),
		Name:      name,
		Signature: sig,
		Body:      body,
	}
}

func (g *GlobalFunctionIntention) Parent() *FileIntention { return g.parent }
