package intention

import "github.com/johndpope/SwiftRewriter/internal/cst"

// ClassIntention is a class built from one or more @interface/@implementation
// Decls for the same name (spec.md §3). Duplicate Type Removal (spec.md
// §4.4.2) is what lets more than one Decl contribute to a single
// ClassIntention before this point.
type ClassIntention struct {
	Base
	parent *FileIntention

	Name           string
	SuperclassName string
	ProtocolNames  []string

	// FromImplementation is true when this intention was read from an
	// @implementation Decl rather than an @interface one. Duplicate Type
	// Removal (spec.md §4.4.2) keeps the implementation-sourced class and
	// drops the interface-sourced one once same-file duplicates are merged.
	FromImplementation bool

	Ivars    []*InstanceVariableIntention
	Props    []*PropertyIntention
	Methods  []*MethodIntention
	Inits    []*InitializerIntention

	// Extensions is not filled in by the readers or by any pass; class
	// extensions and categories stay on FileIntention.Extensions.
	Extensions []*ClassExtensionIntention

	// Synthesizes holds @synthesize/@dynamic directives from this class's
	// @implementation, consumed by Synthesize Backing Field (spec.md §4.4.4)
	// and cleared once that pass processes them.
	Synthesizes []cst.SynthesizeDirective
}

func NewClass(loc cst.Pos, nonnull bool, name string) *ClassIntention {
	return &ClassIntention{Base: NewBase(loc, nonnull), Name: name}
}

func (c *ClassIntention) Parent() *FileIntention { return c.parent }

func (c *ClassIntention) AddIvar(iv *InstanceVariableIntention) {
	iv.parent = c
	c.Ivars = append(c.Ivars, iv)
}

func (c *ClassIntention) AddProperty(p *PropertyIntention) {
	p.parent = c
	c.Props = append(c.Props, p)
}

func (c *ClassIntention) AddMethod(m *MethodIntention) {
	m.parent = c
	c.Methods = append(c.Methods, m)
}

func (c *ClassIntention) AddInit(i *InitializerIntention) {
	i.parent = c
	c.Inits = append(c.Inits, i)
}

// MethodBySelector returns the method whose signature selector matches sel,
// or nil. Used by File Grouping and Override Detection (spec.md §4.4.1,
// §4.4.5).
func (c *ClassIntention) MethodBySelector(sel Selector) *MethodIntention {
	for _, m := range c.Methods {
		if m.Signature.Selector.Equal(sel) {
			return m
		}
	}
	return nil
}

func (c *ClassIntention) PropertyByName(name string) *PropertyIntention {
	for _, p := range c.Props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (c *ClassIntention) IvarByName(name string) *InstanceVariableIntention {
	for _, iv := range c.Ivars {
		if iv.Name == name {
			return iv
		}
	}
	return nil
}

// ClassExtensionIntention is a class extension / category (spec.md §3). A
// nameless category (CategoryName == "") is a class extension proper; a
// named one is a true Objective-C category. Neither is merged into its base
// class's members: File Grouping only folds a header's extension into the
// implementation's extension with the same base class and category name,
// and the pretty-printer renders each one as its own Swift extension.
type ClassExtensionIntention struct {
	Base
	parent *FileIntention

	BaseClassName string
	CategoryName  string // "" for a plain class extension

	Props   []*PropertyIntention
	Methods []*MethodIntention
	Ivars   []*InstanceVariableIntention
}

func NewClassExtension(loc cst.Pos, nonnull bool, baseClassName, categoryName string) *ClassExtensionIntention {
	return &ClassExtensionIntention{
		Base:          NewBase(loc, nonnull),
		BaseClassName: baseClassName,
		CategoryName:  categoryName,
	}
}

func (e *ClassExtensionIntention) Parent() *FileIntention { return e.parent }

func (e *ClassExtensionIntention) AddProperty(p *PropertyIntention) {
	p.parent = e
	e.Props = append(e.Props, p)
}

func (e *ClassExtensionIntention) AddMethod(m *MethodIntention) {
	m.parent = e
	e.Methods = append(e.Methods, m)
}

func (e *ClassExtensionIntention) AddIvar(iv *InstanceVariableIntention) {
	e.Ivars = append(e.Ivars, iv)
}

// ProtocolIntention is a @protocol declaration (spec.md §3).
type ProtocolIntention struct {
	Base
	parent *FileIntention

	Name          string
	ProtocolNames []string // inherited protocols

	Props   []*PropertyIntention
	Methods []*MethodIntention
}

func NewProtocol(loc cst.Pos, nonnull bool, name string) *ProtocolIntention {
	return &ProtocolIntention{Base: NewBase(loc, nonnull), Name: name}
}

func (p *ProtocolIntention) Parent() *FileIntention { return p.parent }

func (p *ProtocolIntention) AddProperty(prop *PropertyIntention) {
	prop.parent = p
	p.Props = append(p.Props, prop)
}

func (p *ProtocolIntention) AddMethod(m *MethodIntention) {
	m.parent = p
	p.Methods = append(p.Methods, m)
}

// StructIntention is a typedef struct (spec.md §3), lowered to a Swift
// struct with one stored property per field.
type StructIntention struct {
	Base
	parent *FileIntention

	Name   string
	Fields []*InstanceVariableIntention
}

func NewStruct(loc cst.Pos, nonnull bool, name string) *StructIntention {
	return &StructIntention{Base: NewBase(loc, nonnull), Name: name}
}

func (s *StructIntention) Parent() *FileIntention { return s.parent }

func (s *StructIntention) AddField(f *InstanceVariableIntention) {
	f.parent = nil
	s.Fields = append(s.Fields, f)
}

// EnumCase is one case of an EnumIntention.
type EnumCase struct {
	Name string
	Pos  cst.Pos
}

// EnumIntention is a typedef enum (spec.md §3), lowered to a Swift enum
// with a raw value type.
type EnumIntention struct {
	Base
	parent *FileIntention

	Name    string
	RawType string
	Cases   []EnumCase
}

func NewEnum(loc cst.Pos, nonnull bool, name, rawType string) *EnumIntention {
	return &EnumIntention{Base: NewBase(loc, nonnull), Name: name, RawType: rawType}
}

func (e *EnumIntention) Parent() *FileIntention { return e.parent }

func (e *EnumIntention) AddCase(c EnumCase) {
	e.Cases = append(e.Cases, c)
}
