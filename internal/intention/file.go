package intention

import (
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// TypealiasIntention is a `typedef <type> Name;` (spec.md §3).
type TypealiasIntention struct {
	Base
	parent *FileIntention

	Name        string
	AliasedType swifttype.Type
}

func NewTypealias(loc cst.Pos, nonnull bool, name string, aliased swifttype.Type) *TypealiasIntention {
	return &TypealiasIntention{Base: NewBase(loc, nonnull), Name: name, AliasedType: aliased}
}

func (t *TypealiasIntention) Parent() *FileIntention { return t.parent }

// FileIntention owns every top-level intention read from one source file
// (spec.md §3: "a collection owns files; a file owns the types, protocols,
// globals, and global functions declared in it"). Class extensions and
// categories are held separately from classes: their members are never
// folded into the base class, and each one is rendered as its own Swift
// extension.
type FileIntention struct {
	Base
	parent *Collection

	Name string // source file name, used for diagnostics and file grouping

	Classes      []*ClassIntention
	Extensions   []*ClassExtensionIntention
	Protocols    []*ProtocolIntention
	Structs      []*StructIntention
	Enums        []*EnumIntention
	Typealiases  []*TypealiasIntention
	Globals      []*GlobalVariableIntention
	GlobalFuncs  []*GlobalFunctionIntention

	// Preprocessor directives preserved verbatim for round-tripping; not
	// otherwise interpreted (spec.md §1 Non-goals excludes macro expansion).
	PreprocessorDirectives []string
}

func NewFile(loc cst.Pos, nonnull bool, name string) *FileIntention {
	return &FileIntention{Base: NewBase(loc, nonnull), Name: name}
}

func (f *FileIntention) Parent() *Collection { return f.parent }

func (f *FileIntention) AddClass(c *ClassIntention) {
	c.parent = f
	f.Classes = append(f.Classes, c)
}

func (f *FileIntention) AddExtension(e *ClassExtensionIntention) {
	e.parent = f
	f.Extensions = append(f.Extensions, e)
}

func (f *FileIntention) AddProtocol(p *ProtocolIntention) {
	p.parent = f
	f.Protocols = append(f.Protocols, p)
}

func (f *FileIntention) AddStruct(s *StructIntention) {
	s.parent = f
	f.Structs = append(f.Structs, s)
}

func (f *FileIntention) AddEnum(e *EnumIntention) {
	e.parent = f
	f.Enums = append(f.Enums, e)
}

func (f *FileIntention) AddTypealias(t *TypealiasIntention) {
	t.parent = f
	f.Typealiases = append(f.Typealiases, t)
}

func (f *FileIntention) AddGlobal(g *GlobalVariableIntention) {
	g.parent = f
	f.Globals = append(f.Globals, g)
}

func (f *FileIntention) AddGlobalFunc(g *GlobalFunctionIntention) {
	g.parent = f
	f.GlobalFuncs = append(f.GlobalFuncs, g)
}

// ClassByName finds the first class declared in this file with that name,
// or nil; Collection.ClassByName searches file by file through it.
func (f *FileIntention) ClassByName(name string) *ClassIntention {
	for _, c := range f.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// RemoveClass detaches c from this file, unlinking its parent pointer
// first so no stale weak reference survives the removal (Duplicate Type
// Removal, spec.md §4.4.2).
func (f *FileIntention) RemoveClass(c *ClassIntention) {
	for i, x := range f.Classes {
		if x == c {
			c.parent = nil
			f.Classes = append(f.Classes[:i], f.Classes[i+1:]...)
			return
		}
	}
}

// RemoveExtension detaches e from this file, unlinking its parent pointer
// first.
func (f *FileIntention) RemoveExtension(e *ClassExtensionIntention) {
	for i, x := range f.Extensions {
		if x == e {
			e.parent = nil
			f.Extensions = append(f.Extensions[:i], f.Extensions[i+1:]...)
			return
		}
	}
}
