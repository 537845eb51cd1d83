package intention

import "github.com/johndpope/SwiftRewriter/internal/cst"

// UsageKind tags what a Usage record refers to.
type UsageKind uint8

const (
	UsageMethod UsageKind = iota
	UsageProperty
	UsageEnumCase
	UsageGlobal
	UsageIvar
)

// Usage is one reference site Usage Analysis (spec.md §4.4.6) recorded
// against a declared name. Downstream expression passes consult these to
// decide things like "apply `?` on chained access because the receiver's
// declared type is nullable".
type Usage struct {
	Kind UsageKind
	Name string
	At   cst.Pos
}

// Collection is the root of the intention graph: it owns every
// FileIntention produced by the AST readers (spec.md §3). Passes operate
// on a *Collection, walking down through files into types and members;
// nothing above a Collection holds a reference back to it.
type Collection struct {
	Files []*FileIntention

	// Usages accumulates reference sites found by Usage Analysis
	// (spec.md §4.4.6), keyed implicitly by each Usage's Name/Kind.
	Usages []Usage
}

func NewCollection() *Collection {
	return &Collection{}
}

func (col *Collection) AddFile(f *FileIntention) {
	f.parent = col
	col.Files = append(col.Files, f)
}

// RemoveFile detaches f, unlinking the weak parent pointer first.
func (col *Collection) RemoveFile(f *FileIntention) {
	for i, x := range col.Files {
		if x == f {
			f.parent = nil
			col.Files = append(col.Files[:i], col.Files[i+1:]...)
			return
		}
	}
}

// FileByName finds the first file added under that name, or nil.
func (col *Collection) FileByName(name string) *FileIntention {
	for _, f := range col.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ClassesNamed returns every class across every file sharing name, in file
// order. Duplicate Type Removal (spec.md §4.4.2) only collapses duplicates
// within one file, so classes of the same name in different files are all
// returned even after that pass runs.
func (col *Collection) ClassesNamed(name string) []*ClassIntention {
	var out []*ClassIntention
	for _, f := range col.Files {
		for _, c := range f.Classes {
			if c.Name == name {
				out = append(out, c)
			}
		}
	}
	return out
}

// ClassByName returns the first class found with that name across all
// files, or nil; Override Detection uses it to walk superclass chains.
// ClassesNamed returns every match.
func (col *Collection) ClassByName(name string) *ClassIntention {
	for _, f := range col.Files {
		if c := f.ClassByName(name); c != nil {
			return c
		}
	}
	return nil
}

// ExtensionsForClass returns every class extension/category across all
// files whose BaseClassName matches name, in file order and, within a
// file, declaration order, so the same input order always yields the same
// result.
func (col *Collection) ExtensionsForClass(name string) []*ClassExtensionIntention {
	var out []*ClassExtensionIntention
	for _, f := range col.Files {
		for _, e := range f.Extensions {
			if e.BaseClassName == name {
				out = append(out, e)
			}
		}
	}
	return out
}

// AllClasses returns every class across every file, in file order.
func (col *Collection) AllClasses() []*ClassIntention {
	var out []*ClassIntention
	for _, f := range col.Files {
		out = append(out, f.Classes...)
	}
	return out
}

// RecordUsage appends one reference site found by Usage Analysis.
func (col *Collection) RecordUsage(kind UsageKind, name string, at cst.Pos) {
	col.Usages = append(col.Usages, Usage{Kind: kind, Name: name, At: at})
}

// UsagesFor returns every recorded site referencing name under kind.
func (col *Collection) UsagesFor(kind UsageKind, name string) []Usage {
	var out []Usage
	for _, u := range col.Usages {
		if u.Kind == kind && u.Name == name {
			out = append(out, u)
		}
	}
	return out
}

// AllMethods returns every method belonging to every class across every
// file, in file then declaration order. Methods of class extensions and
// categories are not included. If-let rewriting (internal/exprpass) searches
// this to resolve a callee's signature.
func (col *Collection) AllMethods() []*MethodIntention {
	var out []*MethodIntention
	for _, c := range col.AllClasses() {
		out = append(out, c.Methods...)
	}
	return out
}
