package passes

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/intention"
)

// FileGrouping implements spec.md §4.4.1: pair each implementation file
// with the header sharing its basename, merge the header's class and
// class-extension intentions into the implementation's matching ones, and
// drop the header file intention once its content has been absorbed.
//
// Header-only content that has no implementation-side counterpart (a
// protocol, enum, struct, typealias, global, or a class/extension the
// paired .m never redeclares) is reparented onto the implementation file
// rather than discarded, so nothing a header contributed disappears purely
// because its .m sibling didn't repeat it — the spec's "drop the header
// file intention entirely" describes the end state of the *merged* types,
// not a license to lose untouched ones.
func FileGrouping(col *intention.Collection) error {
	pairs := pairHeadersWithImplementations(col.Files)

	for _, pair := range pairs {
		mergeFilePair(pair.header, pair.impl)
		col.RemoveFile(pair.header)
	}
	return nil
}

type filePair struct {
	header *intention.FileIntention
	impl   *intention.FileIntention
}

func pairHeadersWithImplementations(files []*intention.FileIntention) []filePair {
	headers := map[string]*intention.FileIntention{}
	impls := map[string]*intention.FileIntention{}

	for _, f := range files {
		base, ext := splitExt(f.Name)
		switch ext {
		case ".h":
			headers[base] = f
		case ".m":
			impls[base] = f
		}
	}

	var pairs []filePair
	for base, impl := range impls {
		if header, ok := headers[base]; ok {
			pairs = append(pairs, filePair{header: header, impl: impl})
		}
	}
	return pairs
}

func splitExt(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

func mergeFilePair(header, impl *intention.FileIntention) {
	mergeClasses(header, impl)
	mergeExtensions(header, impl)

	// Move anything the header declared that the implementation never
	// redeclared: protocols, enums, structs, typealiases, globals, global
	// functions always move (they have no implementation-side form to
	// merge with in this grammar), as do any header classes/extensions
	// that found no match above.
	for _, p := range header.Protocols {
		impl.AddProtocol(p)
	}
	for _, e := range header.Enums {
		impl.AddEnum(e)
	}
	for _, s := range header.Structs {
		impl.AddStruct(s)
	}
	for _, t := range header.Typealiases {
		impl.AddTypealias(t)
	}
	for _, g := range header.Globals {
		impl.AddGlobal(g)
	}
	for _, g := range header.GlobalFuncs {
		impl.AddGlobalFunc(g)
	}
	for _, c := range header.Classes {
		impl.AddClass(c)
	}
	for _, e := range header.Extensions {
		impl.AddExtension(e)
	}
	impl.PreprocessorDirectives = append(impl.PreprocessorDirectives, header.PreprocessorDirectives...)
}

func mergeClasses(header, impl *intention.FileIntention) {
	var remaining []*intention.ClassIntention
	for _, hc := range header.Classes {
		ic := implementationClassNamed(impl, hc.Name)
		if ic == nil {
			remaining = append(remaining, hc)
			continue
		}
		mergeClassInto(hc, ic)
	}
	header.Classes = remaining
}

// implementationClassNamed prefers an implementation-sourced class over an
// interface-sourced one when a single .m file happens to declare both
// under the same name (a private @interface block alongside its
// @implementation) — Duplicate Type Removal (spec.md §4.4.2) expects the
// header's content to land on the implementation-sourced class.
func implementationClassNamed(f *intention.FileIntention, name string) *intention.ClassIntention {
	var fallback *intention.ClassIntention
	for _, c := range f.Classes {
		if c.Name != name {
			continue
		}
		if c.FromImplementation {
			return c
		}
		if fallback == nil {
			fallback = c
		}
	}
	return fallback
}

func mergeClassInto(src, dst *intention.ClassIntention) {
	if dst.SuperclassName == "" {
		dst.SuperclassName = src.SuperclassName
	}
	dst.ProtocolNames = dedupeStrings(append(dst.ProtocolNames, src.ProtocolNames...))

	for _, iv := range src.Ivars {
		if dst.IvarByName(iv.Name) == nil {
			dst.AddIvar(iv)
		}
	}
	for _, p := range src.Props {
		if dst.PropertyByName(p.Name) == nil {
			dst.AddProperty(p)
		}
	}
	for _, m := range src.Methods {
		mergeMethodInto(m, dst)
	}
	dst.History().Append("FileGrouping", "merged header declaration for "+dst.Name, dst.SourceLoc())
}

// mergeMethodInto matches m's selector against dst's existing methods; if
// found, runs method merge (spec.md §4.4.1). Otherwise m is added as-is.
func mergeMethodInto(m *intention.MethodIntention, dst *intention.ClassIntention) {
	existing := dst.MethodBySelector(m.Signature.Selector)
	if existing == nil {
		dst.AddMethod(m)
		return
	}

	existing.Signature.ApplyNullabilityFrom(m.Signature)

	switch {
	case existing.Body != nil && m.Body != nil:
		// implementation wins; existing already holds it since File
		// Grouping always merges the header (src) into the implementation
		// (dst), so existing.Body is the implementation's body already.
	case existing.Body == nil && m.Body != nil:
		existing.Body = m.Body
	}

	existing.History().Append("FileGrouping", "merged header method "+m.Signature.Selector.String(), existing.SourceLoc())
}

func mergeExtensions(header, impl *intention.FileIntention) {
	var remaining []*intention.ClassExtensionIntention
	for _, he := range header.Extensions {
		var match *intention.ClassExtensionIntention
		for _, ie := range impl.Extensions {
			if ie.BaseClassName == he.BaseClassName && ie.CategoryName == he.CategoryName {
				match = ie
				break
			}
		}
		if match == nil {
			remaining = append(remaining, he)
			continue
		}
		mergeExtensionInto(he, match)
	}
	header.Extensions = remaining
}

func mergeExtensionInto(src, dst *intention.ClassExtensionIntention) {
	existingIvar := func(name string) bool {
		for _, iv := range dst.Ivars {
			if iv.Name == name {
				return true
			}
		}
		return false
	}
	for _, iv := range src.Ivars {
		if !existingIvar(iv.Name) {
			dst.AddIvar(iv)
		}
	}
	existingProp := func(name string) *intention.PropertyIntention {
		for _, p := range dst.Props {
			if p.Name == name {
				return p
			}
		}
		return nil
	}
	for _, p := range src.Props {
		if existingProp(p.Name) == nil {
			dst.AddProperty(p)
		}
	}
	for _, m := range src.Methods {
		var existing *intention.MethodIntention
		for _, dm := range dst.Methods {
			if dm.Signature.Selector.Equal(m.Signature.Selector) {
				existing = dm
				break
			}
		}
		if existing == nil {
			dst.AddMethod(m)
			continue
		}
		existing.Signature.ApplyNullabilityFrom(m.Signature)
		if existing.Body == nil && m.Body != nil {
			existing.Body = m.Body
		}
	}
	dst.History().Append("FileGrouping", "merged header declaration for category "+dst.CategoryName, dst.SourceLoc())
}

func dedupeStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
