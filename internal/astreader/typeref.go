package astreader

import (
	"strings"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/objctype"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// resolveType converts one cst.TypeRef into a swifttype.Type by first
// recognizing the Objective-C type syntax forms spec.md §4.1 enumerates
// (bare id, id<Protocols>, NamedClass *, a single-argument generic pointer,
// a recognized primitive, and void), then handing the recognized
// objctype.Type to the Type Mapper under this reference's own nullability
// mark and the reading context's region membership. C block pointer syntax
// is not recognized: such a reference falls through to a named reference,
// so the mapper's block-to-function-type mapping is never reached from here.
func resolveType(ctx Context, ref cst.TypeRef) swifttype.Type {
	objc := parseObjcType(ref.Text)
	var explicit nullability.Annotation
	_ = explicit.Parse(ref.NullabilityMark)
	mctx := ctx.MapperContext(ref.Pos.Token, explicit)
	return ctx.Mapper.Map(objc, mctx)
}

// parseObjcType recognizes the textual forms cst.TypeRef.Text carries. It
// is not a general C type-grammar parser — only the forms an Objective-C
// header actually uses for a declared type — grounded on spec.md §4.1's
// enumeration of what the Type Mapper must handle.
func parseObjcType(text string) objctype.Type {
	t := strings.TrimSpace(text)

	switch t {
	case "void":
		return objctype.Void()
	case "id":
		return objctype.ID()
	}

	if name, protocols, ok := parseIDWithProtocols(t); ok {
		_ = name
		return objctype.IDWithProtocols(protocols...)
	}

	if swiftName, ok := objctype.KnownPrimitives[t]; ok {
		_ = swiftName
		return objctype.Primitive(t)
	}

	if base, arg, ok := parseGenericPointer(t); ok {
		argType := parseObjcType(arg)
		return objctype.GenericPointer(base, &argType)
	}

	if name, ok := parseNamedPointer(t); ok {
		return objctype.NamedPointer(name)
	}

	// A bare class name with no trailing "*" (used for struct typedefs in
	// property/ivar positions) falls back to a named pointer with the same
	// name; the writer still emits a plain nominal reference either way.
	return objctype.NamedPointer(strings.TrimSuffix(t, "*"))
}

// parseIDWithProtocols recognizes "id<Foo,Bar>".
func parseIDWithProtocols(t string) (name string, protocols []string, ok bool) {
	if !strings.HasPrefix(t, "id<") || !strings.HasSuffix(t, ">") {
		return "", nil, false
	}
	inner := t[len("id<") : len(t)-1]
	for _, p := range strings.Split(inner, ",") {
		protocols = append(protocols, strings.TrimSpace(p))
	}
	return "id", protocols, true
}

// parseGenericPointer recognizes "NSArray<NSString *> *" style references,
// i.e. a single angle-bracketed generic argument followed by a trailing
// pointer star.
func parseGenericPointer(t string) (base, arg string, ok bool) {
	open := strings.Index(t, "<")
	if open < 0 {
		return "", "", false
	}
	close := strings.LastIndex(t, ">")
	if close < open {
		return "", "", false
	}
	base = strings.TrimSpace(t[:open])
	if base == "id" {
		return "", "", false // handled by parseIDWithProtocols
	}
	arg = strings.TrimSpace(t[open+1 : close])
	return base, arg, true
}

// parseNamedPointer recognizes "NSString *", "NSObject*", stripping the
// trailing pointer star(s).
func parseNamedPointer(t string) (name string, ok bool) {
	if !strings.Contains(t, "*") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimRight(t, "* ")), true
}
