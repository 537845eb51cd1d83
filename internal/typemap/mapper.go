// Package typemap implements the Type Mapper (spec.md §4.1): a single
// operation, Map(ObjcType, MappingContext) -> SwiftType.
package typemap

import (
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/objctype"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

// Context enumerates the inputs that decide optionality for a mapped type,
// threaded explicitly rather than read from a global (Design Note §9).
type Context struct {
	InNonnullRegion bool
	Explicit        nullability.Annotation
	AlwaysNonnull   bool
}

// Mapper wraps Map so call sites can carry a Context without re-threading it
// through every argument; it holds no mutable state.
type Mapper struct{}

func New() Mapper { return Mapper{} }

// Map converts an Objective-C type descriptor into a Swift type descriptor
// under the given context, resolving optionality per spec.md §4.1:
//
//   - an explicit nonnull/nullable/nullResettable modifier wins outright;
//   - otherwise, inNonnullRegion makes the result non-optional;
//   - otherwise, the result is implicitly-unwrapped optional;
//   - alwaysNonnull forces non-optional regardless of the above.
func (Mapper) Map(t objctype.Type, ctx Context) swifttype.Type {
	base := mapBase(t, ctx)
	if isAlwaysNonoptionalKind(t) {
		return base.WithOptionality(swifttype.EOptionality.None())
	}
	return base.WithOptionality(resolveOptionality(ctx))
}

func resolveOptionality(ctx Context) swifttype.Optionality {
	if ctx.AlwaysNonnull {
		return swifttype.EOptionality.None()
	}
	switch ctx.Explicit {
	case nullability.EAnnotation.Nonnull(), nullability.EAnnotation.NullResettable():
		return swifttype.EOptionality.None()
	case nullability.EAnnotation.Nullable():
		return swifttype.EOptionality.Optional()
	}
	if ctx.InNonnullRegion {
		return swifttype.EOptionality.None()
	}
	return swifttype.EOptionality.ImplicitlyUnwrapped()
}

// isAlwaysNonoptionalKind reports the kinds the spec carves out as "always
// non-optional" regardless of context: primitives, and void.
func isAlwaysNonoptionalKind(t objctype.Type) bool {
	return t.Kind == objctype.EKind.Primitive() || t.Kind == objctype.EKind.Void()
}

func mapBase(t objctype.Type, ctx Context) swifttype.Type {
	switch t.Kind {
	case objctype.EKind.ID():
		return swifttype.AnyObject()

	case objctype.EKind.IDWithProtocols():
		return swifttype.ProtocolComposition(t.ProtocolNames...)

	case objctype.EKind.NamedPointer():
		return mapNamedPointer(t)

	case objctype.EKind.GenericPointer():
		return mapGenericPointer(t, ctx)

	case objctype.EKind.Primitive():
		return mapPrimitive(t)

	case objctype.EKind.Block():
		return mapBlock(t, ctx)

	case objctype.EKind.Void():
		return swifttype.Void()

	default:
		return swifttype.Nominal("/* unknown */")
	}
}

func mapNamedPointer(t objctype.Type) swifttype.Type {
	return swifttype.Nominal(t.Name)
}

// mapGenericPointer handles NSArray<T>* -> [T] and bare NSArray* -> NSArray,
// generalizing the same "one recognized container, fall back to nominal"
// rule to any single-argument generic pointer the reader encounters
// (NSSet<T>*, NSMutableArray<T>*, ...).
func mapGenericPointer(t objctype.Type, ctx Context) swifttype.Type {
	if t.GenericArg == nil {
		return swifttype.Nominal(t.Name)
	}
	elemCtx := ctx
	mapped := Mapper{}.Map(*t.GenericArg, elemCtx)
	switch t.Name {
	case "NSArray", "NSMutableArray":
		return swifttype.Array(mapped)
	default:
		return swifttype.Nominal(t.Name, mapped)
	}
}

func mapPrimitive(t objctype.Type) swifttype.Type {
	if swiftName, ok := objctype.KnownPrimitives[t.Name]; ok {
		return swifttype.Nominal(swiftName)
	}
	return swifttype.Nominal(t.Name)
}

// mapBlock recursively maps parameter and return types under the same
// nullability rules as the enclosing context (spec.md §4.1).
func mapBlock(t objctype.Type, ctx Context) swifttype.Type {
	params := make([]swifttype.Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = Mapper{}.Map(p, ctx)
	}
	var ret swifttype.Type
	if t.Return != nil {
		ret = Mapper{}.Map(*t.Return, ctx)
	} else {
		ret = swifttype.Void()
	}
	return swifttype.Block(ret, params...)
}
