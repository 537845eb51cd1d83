package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/objctype"
)

func TestMap_IdWithoutProtocols(t *testing.T) {
	a := assert.New(t)
	m := New()

	result := m.Map(objctype.ID(), Context{InNonnullRegion: false})
	a.Equal("AnyObject!", result.String())

	result = m.Map(objctype.ID(), Context{InNonnullRegion: true})
	a.Equal("AnyObject", result.String())
}

func TestMap_IdWithProtocols(t *testing.T) {
	a := assert.New(t)
	m := New()

	result := m.Map(objctype.IDWithProtocols("P1", "P2"), Context{InNonnullRegion: true})
	a.Equal("P1 & P2", result.String())
}

func TestMap_NSArrayOfT(t *testing.T) {
	a := assert.New(t)
	m := New()

	elem := objctype.NamedPointer("NSString")
	arr := objctype.GenericPointer("NSArray", &elem)

	result := m.Map(arr, Context{InNonnullRegion: true})
	a.Equal("[NSString]", result.String())
}

func TestMap_BareNSArray(t *testing.T) {
	a := assert.New(t)
	m := New()

	result := m.Map(objctype.GenericPointer("NSArray", nil), Context{InNonnullRegion: true})
	a.Equal("NSArray", result.String())
}

func TestMap_ExplicitNullableWinsOverRegion(t *testing.T) {
	a := assert.New(t)
	m := New()

	ctx := Context{InNonnullRegion: true, Explicit: nullability.EAnnotation.Nullable()}
	result := m.Map(objctype.NamedPointer("NSObject"), ctx)
	a.Equal("NSObject?", result.String())
}

func TestMap_UnspecifiedOutsideRegionIsImplicitlyUnwrapped(t *testing.T) {
	a := assert.New(t)
	m := New()

	result := m.Map(objctype.NamedPointer("NSObject"), Context{})
	a.Equal("NSObject!", result.String())
}

func TestMap_AlwaysNonnullForcesNonOptional(t *testing.T) {
	a := assert.New(t)
	m := New()

	ctx := Context{AlwaysNonnull: true}
	result := m.Map(objctype.NamedPointer("NSObject"), ctx)
	a.Equal("NSObject", result.String())
}

func TestMap_PrimitivesAlwaysNonOptional(t *testing.T) {
	a := assert.New(t)
	m := New()

	for _, name := range []string{"BOOL", "NSInteger", "NSUInteger", "CGFloat", "float", "double"} {
		result := m.Map(objctype.Primitive(name), Context{})
		a.False(result.Optionality == result.Optionality.Optional(), "primitive %s should not be optional", name)
		a.NotContains(result.String(), "?")
		a.NotContains(result.String(), "!")
	}
}

func TestMap_BlockRecursesIntoParamsAndReturn(t *testing.T) {
	a := assert.New(t)
	m := New()

	block := objctype.Block(objctype.Primitive("BOOL"), objctype.NamedPointer("NSString"))
	result := m.Map(block, Context{InNonnullRegion: true})
	a.Equal("(NSString) -> Bool", result.String())
}
