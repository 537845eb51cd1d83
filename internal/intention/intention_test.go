package intention

import (
	"testing"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_OwnsFilesOwnTypesOwnMembers(t *testing.T) {
	col := NewCollection()
	file := NewFile(cst.Pos{File: "Foo.h"}, true, "Foo.h")
	col.AddFile(file)

	class := NewClass(cst.Pos{File: "Foo.h"}, true, "Foo")
	file.AddClass(class)

	ivar := NewInstanceVariable(cst.Pos{File: "Foo.h"}, true, "_bar", StorageSpec{Type: swifttype.Nominal("Int")}, cst.AccessPrivate)
	class.AddIvar(ivar)

	require.Len(t, col.Files, 1)
	assert.Same(t, col, file.Parent())
	assert.Same(t, file, class.Parent())
	assert.Same(t, class, ivar.Parent())
	assert.Equal(t, []*ClassIntention{class}, col.ClassesNamed("Foo"))
}

func TestFile_RemoveClass_UnlinksParentBeforeDetach(t *testing.T) {
	col := NewCollection()
	file := NewFile(cst.Pos{}, true, "Foo.h")
	col.AddFile(file)
	class := NewClass(cst.Pos{}, true, "Foo")
	file.AddClass(class)

	file.RemoveClass(class)

	assert.Nil(t, class.Parent())
	assert.Empty(t, file.Classes)
}

func TestHistory_AppendOnly_MonotonicSequence(t *testing.T) {
	class := NewClass(cst.Pos{Line: 1}, true, "Foo")
	require.Len(t, class.History().Records(), 1)
	assert.Equal(t, "Creation", class.History().Records()[0].Pass)

	class.History().Append("FileGrouping", "merged extension", cst.Pos{Line: 2})
	class.History().Append("DuplicateTypeRemoval", "absorbed duplicate", cst.Pos{Line: 3})

	records := class.History().Records()
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.Greater(t, records[i].Seq, records[i-1].Seq)
	}
}

func TestSelector_Equal_IgnoresNamesAndTypes(t *testing.T) {
	a := NewSelector("initWithName:", "age:")
	b := NewSelector("initWithName:", "age:")
	c := NewSelector("initWithName:")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSelector_String_UnaryHasNoTrailingColon(t *testing.T) {
	assert.Equal(t, "name", NewSelector("name").String())
	assert.Equal(t, "initWithName:age:", NewSelector("initWithName:", "age:").String())
}

func TestPropertySelectors_MatchSynthesizedAccessorNames(t *testing.T) {
	p := NewProperty(cst.Pos{}, true, "name", StorageSpec{Type: swifttype.Nominal("String")}, 0)
	assert.Equal(t, "name", p.GetterSelector().String())
	assert.Equal(t, "setName:", p.SetterSelector().String())
}

func TestPropertySelectors_HonorExplicitOverride(t *testing.T) {
	p := NewProperty(cst.Pos{}, true, "enabled", StorageSpec{Type: swifttype.Nominal("Bool")}, 0)
	p.GetterName = "isEnabled"
	assert.Equal(t, "isEnabled", p.GetterSelector().String())
}

func TestSignature_ApplyNullabilityFrom_OnlyFillsUnspecified(t *testing.T) {
	unspecified := nullability.EAnnotation.Unspecified()
	nonnull := nullability.EAnnotation.Nonnull()
	nullable := nullability.EAnnotation.Nullable()

	target := Signature{
		ReturnType:          swifttype.Nominal("Foo").WithOptionality(swifttype.EOptionality.ImplicitlyUnwrapped()),
		ReturnRawAnnotation: unspecified,
		Params: []ParamSignature{
			{Name: "a", Type: swifttype.Nominal("Bar"), RawAnnotation: nonnull},
		},
	}
	incoming := Signature{
		ReturnType:          swifttype.Nominal("Foo").WithOptionality(swifttype.EOptionality.Optional()),
		ReturnRawAnnotation: nullable,
		Params: []ParamSignature{
			{Name: "b", Type: swifttype.Nominal("Bar"), RawAnnotation: nullable},
		},
	}

	target.ApplyNullabilityFrom(incoming)

	assert.Equal(t, nullable, target.ReturnRawAnnotation)
	assert.Equal(t, swifttype.EOptionality.Optional(), target.ReturnType.Optionality)
	// already-specified parameter annotation (nonnull) must not be overwritten
	assert.Equal(t, nonnull, target.Params[0].RawAnnotation)
	assert.Equal(t, "a", target.Params[0].Name)
}

func TestBodyCarrier_RoundTripsBodyByKind(t *testing.T) {
	m := NewMethod(cst.Pos{}, true, Signature{Selector: NewSelector("run")}, nil)
	carrier := MethodCarrier(m)
	assert.Nil(t, carrier.Body())

	carrier.SetBody(nil)
	assert.Nil(t, m.Body)

	p := NewProperty(cst.Pos{}, true, "name", StorageSpec{Type: swifttype.Nominal("String")}, 0)
	setterCarrier := PropertyCarrier(p, true)
	getterCarrier := PropertyCarrier(p, false)
	assert.Nil(t, setterCarrier.Body())
	assert.Nil(t, getterCarrier.Body())
}

func TestExtensionsForClass_ReturnsInFileOrder(t *testing.T) {
	col := NewCollection()
	f1 := NewFile(cst.Pos{}, true, "Foo.h")
	f2 := NewFile(cst.Pos{}, true, "Foo+Extras.h")
	col.AddFile(f1)
	col.AddFile(f2)

	e1 := NewClassExtension(cst.Pos{}, true, "Foo", "")
	e2 := NewClassExtension(cst.Pos{}, true, "Foo", "Extras")
	f1.AddExtension(e1)
	f2.AddExtension(e2)

	got := col.ExtensionsForClass("Foo")
	require.Len(t, got, 2)
	assert.Same(t, e1, got[0])
	assert.Same(t, e2, got[1])
}
