package astreader

import (
	"testing"

	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
	"github.com/johndpope/SwiftRewriter/internal/testcst"
	"github.com/johndpope/SwiftRewriter/internal/typemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(regions nullability.RegionSet) Context {
	return NewContext("Foo.h", regions, nil, typemap.New(), config.DefaultReaderConfig())
}

func TestReadFile_PreservesDeclarationOrder(t *testing.T) {
	decls := []cst.Decl{
		testcst.Interface("Foo", "NSObject"),
		testcst.Protocol("FooDelegate"),
		{Kind: cst.DeclTypedefEnum, Name: "FooState", RawType: "NSInteger"},
	}

	file := ReadFile(newTestContext(nullability.NewRegionSet(nil)), decls)

	require.Len(t, file.Classes, 1)
	require.Len(t, file.Protocols, 1)
	require.Len(t, file.Enums, 1)
	assert.Equal(t, "Foo", file.Classes[0].Name)
	assert.Equal(t, "FooDelegate", file.Protocols[0].Name)
}

func TestReadFile_PropertyCarriesResolvedType(t *testing.T) {
	decl := testcst.Interface("Foo", "NSObject")
	decl.Properties = []cst.PropertyDecl{
		testcst.Property("name", testcst.TypeRef("NSString *", "nonnull"), 0),
	}

	file := ReadFile(newTestContext(nullability.NewRegionSet(nil)), []cst.Decl{decl})

	require.Len(t, file.Classes[0].Props, 1)
	prop := file.Classes[0].Props[0]
	assert.Equal(t, "NSString", prop.Storage.Type.Name)
	assert.Equal(t, "name", prop.Name)
}

func TestReadFile_UnspecifiedNullabilityOutsideRegionIsImplicitlyUnwrapped(t *testing.T) {
	decl := testcst.Interface("Foo", "NSObject")
	decl.Properties = []cst.PropertyDecl{
		testcst.Property("owner", testcst.TypeRef("NSObject *", ""), 0),
	}

	file := ReadFile(newTestContext(nullability.NewRegionSet(nil)), []cst.Decl{decl})

	prop := file.Classes[0].Props[0]
	assert.Equal(t, swifttype.EOptionality.ImplicitlyUnwrapped(), prop.Storage.Type.Optionality)
}

func TestReadExpr_OctalNumberLiteralPreservesNumberBase(t *testing.T) {
	e := readExpr(newTestContext(nullability.NewRegionSet(nil)), &cst.Expr{
		Kind:       cst.ExprNumberLiteral,
		NumberText: "010",
		NumberBase: cst.NumBaseOctal,
	})

	assert.Equal(t, "010", e.IntText)
	assert.Equal(t, swiftast.NumBaseOctal, e.NumberBase)
}

func TestReadFile_MethodSelectorMatchesKeywordPieces(t *testing.T) {
	decl := testcst.Interface("Foo", "NSObject")
	decl.Methods = []cst.MethodDecl{
		testcst.Method(
			[]string{"initWithName:", "age:"},
			[]cst.Param{testcst.Param("name", testcst.TypeRef("NSString *", "nonnull")), testcst.Param("age", testcst.TypeRef("NSInteger", ""))},
			testcst.TypeRef("instancetype", "nonnull"),
			false,
			nil,
		),
	}

	file := ReadFile(newTestContext(nullability.NewRegionSet(nil)), []cst.Decl{decl})

	require.Len(t, file.Classes[0].Methods, 1)
	assert.Equal(t, "initWithName:age:", file.Classes[0].Methods[0].Signature.Selector.String())
}
