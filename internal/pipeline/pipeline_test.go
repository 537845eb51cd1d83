package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/source"
	"github.com/johndpope/SwiftRewriter/internal/testcst"
)

// fakeParser stands in for the external Objective-C grammar (spec.md §1
// excludes lexing/parsing from scope): it returns pre-built Decls keyed by
// source name instead of actually parsing src.Text.
type fakeParser struct {
	decls map[string][]cst.Decl
	fail  map[string]error
}

func (f *fakeParser) Parse(ctx context.Context, src source.Source, sink diagnostics.Sink) (source.Parsed, error) {
	if err, ok := f.fail[src.Name]; ok {
		return source.Parsed{}, err
	}
	return source.Parsed{Decls: f.decls[src.Name], Nullability: nullability.RegionSet{}}, nil
}

func TestTranslate_SingleClassProducesSwiftClass(t *testing.T) {
	iface := testcst.Interface("Counter", "NSObject")
	impl := testcst.Implementation("Counter")
	impl.Methods = []cst.MethodDecl{
		testcst.Method([]string{"reset"}, nil, cst.TypeRef{Text: "void"}, false, nil),
	}

	parser := &fakeParser{decls: map[string][]cst.Decl{
		"Counter.m": {iface, impl},
	}}

	result, err := Translate(context.Background(), []source.Source{{Name: "Counter.m", Text: ""}}, parser, Config{
		MaxParseConcurrency:     2,
		MaxBodyQueueConcurrency: 2,
	})

	require.NoError(t, err)
	assert.Contains(t, result.Swift, "class Counter: NSObject {")
	assert.Contains(t, result.Swift, "func reset() {")
	assert.Empty(t, result.Diagnostics)
}

func TestTranslate_MultipleSourcesParseConcurrentlyAndMergeInOrder(t *testing.T) {
	parser := &fakeParser{decls: map[string][]cst.Decl{
		"A.m": {testcst.Interface("A", ""), testcst.Implementation("A")},
		"B.m": {testcst.Interface("B", ""), testcst.Implementation("B")},
	}}

	result, err := Translate(context.Background(), []source.Source{
		{Name: "A.m", Text: ""},
		{Name: "B.m", Text: ""},
	}, parser, Config{MaxParseConcurrency: 4, MaxBodyQueueConcurrency: 4})

	require.NoError(t, err)
	aIdx := indexOf(result.Swift, "class A: NSObject {")
	bIdx := indexOf(result.Swift, "class B: NSObject {")
	require.True(t, aIdx >= 0 && bIdx >= 0)
	assert.Less(t, aIdx, bIdx)
}

func TestTranslate_ParserErrorIsReportedAndRunSucceeds(t *testing.T) {
	parser := &fakeParser{
		fail:  map[string]error{"Bad.m": assert.AnError},
		decls: map[string][]cst.Decl{"Good.m": {testcst.Interface("Good", ""), testcst.Implementation("Good")}},
	}

	result, err := Translate(context.Background(), []source.Source{
		{Name: "Bad.m", Text: ""},
		{Name: "Good.m", Text: ""},
	}, parser, Config{MaxParseConcurrency: 2, MaxBodyQueueConcurrency: 2})

	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, diagnostics.ESeverity.Error(), result.Diagnostics[0].Severity)
	assert.Contains(t, result.Diagnostics[0].Message, "Bad.m")
	assert.Contains(t, result.Swift, "class Good: NSObject {")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
