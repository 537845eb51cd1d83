// Package astreader turns a parsed CST (internal/cst) into an intention
// graph (internal/intention), generalizing the teacher's
// traverser/processor/morpher triad (cmd/zc_enumerator.go:
// ResourceTraverser.Traverse(preprocessor, processor, filters),
// objectMorpher.FollowedBy) from "walk a storage tree, morph StoredObjects"
// to "walk a CST, morph intentions" (spec.md §4.3).
package astreader

import (
	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
	"github.com/johndpope/SwiftRewriter/internal/typemap"
)

// Context carries everything the structural, expression, and statement
// readers need while walking one file's CST: the file's own
// NS_ASSUME_NONNULL region set, the diagnostic sink reads are reported to,
// and the mapper/config the Type Mapper is driven with. It is constructed
// once per file and passed down explicitly (Design Note 9), never held as
// package state.
type Context struct {
	FileName string
	Regions  nullability.RegionSet
	Sink     diagnostics.Sink
	Mapper   typemap.Mapper
	Reader   config.ReaderConfig
}

func NewContext(fileName string, regions nullability.RegionSet, sink diagnostics.Sink, mapper typemap.Mapper, reader config.ReaderConfig) Context {
	return Context{
		FileName: fileName,
		Regions:  regions,
		Sink:     sink,
		Mapper:   mapper,
		Reader:   reader,
	}
}

// InNonnullRegion reports whether token tokenIndex falls inside an
// NS_ASSUME_NONNULL_BEGIN/END region, honoring ReaderConfig's opt-out.
func (c Context) InNonnullRegion(tokenIndex int) bool {
	if !c.Reader.HonorAssumeNonnullRegions {
		return false
	}
	return c.Regions.Contains(tokenIndex)
}

// MapperContext builds the typemap.Context for a type reference at the
// given token index, combining the region membership with the explicit
// nullability mark the parser attached to the reference.
func (c Context) MapperContext(tokenIndex int, explicit nullability.Annotation) typemap.Context {
	return typemap.Context{
		InNonnullRegion: c.InNonnullRegion(tokenIndex),
		Explicit:        explicit,
	}
}

func (c Context) report(severity diagnostics.Severity, source, message string, at cst.Pos) {
	if c.Sink == nil {
		return
	}
	c.Sink.Report(diagnostics.Diagnostic{
		Severity: severity,
		Source:   source,
		Message:  message,
		At:       at,
	})
}
