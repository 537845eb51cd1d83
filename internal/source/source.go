// Package source models the input side of the external interface boundary
// (spec.md §6): a provider enumerates sources; an adapter turns each into a
// CST plus nullability regions plus a diagnostic sink. Lexing and parsing
// themselves are out of scope (spec.md §1) — ParserAdapter is implemented
// by an external collaborator this package only defines the contract for.
package source

import (
	"context"
	"os"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/nullability"
)

// Source is one named unit of Objective-C source text (spec.md §6:
// "{ name, text }").
type Source struct {
	Name string
	Text string
}

// Provider enumerates the sources one translation run covers.
type Provider interface {
	Sources(ctx context.Context) ([]Source, error)
}

// Parsed is what a ParserAdapter delivers for one Source (spec.md §6): the
// parsed declarations and the file's NS_ASSUME_NONNULL_BEGIN/END regions.
// Anything the adapter couldn't parse is reported to the diagnostics.Sink
// passed to Parse rather than returned as an error, so one bad file never aborts the whole run
// (spec.md §7 propagation policy).
type Parsed struct {
	Decls       []cst.Decl
	Nullability nullability.RegionSet
}

// ParserAdapter is the source-to-CST adapter spec.md §6 describes. A real
// implementation wraps an Objective-C grammar; this repository only
// depends on the interface.
type ParserAdapter interface {
	Parse(ctx context.Context, src Source, sink diagnostics.Sink) (Parsed, error)
}

// FilesystemProvider reads sources from disk, grounded on the teacher's
// own file-discovery style (cmd/zc_enumerator.go walks a path list rather
// than trusting a single root). Paths is the exact, pre-expanded list of
// files to translate; glob/directory expansion belongs to the CLI layer,
// not this package.
type FilesystemProvider struct {
	Paths []string
	// ReadFile is overridable for tests; defaults to os.ReadFile via
	// NewFilesystemProvider.
	ReadFile func(path string) ([]byte, error)
}

func NewFilesystemProvider(paths []string, readFile func(path string) ([]byte, error)) *FilesystemProvider {
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &FilesystemProvider{Paths: paths, ReadFile: readFile}
}

func (p *FilesystemProvider) Sources(ctx context.Context) ([]Source, error) {
	out := make([]Source, 0, len(p.Paths))
	for _, path := range p.Paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		data, err := p.ReadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, Source{Name: path, Text: string(data)})
	}
	return out, nil
}
