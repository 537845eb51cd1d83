// Package pipeline wires the five stages spec.md §4 lays out into one
// entry point: parse every source, build the intention graph, run the
// fixed-order Intention Passes, drain the Function Body Queue through the
// downstream expression passes, and hand the finished collection to the
// pretty-printer. Generalized from the teacher's enumerator composition
// (azcopy/copyEnumerator.go wires traverser -> filters -> processor into
// one Enumerate call) into "parse -> structural read -> passes -> body
// queue -> print".
package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/johndpope/SwiftRewriter/internal/astreader"
	"github.com/johndpope/SwiftRewriter/internal/bodyqueue"
	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/exprpass"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/passes"
	"github.com/johndpope/SwiftRewriter/internal/source"
	"github.com/johndpope/SwiftRewriter/internal/swiftprint"
	"github.com/johndpope/SwiftRewriter/internal/typemap"
)

// Config bundles the per-stage configuration structs a translation run is
// threaded with (Design Note 9: explicit configuration, never process-wide
// singletons).
type Config struct {
	Mapper config.MapperConfig
	Reader config.ReaderConfig
	Writer config.WriterConfig

	// MaxParseConcurrency bounds how many sources are handed to the
	// ParserAdapter at once (spec.md §5's first parallel region). Values
	// below 1 are treated as 1.
	MaxParseConcurrency int
	// MaxBodyQueueConcurrency bounds the Function Body Queue's collection
	// phase (spec.md §5's second parallel region, see internal/bodyqueue).
	MaxBodyQueueConcurrency int64
}

// Result is one translation run's output: the rendered Swift source plus
// every diagnostic raised along the way, in no particular cross-file order
// since parsing runs concurrently (callers that need a stable order should
// sort Diagnostics themselves, e.g. by At.File then At.Line).
type Result struct {
	Swift       string
	Diagnostics []diagnostics.Diagnostic
}

// parsedSource is one source's parse result, kept paired with its origin
// so structural reading (stage 2) can walk sources in a fixed order even
// though stage 1 filled them in concurrently.
type parsedSource struct {
	src    source.Source
	parsed source.Parsed
}

// Translate runs every stage in order and returns the rendered Swift
// source for the whole run. It returns an error only for a failure that
// aborts the run entirely (a structural pass failing or the Function Body
// Queue collection failing); a single source's parse error never aborts
// the rest (spec.md §7: "I/O error on input: aborts that file; other
// files continue" / "errors never stop the pipeline before the
// pretty-print stage"), it is reported to Result.Diagnostics instead and
// that source is simply left untranslated.
func Translate(ctx context.Context, srcs []source.Source, parser source.ParserAdapter, cfg Config) (Result, error) {
	sink := diagnostics.NewCollection()

	parsed := parseAll(ctx, srcs, parser, sink, cfg.MaxParseConcurrency)

	col := buildCollection(parsed, sink, cfg)

	if err := passes.Run(col); err != nil {
		return Result{}, errors.Wrap(err, "intention passes")
	}

	queue, err := bodyqueue.Collect(ctx, col, cfg.MaxBodyQueueConcurrency, nil)
	if err != nil {
		return Result{}, errors.Wrap(err, "body queue collection")
	}
	exprpass.Run(col, queue.Drain())

	swift := swiftprint.Print(col, cfg.Writer)

	return Result{Swift: swift, Diagnostics: sink.Items()}, nil
}

// parseAll hands every source to parser concurrently, bounded by
// maxConcurrency (spec.md §5: "parsing of multiple input files" is one of
// the two regions allowed to run in parallel). Results are collected into
// a slice indexed by srcs' own order so stage 2 can process them
// deterministically regardless of which goroutine finished first. A
// source whose Parse call fails is reported to sink as an Error
// diagnostic and left with a zero Parsed{} rather than aborting the
// others (spec.md §7): no goroutine here ever returns a non-nil error, so
// the group is never canceled early by one bad source.
func parseAll(ctx context.Context, srcs []source.Source, parser source.ParserAdapter, sink diagnostics.Sink, maxConcurrency int) []parsedSource {
	out := make([]parsedSource, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	g.SetLimit(maxConcurrency)

	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			p, err := parser.Parse(gctx, src, sink)
			if err != nil {
				sink.Report(diagnostics.Diagnostic{
					Severity: diagnostics.ESeverity.Error(),
					Source:   "pipeline",
					Message:  fmt.Sprintf("parsing %s: %v", src.Name, err),
					At:       cst.Pos{File: src.Name},
				})
				return nil
			}
			out[i] = parsedSource{src: src, parsed: p}
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// buildCollection runs the structural AST reader over every parsed source,
// in source order, and assembles the resulting FileIntentions into one
// Collection. This is sequential: spec.md §5 names only parsing and body
// queue collection as parallel regions, and the structural reader mutates
// a single Collection that every file contributes to.
func buildCollection(parsed []parsedSource, sink diagnostics.Sink, cfg Config) *intention.Collection {
	col := intention.NewCollection()
	mapper := typemap.New()

	for _, p := range parsed {
		readerCtx := astreader.NewContext(p.src.Name, p.parsed.Nullability, sink, mapper, cfg.Reader)
		file := astreader.ReadFile(readerCtx, p.parsed.Decls)
		col.AddFile(file)
	}

	return col
}

// SortDiagnostics orders diagnostics by file, then line, then column, for
// stable human-facing output despite the concurrent parse stage that
// produced them in an otherwise arbitrary order.
func SortDiagnostics(items []diagnostics.Diagnostic) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].At, items[j].At
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
