package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johndpope/SwiftRewriter/common"
	"github.com/johndpope/SwiftRewriter/internal/config"
	"github.com/johndpope/SwiftRewriter/internal/diagnostics"
	"github.com/johndpope/SwiftRewriter/internal/pipeline"
	"github.com/johndpope/SwiftRewriter/internal/source"
)

var (
	inputPaths            []string
	outputDir             string
	omitObjCCompatibility bool
	printIntentionHistory bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate one or more Objective-C sources into Swift",
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringArrayVar(&inputPaths, "input", nil, "a .h/.m file or a directory to translate (repeatable)")
	translateCmd.Flags().StringVar(&outputDir, "output", ".", "directory the rendered Swift source is written into")
	translateCmd.Flags().BoolVar(&omitObjCCompatibility, "omit-objc-compatibility", false, "drop @objc/NSObjectProtocol emission from the rendered output")
	translateCmd.Flags().BoolVar(&printIntentionHistory, "print-intention-history", false, "render each intention's history log as a leading comment")
	_ = translateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := expandInputs(inputPaths)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .h/.m files found under %v", inputPaths)
	}

	provider := source.NewFilesystemProvider(paths, os.ReadFile)
	srcs, err := provider.Sources(ctx)
	if err != nil {
		return fmt.Errorf("reading input sources: %w", err)
	}

	cfg := pipeline.Config{
		Reader: config.DefaultReaderConfig(),
		Writer: config.WriterConfig{
			OmitObjCCompatibility: omitObjCCompatibility,
			PrintIntentionHistory: printIntentionHistory,
		},
		MaxParseConcurrency:     len(srcs),
		MaxBodyQueueConcurrency: 8,
	}

	result, err := pipeline.Translate(ctx, srcs, defaultParser, cfg)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	for _, d := range result.Diagnostics {
		runLogger.Log(severityToLogLevel(d.Severity), d.String())
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outputDir, "Translated.swift")
	if err := os.WriteFile(outPath, []byte(result.Swift), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d diagnostic(s))\n", outPath, len(result.Diagnostics))
	return nil
}

// expandInputs turns a mix of file and directory arguments into the flat,
// pre-expanded .h/.m file list source.FilesystemProvider expects — glob and
// directory expansion are this CLI layer's job, never the provider's (see
// FilesystemProvider's own doc comment in internal/source).
func expandInputs(inputs []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, in)
			continue
		}
		err = filepath.Walk(in, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return nil
			}
			if isObjCSource(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func isObjCSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".h" || ext == ".m"
}

// defaultParser is the CLI's ParserAdapter. Lexing and parsing Objective-C
// are out of scope for this repository (spec.md §1): there is no grammar
// here to drive, so every source is reported as unparsed rather than the
// run failing outright, letting the rest of the pipeline (and this
// command) exercise end to end on an empty declaration set.
var defaultParser source.ParserAdapter = unimplementedParser{}

type unimplementedParser struct{}

func (unimplementedParser) Parse(ctx context.Context, src source.Source, sink diagnostics.Sink) (source.Parsed, error) {
	sink.Report(diagnostics.Diagnostic{
		Severity: diagnostics.ESeverity.Warning(),
		Source:   "cmd",
		Message:  "no Objective-C parser is linked into this build; " + src.Name + " was not translated",
	})
	return source.Parsed{}, nil
}

func severityToLogLevel(s diagnostics.Severity) common.LogLevel {
	switch s {
	case diagnostics.ESeverity.Error():
		return common.ELogLevel.Error()
	case diagnostics.ESeverity.Warning():
		return common.ELogLevel.Warning()
	default:
		return common.ELogLevel.Info()
	}
}
