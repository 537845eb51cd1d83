package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/SwiftRewriter/common"
)

func TestExpandInputs_WalksDirectoryForHeaderAndImplementationFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.h"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Foo.m"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(""), 0o644))

	paths, err := expandInputs([]string{dir})

	require.NoError(t, err)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, isObjCSource(p))
	}
}

func TestExpandInputs_PassesThroughExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Bar.m")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o644))

	paths, err := expandInputs([]string{file})

	require.NoError(t, err)
	assert.Equal(t, []string{file}, paths)
}

func TestTranslateCommand_WritesSwiftFileAndReportsUnparsedSourceDiagnostic(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	srcPath := filepath.Join(inDir, "Foo.m")
	require.NoError(t, os.WriteFile(srcPath, []byte("@implementation Foo\n@end\n"), 0o644))

	runLogger = common.NopLogger{}
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"translate", "--input", srcPath, "--output", outDir, "--log-level", "none"})

	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(filepath.Join(outDir, "Translated.swift"))
	require.NoError(t, err)
	assert.Empty(t, string(out))
	assert.Contains(t, stdout.String(), "(1 diagnostic(s))")
}
