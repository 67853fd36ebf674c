package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveResponse_ExtractsCodeBlockForCodeFiles(t *testing.T) {
	dir := t.TempDir()
	content := "Here is the function:\n\n```go\nfunc Add(a, b int) int {\n\treturn a + b\n}\n```\n\nLet me know."

	path := filepath.Join(dir, "add.go")
	require.NoError(t, saveResponse(content, path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "func Add(a, b int) int {\n\treturn a + b\n}", string(got))
}

func TestSaveResponse_FullTextForNonCodeFiles(t *testing.T) {
	dir := t.TempDir()
	content := "Notes:\n\n```go\ncode here\n```\n\ntrailing text"

	path := filepath.Join(dir, "notes.md")
	require.NoError(t, saveResponse(content, path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestSaveResponse_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.txt")
	require.NoError(t, saveResponse("hello", path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestLoadFileContext_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	got, err := loadFileContext(path)
	require.NoError(t, err)
	assert.Contains(t, got, "File: main.go")
	assert.Contains(t, got, "package main\n", "literal contents, no transformation")
}

func TestLoadFileContext_DirectoryFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "b.md"), []byte("# b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), []byte{0x89}, 0o644))

	got, err := loadFileContext(dir)
	require.NoError(t, err)
	assert.Contains(t, got, "### a.go")
	assert.Contains(t, got, "package a")
	assert.Contains(t, got, filepath.Join("docs", "b.md"))
	assert.NotContains(t, got, "image.png")
}

func TestLoadFileContext_Missing(t *testing.T) {
	_, err := loadFileContext(filepath.Join(t.TempDir(), "nope.go"))
	assert.Error(t, err)
}
