package shell

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var codeBlockRe = regexp.MustCompile("(?s)```(?:\\w+)?\n(.*?)```")

// codeExtensions are the file types where saving extracts the first
// fenced code block instead of the full markdown reply.
var codeExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true,
	".cpp": true, ".c": true, ".go": true, ".rs": true,
}

// contextExtensions are the file types included when loading a
// directory as prompt context.
var contextExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".java": true,
	".cpp": true, ".c": true, ".go": true, ".rs": true,
	".md": true, ".txt": true, ".json": true, ".yaml": true, ".yml": true,
}

// saveResponse writes a reply to path. For code file extensions the
// first fenced code block is extracted; otherwise the full text is
// written.
func saveResponse(content, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	out := content
	if codeExtensions[filepath.Ext(path)] {
		if m := codeBlockRe.FindStringSubmatch(content); m != nil {
			out = strings.TrimSpace(m[1])
		}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// loadFileContext reads a file, or every code file under a directory,
// into a context block appended verbatim to the prompt.
func loadFileContext(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("not found: %s", path)
	}

	if !fi.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return fmt.Sprintf("\n\n---\nFile: %s\n```\n%s\n```\n", filepath.Base(path), data), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n---\nDirectory: %s\n", path)
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !contextExtensions[filepath.Ext(p)] {
			return nil
		}
		data, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil // skip unreadable files
		}
		rel, _ := filepath.Rel(path, p)
		fmt.Fprintf(&b, "\n### %s\n```\n%s\n```\n", rel, data)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walk %s: %w", path, err)
	}
	return b.String(), nil
}
