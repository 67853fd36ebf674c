// Package workspace provides sandboxed file operations rooted at a
// single workspace directory. Every path is resolved relative to the
// root and rejected if it escapes the sandbox.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one directory entry relative to the workspace root.
type FileInfo struct {
	Path  string
	Name  string
	IsDir bool
	Size  int64
}

// Workspace wraps a sandbox root directory.
type Workspace struct {
	root string
}

// New creates a workspace at root, creating the directory if needed.
func New(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	return &Workspace{root: abs}, nil
}

// Root returns the absolute workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// resolve maps a user-supplied relative path into the sandbox. Leading
// separators are stripped so absolute input stays relative; anything
// resolving outside the root is an error.
func (w *Workspace) resolve(rel string) (string, error) {
	clean := strings.TrimLeft(rel, "/\\")
	full := filepath.Clean(filepath.Join(w.root, clean))
	if full != w.root && !strings.HasPrefix(full, w.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes workspace sandbox", rel)
	}
	return full, nil
}

// CreateProject creates a project directory and applies a template:
// "basic", "python", "node", or "empty".
func (w *Workspace) CreateProject(name, template string) (string, error) {
	path, err := w.resolve(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project %q already exists", name)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}

	switch template {
	case "", "basic":
		err = applyBasicTemplate(path, name)
	case "python":
		err = applyPythonTemplate(path, name)
	case "node":
		err = applyNodeTemplate(path, name)
	case "empty":
	default:
		err = fmt.Errorf("unknown template %q", template)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// ListProjects returns the non-hidden top-level directories.
func (w *Workspace) ListProjects() ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var projects []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			projects = append(projects, e.Name())
		}
	}
	sort.Strings(projects)
	return projects, nil
}

// ReadFile returns the contents of a file inside the sandbox.
func (w *Workspace) ReadFile(rel string) (string, error) {
	path, err := w.resolve(rel)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	return string(data), nil
}

// WriteFile writes content to a file inside the sandbox, creating
// parent directories as needed.
func (w *Workspace) WriteFile(rel, content string) error {
	path, err := w.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

// ListDir lists a directory inside the sandbox.
func (w *Workspace) ListDir(rel string) ([]FileInfo, error) {
	path, err := w.resolve(rel)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", rel, err)
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		full := filepath.Join(path, e.Name())
		relPath, _ := filepath.Rel(w.root, full)
		var size int64
		if !e.IsDir() {
			if fi, err := e.Info(); err == nil {
				size = fi.Size()
			}
		}
		infos = append(infos, FileInfo{
			Path:  relPath,
			Name:  e.Name(),
			IsDir: e.IsDir(),
			Size:  size,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Tree renders a directory tree rooted at rel, descending at most
// maxDepth levels. Directories sort before files.
func (w *Workspace) Tree(rel string, maxDepth int) (string, error) {
	path, err := w.resolve(rel)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return "", fmt.Errorf("directory not found: %s", rel)
	}

	lines := []string{filepath.Base(path) + "/"}
	if err := buildTree(path, "", &lines, maxDepth, 0); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func buildTree(path, prefix string, lines *[]string, maxDepth, depth int) error {
	if depth >= maxDepth {
		return nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	for i, e := range entries {
		last := i == len(entries)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		if e.IsDir() {
			*lines = append(*lines, prefix+connector+e.Name()+"/")
			if err := buildTree(filepath.Join(path, e.Name()), childPrefix, lines, maxDepth, depth+1); err != nil {
				return err
			}
		} else {
			*lines = append(*lines, prefix+connector+e.Name())
		}
	}
	return nil
}
