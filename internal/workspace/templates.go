package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

func applyBasicTemplate(path, name string) error {
	files := map[string]string{
		"README.md":  fmt.Sprintf("# %s\n\nProject created by CLAI.\n", name),
		".gitignore": "# Created by CLAI\n*.pyc\n__pycache__/\n.env\n",
	}
	return writeFiles(path, files)
}

func applyPythonTemplate(path, name string) error {
	if err := applyBasicTemplate(path, name); err != nil {
		return err
	}
	files := map[string]string{
		"src/__init__.py":    fmt.Sprintf("\"\"\"%s package.\"\"\"\n", name),
		"src/main.py":        "\"\"\"Main entry point.\"\"\"\n\n\ndef main():\n    print(\"Hello from CLAI!\")\n\n\nif __name__ == \"__main__\":\n    main()\n",
		"tests/__init__.py":  "",
		"tests/test_main.py": "\"\"\"Tests for main module.\"\"\"\n\n\ndef test_placeholder():\n    assert True\n",
		"requirements.txt":   "# Dependencies\n",
		".gitignore": "# Python\n*.pyc\n__pycache__/\n*.egg-info/\ndist/\nbuild/\n.eggs/\n\n" +
			"# Virtual env\nvenv/\n.venv/\nenv/\n\n" +
			"# IDE\n.idea/\n.vscode/\n*.swp\n\n" +
			"# Environment\n.env\n.env.local\n",
	}
	return writeFiles(path, files)
}

func applyNodeTemplate(path, name string) error {
	if err := applyBasicTemplate(path, name); err != nil {
		return err
	}
	packageJSON := fmt.Sprintf(`{
  "name": %q,
  "version": "1.0.0",
  "description": "Created by CLAI",
  "main": "src/index.js",
  "scripts": {
    "start": "node src/index.js",
    "test": "echo \"No tests yet\""
  }
}
`, name)
	files := map[string]string{
		"package.json": packageJSON,
		"src/index.js": "console.log(\"Hello from CLAI!\");\n",
		".gitignore": "# Node\nnode_modules/\n*.log\n\n" +
			"# Build\ndist/\nbuild/\n\n" +
			"# Environment\n.env\n.env.local\n",
	}
	return writeFiles(path, files)
}

func writeFiles(root string, files map[string]string) error {
	for rel, content := range files {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
	}
	return nil
}
