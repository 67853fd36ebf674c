package shell

import (
	"fmt"
	"strconv"
)

func (s *Shell) handleProjects() {
	projects, err := s.ws.ListProjects()
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	if len(projects) == 0 {
		fmt.Fprintln(s.out, "\nNo projects yet. Create one with: newproject <name>")
		fmt.Fprintf(s.out, "Workspace: %s\n\n", s.ws.Root())
		return
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		infos, err := s.ws.ListDir(p)
		fileCount := 0
		if err == nil {
			for _, fi := range infos {
				if !fi.IsDir {
					fileCount++
				}
			}
		}
		rows = append(rows, []string{p, strconv.Itoa(fileCount)})
	}
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, s.renderer.Table([]string{"NAME", "FILES"}, rows))
	fmt.Fprintf(s.out, "\nWorkspace: %s\n\n", s.ws.Root())
}

func (s *Shell) handleNewProject(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: newproject <name> [python|node|basic]")
		return
	}
	name := args[0]
	template := "python"
	if len(args) > 1 {
		template = args[1]
	}

	path, err := s.ws.CreateProject(name, template)
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	fmt.Fprintf(s.out, "\nCreated project %q at %s\n\n", name, path)

	tree, err := s.ws.Tree(name, 3)
	if err == nil {
		fmt.Fprintln(s.out, "Project structure:")
		fmt.Fprintln(s.out, tree)
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) handleFiles(args []string) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	infos, err := s.ws.ListDir(path)
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	if len(infos) == 0 {
		fmt.Fprintf(s.out, "Directory empty: %s\n", path)
		return
	}

	fmt.Fprintf(s.out, "\n%s\n\n", path)
	for _, fi := range infos {
		if fi.IsDir {
			fmt.Fprintf(s.out, "  %s/\n", fi.Name)
		} else {
			fmt.Fprintf(s.out, "  %s (%d bytes)\n", fi.Name, fi.Size)
		}
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) handleTree(args []string) {
	path := "."
	depth := 3
	if len(args) > 0 {
		path = args[0]
	}
	if len(args) > 1 {
		if d, err := strconv.Atoi(args[1]); err == nil && d > 0 {
			depth = d
		}
	}

	tree, err := s.ws.Tree(path, depth)
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	fmt.Fprintf(s.out, "\n%s\n\n", tree)
}

func (s *Shell) handleReadFile(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: readfile <path>")
		return
	}
	content, err := s.ws.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(s.out, s.renderer.Error(err))
		return
	}
	fmt.Fprintf(s.out, "\n%s\n\n", args[0])
	fmt.Fprintln(s.out, s.renderer.Markdown(fmt.Sprintf("```\n%s\n```", content)))
}
