package prjmk

import (
	"context"
	"fmt"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
)

// WriteGenerator writes a text description of each configuration to W instead
// of generating project files. Use it for dry-runs.
type WriteGenerator struct {
	W io.Writer
	// Indent prefixes the lines of a configuration's properties. Defaults to
	// a tab character.
	Indent string
}

var _ prjmkore.Generator = (*WriteGenerator)(nil)

func (g *WriteGenerator) Project(_ context.Context, cfg *Configuration) error {
	if _, err := fmt.Fprintf(g.W, "%s %s\n", cfg.Project, cfg.Target); err != nil {
		return err
	}
	indent := g.Indent
	if indent == "" {
		indent = "\t"
	}
	pw := newPrefixWriter(g.W, indent)
	prop := func(name string, value any) {
		if s := fmt.Sprint(value); s != "" {
			fmt.Fprintf(pw, "%-20s%s\n", name+":", s)
		}
	}
	l, cs := &cfg.Layout, &cfg.Settings
	prop("kind", cfg.Kind)
	prop("output", cfg.Output)
	prop("project file", l.ProjectFile)
	prop("source root", l.SourceRoot)
	prop("intermediate", l.IntermediateDirectory)
	prop("target", l.TargetPath)
	prop("defines", cs.Defines)
	prop("include paths", cs.IncludePaths)
	prop("private includes", cs.PrivateIncludePaths)
	prop("library paths", cs.LibraryPaths)
	prop("library files", cs.LibraryFiles)
	prop("disabled warnings", cs.DisabledWarnings)
	prop("forced includes", cs.ForcedIncludes)
	prop("copy files", cs.CopyFiles)
	if cs.PrecompHeader != "" {
		prop("precomp", cs.PrecompHeader+" "+cs.PrecompSource)
	}
	prop("debugger dir", cfg.DebuggerWorkingDir)
	prop("resources", cfg.ResourceExtensions)
	if len(cfg.Deps) > 0 {
		ps := make([]string, len(cfg.Deps))
		for i, e := range cfg.Deps {
			ps[i] = string(e.Producer)
		}
		prop("depends on", strings.Join(ps, " "))
	}
	return pw.err
}
