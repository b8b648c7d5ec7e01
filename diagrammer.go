package prjmk

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
)

// Diagrammer writes the dependency graph of a catalog in the Graphviz DOT
// format. Edges point from the dependent to the producer.
type Diagrammer struct {
	RankDir string
}

func (dia *Diagrammer) WriteDot(w io.Writer, name string, cat *Catalog) (err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()

	dia.startDot(w, name)
	bold := make(map[ProjectName]bool)
	for _, d := range cat.Roots() {
		bold[d.Name] = true
	}
	for _, d := range cat.Leafs() {
		bold[d.Name] = true
	}
	for d := range cat.Projects() {
		dia.project(w, d, bold[d.Name])
	}
	for e := range cat.Edges() {
		dia.edge(w, e)
	}
	dia.endDot(w)
	return nil
}

func (dia *Diagrammer) startDot(w io.Writer, name string) {
	dotf(w, "digraph \"%s\" {\n", escDotID(name))
	if dia.RankDir != "" {
		dotf(w, "\trankdir=\"%s\"\n", escDotID(dia.RankDir))
	}
}

func (dia *Diagrammer) endDot(w io.Writer) { dotf(w, "}\n") }

func (dia *Diagrammer) project(w io.Writer, d *ProjectDecl, bold bool) {
	var style string
	if bold {
		style = ",style=bold"
	}
	out := "any"
	if d.Output != 0 {
		out = d.Output.String()
	}
	dotf(w, "\t\"%s\" [shape=record%s,label=\"{%s|%s %s}\"];\n",
		escDotID(string(d.Name)),
		style,
		escDotID(string(d.Name)),
		d.Kind,
		out,
	)
}

func (dia *Diagrammer) edge(w io.Writer, e prjmkore.DependencyEdge) {
	if e.Mode == prjmkore.DefaultPropagation {
		dotf(w, "\t\"%s\" -> \"%s\";\n",
			escDotID(string(e.Dependent)),
			escDotID(string(e.Producer)),
		)
		return
	}
	dotf(w, "\t\"%s\" -> \"%s\" [style=dashed,label=\"%s\"];\n",
		escDotID(string(e.Dependent)),
		escDotID(string(e.Producer)),
		e.Mode,
	)
}

func dotf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		panic(err)
	}
}

func escDotID(id string) string {
	return strings.ReplaceAll(id, "\"", "\\\"")
}
