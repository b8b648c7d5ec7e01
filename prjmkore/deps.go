package prjmkore

import (
	"fmt"
	"strings"
)

// Propagation flags select what a dependent inherits from a producer.
type Propagation uint8

const (
	PropIncludePaths Propagation = 1 << iota
	PropLibraryPaths
	PropLibraryFiles

	DefaultPropagation = PropIncludePaths | PropLibraryPaths | PropLibraryFiles
)

var propNames = []string{"include-paths", "library-paths", "library-files"}

func (m Propagation) Valid() bool { return m&^DefaultPropagation == 0 }

func (m Propagation) String() string {
	if m == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, n := range propNames {
		if m&(1<<i) != 0 {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(n)
		}
	}
	if rest := m &^ DefaultPropagation; rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "0x%x", uint8(rest))
	}
	return sb.String()
}

// DependencyEdge says that project Dependent uses project Producer. The edges
// of a [Catalog] are expected to form a directed acyclic graph.
type DependencyEdge struct {
	Dependent ProjectName
	Producer  ProjectName
	Mode      Propagation
}

func (e DependencyEdge) String() string {
	return fmt.Sprintf("%s -> %s [%s]", e.Dependent, e.Producer, e.Mode)
}

// Inherit returns cs extended by what the configuration of a producer passes
// on according to mode. Library producers additionally pass their output
// directory as library path and, on Windows, their link file as library file.
// cs itself is not modified.
func (cs CompileSettings) Inherit(producer *Configuration, mode Propagation) CompileSettings {
	pcs := &producer.Settings
	lib := producer.Output.IsLibrary()
	if mode&PropIncludePaths != 0 {
		cs.IncludePaths = cs.IncludePaths.With(pcs.IncludePaths...)
	}
	if mode&PropLibraryPaths != 0 {
		if lib {
			cs.LibraryPaths = cs.LibraryPaths.With(producer.Layout.OutputDirectory)
		}
		cs.LibraryPaths = cs.LibraryPaths.With(pcs.LibraryPaths...)
	}
	if mode&PropLibraryFiles != 0 {
		if lib && producer.Target.Platform.IsMswin() {
			cs.LibraryFiles = cs.LibraryFiles.With(LinkName(
				producer.Project,
				producer.Target.Platform,
				producer.Output,
			))
		}
		cs.LibraryFiles = cs.LibraryFiles.With(pcs.LibraryFiles...)
		cs.CopyFiles = cs.CopyFiles.With(pcs.CopyFiles...)
	}
	return cs
}
