package prjmkore

import (
	"strings"
)

// ProjectName identifies a project in a [Catalog]. Use [NewProjectName] to get
// a checked name.
type ProjectName string

func NewProjectName(s string) (ProjectName, error) {
	n := ProjectName(s)
	if err := n.Check(); err != nil {
		return "", err
	}
	return n, nil
}

// Check accepts non-empty names made of letters, digits, '.', '_' and '-' that
// do not start with '.' or '-'.
func (n ProjectName) Check() error {
	if n == "" {
		return ConfigError{What: "project name", Value: ""}
	}
	for i, r := range n {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		case r == '.' || r == '-':
			if i == 0 {
				return ConfigError{What: "project name", Value: string(n)}
			}
		default:
			return ConfigError{What: "project name", Value: string(n)}
		}
	}
	return nil
}

// SourcePath is the relative path to the source root of a project. It always
// uses '/' as separator and has no trailing separator.
type SourcePath string

func NewSourcePath(s string) (SourcePath, error) {
	p := strings.ReplaceAll(strings.TrimSpace(s), `\`, "/")
	p = strings.TrimRight(p, "/")
	sp := SourcePath(p)
	if err := sp.Check(); err != nil {
		return "", ConfigError{What: "source path", Value: s}
	}
	return sp, nil
}

func (p SourcePath) Check() error {
	switch {
	case p == "":
	case p[0] == '/' || strings.ContainsRune(string(p), '\\'):
	case len(p) > 1 && p[1] == ':':
	default:
		return nil
	}
	return ConfigError{What: "source path", Value: string(p)}
}
