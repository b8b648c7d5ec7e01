package prjmkore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfig is matched by all errors about illegal configuration values.
	ErrConfig = errors.New("configuration error")

	// ErrCompositeTarget is returned when a flag-set target is passed where a
	// single-value target is required. Use [Target.Expand] first.
	ErrCompositeTarget = errors.New("composite target")
)

type ConfigError struct {
	What  string
	Value string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("configuration error: illegal %s '%s'", e.What, e.Value)
}

func (ConfigError) Is(target error) bool {
	if target == ErrConfig {
		return true
	}
	_, ok := target.(ConfigError)
	return ok
}

type UnknownProject ProjectName

func (e UnknownProject) Error() string {
	return fmt.Sprintf("unknown project '%s'", string(e))
}

func (UnknownProject) Is(target error) bool {
	_, ok := target.(UnknownProject)
	return ok
}

// CycleError lists the projects of a dependency cycle. The first and the last
// element are the same project.
type CycleError []ProjectName

func (e CycleError) Error() string {
	var sb strings.Builder
	sb.WriteString("dependency cycle: ")
	for i, n := range e {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(string(n))
	}
	return sb.String()
}

func (CycleError) Is(target error) bool {
	_, ok := target.(CycleError)
	return ok
}
