package prjmkore

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
)

// ProjectDecl declares a project of a [Catalog].
type ProjectDecl struct {
	Name   ProjectName `validate:"required"`
	Kind   ProjectKind `validate:"required"`
	Source SourcePath  `validate:"required"`

	// Targets is the flag-set of targets the project is declared for. The zero
	// Target declares the project for any target.
	Targets Target
	// Output replaces the output kind of the target for this project if it is
	// not zero. Executables use this, the output kind of the target then only
	// selects how libraries are linked.
	Output OutputKind

	PrecompHeader  string `validate:"required_with=PrecompSource"`
	PrecompSource  string `validate:"required_with=PrecompHeader"`
	ForcedIncludes []string
	Defines        []string
	// IncludeDirs are relative to the source root of the project.
	IncludeDirs        []string
	DebuggerWorkingDir string

	Deps []DependencyEdge
}

func (d *ProjectDecl) Check() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: project '%s': %w", ErrConfig, d.Name, err)
	}
	if err := d.Name.Check(); err != nil {
		return err
	}
	if err := d.Source.Check(); err != nil {
		return err
	}
	if !d.Kind.Valid() {
		return ConfigError{What: "project kind", Value: d.Kind.String()}
	}
	if d.Targets != (Target{}) {
		if err := d.Targets.Check(); err != nil {
			return fmt.Errorf("project '%s': %w", d.Name, err)
		}
	}
	if d.Output != 0 && (!d.Output.Valid() || !d.Output.Single()) {
		return ConfigError{What: "output kind", Value: d.Output.String()}
	}
	for _, e := range d.Deps {
		if err := d.checkEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (d *ProjectDecl) checkEdge(e DependencyEdge) error {
	if e.Dependent != d.Name {
		return fmt.Errorf("edge %s does not start at project '%s'", e, d.Name)
	}
	if err := e.Producer.Check(); err != nil {
		return err
	}
	if e.Producer == d.Name {
		return CycleError{d.Name, d.Name}
	}
	if !e.Mode.Valid() {
		return ConfigError{What: "propagation", Value: e.Mode.String()}
	}
	return nil
}

// Catalog is the set of declared projects. The Mutex is not used by the
// methods of Catalog. It is meant to be used when editing a catalog from
// several goroutines.
type Catalog struct {
	sync.Mutex

	decls map[ProjectName]*ProjectDecl
	order []ProjectName
}

func NewCatalog() *Catalog {
	return &Catalog{decls: make(map[ProjectName]*ProjectDecl)}
}

// Add checks d and adds a copy of it to the catalog. The returned declaration
// is the one stored in the catalog.
func (cat *Catalog) Add(d ProjectDecl) (*ProjectDecl, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	if cat.decls[d.Name] != nil {
		return nil, fmt.Errorf("duplicate project '%s'", d.Name)
	}
	d.Deps = slices.Clone(d.Deps)
	cat.decls[d.Name] = &d
	cat.order = append(cat.order, d.Name)
	return &d, nil
}

func (cat *Catalog) Project(name ProjectName) *ProjectDecl { return cat.decls[name] }

func (cat *Catalog) Len() int { return len(cat.order) }

// Projects iterates the projects in the order they were added.
func (cat *Catalog) Projects() iter.Seq[*ProjectDecl] {
	return func(yield func(*ProjectDecl) bool) {
		for _, n := range cat.order {
			if !yield(cat.decls[n]) {
				return
			}
		}
	}
}

// Depend adds a dependency edge from dependent to producer. The producer does
// not need to be declared yet.
func (cat *Catalog) Depend(dependent, producer ProjectName, mode Propagation) (DependencyEdge, error) {
	d := cat.decls[dependent]
	if d == nil {
		return DependencyEdge{}, UnknownProject(dependent)
	}
	e := DependencyEdge{Dependent: dependent, Producer: producer, Mode: mode}
	if err := d.checkEdge(e); err != nil {
		return DependencyEdge{}, err
	}
	if slices.ContainsFunc(d.Deps, func(x DependencyEdge) bool { return x.Producer == producer }) {
		return DependencyEdge{}, fmt.Errorf("duplicate dependency %s", e)
	}
	d.Deps = append(d.Deps, e)
	return e, nil
}

// Edges iterates all dependency edges.
func (cat *Catalog) Edges() iter.Seq[DependencyEdge] {
	return func(yield func(DependencyEdge) bool) {
		for d := range cat.Projects() {
			for _, e := range d.Deps {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Leafs returns the projects that do not depend on other projects.
func (cat *Catalog) Leafs() (ls []*ProjectDecl) {
	for d := range cat.Projects() {
		if len(d.Deps) == 0 {
			ls = append(ls, d)
		}
	}
	return ls
}

// Roots returns the projects no other project depends on.
func (cat *Catalog) Roots() (rs []*ProjectDecl) {
	used := make(map[ProjectName]bool)
	for e := range cat.Edges() {
		used[e.Producer] = true
	}
	for d := range cat.Projects() {
		if !used[d.Name] {
			rs = append(rs, d)
		}
	}
	return rs
}

// Check checks all declarations and that all producers are declared. Acyclicity
// is not checked, [Resolver.Configure] reports cycles it runs into.
func (cat *Catalog) Check() error {
	var errs []error
	for d := range cat.Projects() {
		if err := d.Check(); err != nil {
			errs = append(errs, err)
			continue
		}
		for _, e := range d.Deps {
			if cat.decls[e.Producer] == nil {
				errs = append(errs, fmt.Errorf("%s: %w", e, UnknownProject(e.Producer)))
			}
		}
	}
	return errors.Join(errs...)
}
