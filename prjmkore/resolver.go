package prjmkore

import (
	"context"
	"fmt"
	"slices"
)

// Configuration is everything resolved for one project and one single-value
// target. It is what a [Generator] gets.
type Configuration struct {
	Project ProjectName
	Kind    ProjectKind
	// Target is the target the configuration was resolved for.
	Target Target
	// Output is the output kind of the project itself. It differs from
	// Target.Output for projects with a fixed output kind.
	Output   OutputKind
	Layout   Layout
	Settings CompileSettings
	Deps     []DependencyEdge

	DebuggerWorkingDir string
	// ResourceExtensions are the extensions of files that go into the
	// project as resources.
	ResourceExtensions Strings
}

// Resolver composes layouts, compile settings and inherited dependency settings
// of catalog projects. A Resolver keeps no state between calls and can be used
// concurrently as long as Conv and the catalogs are not modified. A nil Conv
// means the [DefaultConventions].
type Resolver struct {
	Conv  *Conventions
	Trace *Trace
}

// NewResolver uses the [DefaultConventions] if conv is nil. Trace may be nil.
func NewResolver(conv *Conventions, tr *Trace) (*Resolver, error) {
	if conv == nil {
		conv = DefaultConventions()
	} else if err := conv.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{Conv: conv, Trace: tr}, nil
}

// Configure resolves project name of catalog cat for the single-value target t.
// The settings of all direct and indirect dependencies are inherited along the
// dependency edges. Each dependency is configured with the same target t.
// Configure stops with the context error when the context of r.Trace is done.
func (r *Resolver) Configure(cat *Catalog, name ProjectName, t Target) (*Configuration, error) {
	conv := r.conventions()
	if err := conv.checkSingle(t); err != nil {
		return nil, err
	}
	cfgr := configurer{
		conv:   conv,
		cat:    cat,
		target: t,
		done:   make(map[ProjectName]*Configuration),
	}
	return cfgr.configure(r.Trace, name)
}

// Generate expands target t and passes the configuration of project name for
// each single-value target to gen. If t is the zero Target, the targets the
// project is declared for are used.
func (r *Resolver) Generate(ctx context.Context, gen Generator, cat *Catalog, name ProjectName, t Target) error {
	decl := cat.Project(name)
	if decl == nil {
		return UnknownProject(name)
	}
	if t == (Target{}) {
		if t = decl.Targets; t == (Target{}) {
			return ConfigError{What: "targets of project", Value: string(name)}
		}
	} else if err := t.Check(); err != nil {
		return err
	}
	r.Trace.Info("generate `project` for `targets` targets",
		`project`, name,
		`targets`, t.Count(),
	)
	for st := range t.Expand() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg, err := r.Configure(cat, name, st)
		if err != nil {
			return err
		}
		if err := gen.Project(ctx, cfg); err != nil {
			return fmt.Errorf("generating project '%s' for %s: %w", name, st, err)
		}
	}
	return nil
}

func (r *Resolver) conventions() *Conventions {
	if r.Conv == nil {
		return DefaultConventions()
	}
	return r.Conv
}

type configurer struct {
	conv   *Conventions
	cat    *Catalog
	target Target
	done   map[ProjectName]*Configuration
	path   []ProjectName
}

func (c *configurer) configure(tr *Trace, name ProjectName) (*Configuration, error) {
	if cfg := c.done[name]; cfg != nil {
		return cfg, nil
	}
	if err := tr.Ctx().Err(); err != nil {
		return nil, err
	}
	if i := slices.Index(c.path, name); i >= 0 {
		cycle := append(slices.Clone(c.path[i:]), name)
		return nil, CycleError(cycle)
	}
	decl := c.cat.Project(name)
	if decl == nil {
		return nil, UnknownProject(name)
	}
	if decl.Targets != (Target{}) && !decl.Targets.Covers(c.target) {
		return nil, fmt.Errorf("project '%s' is not declared for target %s", name, c.target)
	}
	c.path = append(c.path, name)
	defer func() { c.path = c.path[:len(c.path)-1] }()

	tr = tr.pushProject(name)
	tr.Debug("configure `project` for `target`", `project`, name, `target`, c.target)

	own := c.target
	if decl.Output != 0 {
		own = own.WithOutput(decl.Output)
	}
	layout, err := c.conv.ResolveLayout(decl.Name, decl.Source, own)
	if err != nil {
		return nil, fmt.Errorf("project '%s': %w", name, err)
	}
	tr.resolvedLayout(own, &layout)

	cs, err := c.conv.ResolveCompileSettings(decl.Kind, c.target)
	if err != nil {
		return nil, fmt.Errorf("project '%s': %w", name, err)
	}
	c.declSettings(&cs, decl)
	tr.resolvedSettings(c.target, &cs)

	for _, e := range decl.Deps {
		pcfg, err := c.configure(tr, e.Producer)
		if err != nil {
			return nil, err
		}
		cs = cs.Inherit(pcfg, e.Mode)
		tr.inherited(e)
	}

	cfg := &Configuration{
		Project:            name,
		Kind:               decl.Kind,
		Target:             c.target,
		Output:             own.Output,
		Layout:             layout,
		Settings:           cs,
		Deps:               slices.Clone(decl.Deps),
		DebuggerWorkingDir: decl.DebuggerWorkingDir,
		ResourceExtensions: Strings(nil).With(c.conv.ResourceExtensions...),
	}
	if cfg.DebuggerWorkingDir != "" {
		cfg.DebuggerWorkingDir = c.conv.dir(c.conv.sourceRoot(SourcePath(decl.DebuggerWorkingDir)))
	}
	c.done[name] = cfg
	return cfg, nil
}

// declSettings adds what the declaration of a project adds to the settings of
// its kind. The source root of the project is the first include path.
func (c *configurer) declSettings(cs *CompileSettings, decl *ProjectDecl) {
	srcRoot := c.conv.sourceRoot(decl.Source)
	incs := Strings{c.conv.dir(srcRoot)}.With(cs.IncludePaths...)
	for _, d := range decl.IncludeDirs {
		incs = incs.With(c.conv.dir(c.conv.join(srcRoot, d)))
	}
	cs.IncludePaths = incs
	for _, d := range decl.Defines {
		cs.Defines = cs.Defines.With(c.conv.define(d))
	}
	cs.ForcedIncludes = cs.ForcedIncludes.With(decl.ForcedIncludes...)
	cs.PrecompHeader = decl.PrecompHeader
	cs.PrecompSource = decl.PrecompSource
}
