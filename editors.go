package prjmk

import "git.fractalqb.de/fractalqb/prjmk/prjmkore"

// CatalogEd is used with [Edit].
type CatalogEd struct{ c *Catalog }

func (ed CatalogEd) Catalog() *Catalog { return ed.c }

// Project declares a new project. src is converted with
// [prjmkore.NewSourcePath].
func (ed CatalogEd) Project(name string, kind ProjectKind, src string) ProjectEd {
	d := ProjectDecl{
		Name:   mustRet(prjmkore.NewProjectName(name)),
		Kind:   kind,
		Source: mustRet(prjmkore.NewSourcePath(src)),
	}
	return ProjectEd{c: ed.c, d: mustRet(ed.c.Add(d))}
}

// Edit returns the editor of an already declared project.
func (ed CatalogEd) Edit(name ProjectName) ProjectEd {
	d := ed.c.Project(name)
	if d == nil {
		panic(prjmkore.UnknownProject(name))
	}
	return ProjectEd{c: ed.c, d: d}
}

// ProjectEd is used with [Edit]. Its methods modify the declaration stored in
// the catalog and re-check it.
type ProjectEd struct {
	c *Catalog
	d *ProjectDecl
}

func (ed ProjectEd) Decl() *ProjectDecl { return ed.d }

func (ed ProjectEd) Name() ProjectName { return ed.d.Name }

func (ed ProjectEd) Catalog() CatalogEd { return CatalogEd{ed.c} }

func (ed ProjectEd) Targets(t Target) ProjectEd {
	return ed.update(func(d *ProjectDecl) { d.Targets = t })
}

func (ed ProjectEd) Output(k prjmkore.OutputKind) ProjectEd {
	return ed.update(func(d *ProjectDecl) { d.Output = k })
}

func (ed ProjectEd) Precomp(header, source string) ProjectEd {
	return ed.update(func(d *ProjectDecl) {
		d.PrecompHeader, d.PrecompSource = header, source
	})
}

func (ed ProjectEd) ForcedIncludes(files ...string) ProjectEd {
	ed.d.ForcedIncludes = append(ed.d.ForcedIncludes, files...)
	return ed
}

func (ed ProjectEd) Defines(defs ...string) ProjectEd {
	ed.d.Defines = append(ed.d.Defines, defs...)
	return ed
}

// Includes adds include directories relative to the source root of the
// project.
func (ed ProjectEd) Includes(dirs ...string) ProjectEd {
	ed.d.IncludeDirs = append(ed.d.IncludeDirs, dirs...)
	return ed
}

// DebuggerDir sets the working directory for debugging the project. dir is
// converted with [prjmkore.NewSourcePath].
func (ed ProjectEd) DebuggerDir(dir string) ProjectEd {
	ed.d.DebuggerWorkingDir = string(mustRet(prjmkore.NewSourcePath(dir)))
	return ed
}

// DependsOn adds dependencies on producers with
// [prjmkore.DefaultPropagation].
func (ed ProjectEd) DependsOn(producers ...ProjectEd) ProjectEd {
	for _, p := range producers {
		ed.DependsOnMode(prjmkore.DefaultPropagation, p.d.Name)
	}
	return ed
}

func (ed ProjectEd) DependsOnMode(mode prjmkore.Propagation, producers ...ProjectName) ProjectEd {
	for _, p := range producers {
		mustRet(ed.c.Depend(ed.d.Name, p, mode))
	}
	return ed
}

// Producers returns the names of the projects ed depends on directly.
func (ed ProjectEd) Producers() []ProjectName {
	ps := make([]ProjectName, 0, len(ed.d.Deps))
	for _, e := range ed.d.Deps {
		ps = append(ps, e.Producer)
	}
	return ps
}

// update applies set to a copy of the declaration and stores the copy only if
// it passes the check.
func (ed ProjectEd) update(set func(*ProjectDecl)) ProjectEd {
	d := *ed.d
	set(&d)
	mustEd(d.Check())
	*ed.d = d
	return ed
}
