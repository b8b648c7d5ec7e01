package prjmkore

import "fmt"

// Layout is the set of paths derived for one project and a single-value
// [Target].
type Layout struct {
	ProjectFileName       string
	ProjectDirectory      string
	ProjectFile           string
	SourceRoot            string
	IntermediateDirectory string
	OutputDirectory       string
	TargetPath            string
}

// ResolveLayout derives the layout of project name with its sources in base for
// target t. The target must be single-valued, otherwise an error that matches
// [ErrCompositeTarget] is returned.
func (c *Conventions) ResolveLayout(name ProjectName, base SourcePath, t Target) (Layout, error) {
	if err := name.Check(); err != nil {
		return Layout{}, err
	}
	if err := base.Check(); err != nil {
		return Layout{}, err
	}
	if err := c.checkSingle(t); err != nil {
		return Layout{}, err
	}
	devEnv := t.DevEnv.String()
	prjDir := c.join(c.Root, c.GeneratedDir, devEnv, c.platformSegment(t.Platform))
	outDir := c.join(
		c.Root,
		c.outputRoot(t.Output),
		c.ArchSegment(t.Platform),
		t.Optimization.String(),
	)
	return Layout{
		ProjectFileName:  string(name),
		ProjectDirectory: c.dir(prjDir),
		ProjectFile:      c.join(prjDir, string(name)),
		SourceRoot:       c.dir(c.sourceRoot(base)),
		IntermediateDirectory: c.dir(c.join(
			prjDir,
			c.IntermediateDir,
			devEnv,
			t.Output.String(),
			string(name),
		)),
		OutputDirectory: c.dir(outDir),
		TargetPath:      c.join(outDir, BinaryName(name, t.Platform, t.Output)),
	}, nil
}

func (c *Conventions) sourceRoot(base SourcePath) string {
	return c.join(c.SourceDir, string(base))
}

func (c *Conventions) checkSingle(t Target) error {
	if err := t.Check(); err != nil {
		return err
	}
	if !t.Single() {
		return fmt.Errorf("%w %s", ErrCompositeTarget, t)
	}
	return nil
}

// BinaryName returns the file name of the binary built for project name on
// platform p with output kind k. Both p and k must be single-valued.
func BinaryName(name ProjectName, p Platform, k OutputKind) string {
	n := string(name)
	if p.IsMswin() {
		switch k {
		case Lib:
			return n + ".lib"
		case Dll:
			return n + ".dll"
		}
		return n + ".exe"
	}
	switch k {
	case Lib:
		return "lib" + n + ".a"
	case Dll:
		if p == Mac {
			return "lib" + n + ".dylib"
		}
		return "lib" + n + ".so"
	}
	return n
}

// LinkName returns the file name a dependent links against to use the library
// project name. On Windows the import library of a DLL is linked. LinkName
// returns "" for executables.
func LinkName(name ProjectName, p Platform, k OutputKind) string {
	if !k.IsLibrary() {
		return ""
	}
	if p.IsMswin() {
		return string(name) + ".lib"
	}
	return BinaryName(name, p, k)
}
