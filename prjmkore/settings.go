package prjmkore

import (
	"slices"
	"strings"
)

// Strings is an ordered set of strings.
type Strings []string

// With returns a new set with all non-empty elements of vs appended that are
// not yet in s.
func (s Strings) With(vs ...string) Strings {
	res := slices.Clone(s)
	for _, v := range vs {
		if v != "" && !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}

func (s Strings) Has(v string) bool { return slices.Contains(s, v) }

func (s Strings) String() string { return strings.Join(s, ";") }

// CompileSettings is the set of compiler and linker settings derived for one
// project and a single-value [Target].
type CompileSettings struct {
	Defines          Strings
	IncludePaths     Strings
	LibraryPaths     Strings
	LibraryFiles     Strings
	DisabledWarnings Strings
	ForcedIncludes   Strings
	CopyFiles        Strings

	// PrivateIncludePaths are used by the project itself and are never passed
	// on to dependents.
	PrivateIncludePaths Strings

	PrecompHeader string
	PrecompSource string

	WarningsAsErrors bool
	RTTI             bool
	Exceptions       bool
	MinimalRebuild   bool
}

// Define names without [Conventions.DefinePrefix].
const (
	DefDebugBuild     = "DEBUG_BUILD"
	DefOptimizedBuild = "OPTIMIZED_BUILD"
	DefMasterBuild    = "MASTER_BUILD"
	DefStaticBuild    = "STATIC_BUILD"
	DefNonclientBuild = "NONCLIENT_BUILD"
)

// ResolveCompileSettings derives the compile settings of a project of kind k
// for target t. The target must be single-valued, otherwise an error that
// matches [ErrCompositeTarget] is returned.
func (c *Conventions) ResolveCompileSettings(k ProjectKind, t Target) (CompileSettings, error) {
	prof, err := c.Profile(k)
	if err != nil {
		return CompileSettings{}, err
	}
	if err := c.checkSingle(t); err != nil {
		return CompileSettings{}, err
	}
	cs := CompileSettings{WarningsAsErrors: true}

	switch t.Optimization {
	case Debug:
		cs.Defines = cs.Defines.With(c.define(DefDebugBuild))
	case Develop, Profile:
		cs.Defines = cs.Defines.With(c.define(DefOptimizedBuild))
	case Master:
		cs.Defines = cs.Defines.With(
			c.define(DefOptimizedBuild),
			c.define(DefMasterBuild),
		)
	}
	if t.Output == Lib {
		cs.Defines = cs.Defines.With(c.define(DefStaticBuild))
	}
	cs.Defines = cs.Defines.With(c.define(DefNonclientBuild))
	for _, d := range prof.Defines {
		cs.Defines = cs.Defines.With(c.define(d))
	}

	incRoot := c.IncludeRoot
	cs.IncludePaths = cs.IncludePaths.With(c.dir(c.join(c.SourceDir, incRoot)))
	for _, d := range prof.IncludeDirs {
		cs.IncludePaths = cs.IncludePaths.With(c.dir(c.join(c.SourceDir, incRoot, d)))
	}

	if !t.Platform.IsMswin() {
		return cs, nil
	}
	sdkInc := c.dir(c.join(c.SDKInclude))
	cs.IncludePaths = cs.IncludePaths.With(sdkInc)
	cs.PrivateIncludePaths = cs.PrivateIncludePaths.With(sdkInc)
	cs.DisabledWarnings = cs.DisabledWarnings.With(c.DisabledWarnings...)
	if !prof.NativeLibs {
		return cs, nil
	}
	if prof.SDK {
		cs.LibraryPaths = cs.LibraryPaths.With(c.dir(c.join(c.SDKLib, Arch(t.Platform))))
	}
	for _, d := range prof.LibraryDirs {
		cs.LibraryPaths = cs.LibraryPaths.With(c.dir(c.join(c.SourceDir, incRoot, d)))
	}
	cs.LibraryFiles = cs.LibraryFiles.With(prof.LibraryFiles...)
	for _, f := range prof.CopyFiles {
		cs.CopyFiles = cs.CopyFiles.With(c.join(c.SourceDir, incRoot, f))
	}
	return cs, nil
}
