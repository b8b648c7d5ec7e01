// Package shipyard declares the projects of the Shipyard engine, its viewer
// and its unit tests.
package shipyard

import (
	"git.fractalqb.de/fractalqb/prjmk"
	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
)

const (
	System   prjmk.ProjectName = "shipyard.system"
	Math     prjmk.ProjectName = "shipyard.math"
	Graphics prjmk.ProjectName = "shipyard.graphics"
	Tools    prjmk.ProjectName = "shipyard.tools"

	Viewer    prjmk.ProjectName = "shipyard.viewer"
	ViewerApp prjmk.ProjectName = "shipyard.viewer.app"

	UnitTest prjmk.ProjectName = "ShipyardUnitTest"
)

var (
	TargetLib = prjmk.Target{
		Platform:     prjmkore.Win32 | prjmkore.Win64,
		DevEnv:       prjmkore.VS2015,
		Optimization: prjmkore.AllOptimizations,
		Output:       prjmkore.Lib,
	}
	TargetDll = TargetLib.WithOutput(prjmkore.Dll)

	// Targets is what the engine libraries are declared for.
	Targets = TargetLib.WithOutput(prjmkore.Lib | prjmkore.Dll)
)

// Solution is a named group of projects that are generated together.
type Solution struct {
	Name     string
	Projects []prjmk.ProjectName
}

func Solutions() []Solution {
	libs := []prjmk.ProjectName{System, Math, Graphics, Tools}
	return []Solution{
		{Name: "Shipyard", Projects: libs},
		{Name: "Shipyard-Viewer", Projects: append(libs[:len(libs):len(libs)], Viewer, ViewerApp)},
		{Name: "Shipyard-Unit-Test", Projects: append(libs[:len(libs):len(libs)], UnitTest)},
	}
}

// Declare adds all Shipyard projects to the catalog of ed.
func Declare(ed prjmk.CatalogEd) {
	system := ed.Project(string(System), prjmkore.System, "../shipyard/system").
		Targets(Targets)
	math := ed.Project(string(Math), prjmkore.Math, "../shipyard/math").
		Targets(Targets).
		DependsOn(system)
	graphics := ed.Project(string(Graphics), prjmkore.Graphics, "../shipyard/graphics").
		Targets(Targets).
		DependsOn(system, math)
	tools := ed.Project(string(Tools), prjmkore.Tools, "../shipyard/tools").
		Targets(Targets).
		DependsOn(graphics, math, system)

	viewer := ed.Project(string(Viewer), prjmkore.Viewer, "../shipyard-viewer/framework").
		Targets(TargetDll).
		Precomp("shipyardviewerlibprecomp.h", "shipyardviewerlibprecomp.cpp").
		ForcedIncludes("shipyardviewerlibprecomp.h").
		Defines("VIEWER_LIB_DLL").
		DependsOn(system, math, graphics, tools)
	ed.Project(string(ViewerApp), prjmkore.Viewer, "../shipyard-viewer/src").
		Targets(TargetDll).
		Output(prjmkore.Exe).
		Precomp("shipyardviewerprecomp.h", "shipyardviewerprecomp.cpp").
		ForcedIncludes("shipyardviewerprecomp.h").
		Includes("../framework").
		DebuggerDir("../shipyard-viewer/approot").
		DependsOn(viewer)

	ed.Project(string(UnitTest), prjmkore.Test, "../shipyard-unit-test").
		Targets(TargetLib).
		Output(prjmkore.Exe).
		DependsOn(system, math, graphics)
}

// NewCatalog returns a new catalog with all Shipyard projects.
func NewCatalog() (*prjmk.Catalog, error) {
	cat := prjmk.NewCatalog()
	if err := prjmk.Edit(cat, Declare); err != nil {
		return nil, err
	}
	return cat, nil
}

func MustCatalog() *prjmk.Catalog {
	cat, err := NewCatalog()
	prjmk.Must(err)
	return cat
}
