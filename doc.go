// Package prjmk helps to write declaration scripts for the project files of a
// native code base. The projects are declared in a [Catalog] with [Edit]. A
// [prjmkore.Resolver] then derives the layout and the compile settings of each
// project for each target and passes them to a [prjmkore.Generator] that
// writes the actual project files.
//
// A declaration script is a Go executable:
//
//	func main() {
//		cat := prjmk.NewCatalog()
//		prjmk.LogMust(prjmk.Edit(cat, func(ed prjmk.CatalogEd) {
//			core := ed.Project("core", prjmkore.System, "../core")
//			ed.Project("app", prjmkore.Test, "../app").
//				Output(prjmkore.Exe).
//				DependsOn(core)
//		}))
//		target := prjmk.Target{
//			Platform:     prjmkore.Win32 | prjmkore.Win64,
//			DevEnv:       prjmkore.VS2015,
//			Optimization: prjmkore.AllOptimizations,
//			Output:       prjmkore.Lib,
//		}
//		r, err := prjmkore.NewResolver(nil, nil)
//		prjmk.LogMust(err)
//		gen := &prjmk.WriteGenerator{W: os.Stdout}
//		prjmk.LogMust(r.Generate(context.Background(), gen, cat, "app", target))
//	}
//
// Use [WriteGenerator] for dry-runs and [Diagrammer] to get a picture of the
// dependency graph.
package prjmk
