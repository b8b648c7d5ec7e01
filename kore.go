package prjmk

import (
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
)

type (
	Catalog     = prjmkore.Catalog
	ProjectDecl = prjmkore.ProjectDecl
	ProjectName = prjmkore.ProjectName
	ProjectKind = prjmkore.ProjectKind
	Target      = prjmkore.Target
	Conventions = prjmkore.Conventions

	Configuration = prjmkore.Configuration
)

func NewCatalog() *Catalog { return prjmkore.NewCatalog() }

func DefaultConventions() *Conventions { return prjmkore.DefaultConventions() }

// Edit calls do with a wrapper of cat that allows easy declaration of
// projects. Edit recovers from any panic and returns it as an error, so the
// idiomatic error handling within do can be skipped. When do returns
// normally, the whole catalog is checked with [Catalog.Check].
func Edit(cat *Catalog, do func(CatalogEd)) (err error) {
	cat.Lock()
	defer func() {
		cat.Unlock()
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()
	do(CatalogEd{cat})
	return cat.Check()
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustRet[T any](v T, err error) T {
	mustEd(err)
	return v
}
