// Package prjmkore implements the core model of prjmk for resolving build
// targets into project layouts and compile settings. It uses idiomatic Go error
// handling. The core concepts are [Target], [Conventions], [Catalog] and
// [Resolver]. Resolution is a set of pure functions: identical inputs always
// yield identical results and nothing is written anywhere. Emitting actual
// project files is left to a [Generator].
//
// An easy-to-use wrapper for declaring projects in build scripts is provided by
// the [prjmk] package.
//
// [prjmk]: https://pkg.go.dev/git.fractalqb.de/fractalqb/prjmk
package prjmkore
