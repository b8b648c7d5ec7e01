package prjmkore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
	"github.com/google/go-cmp/cmp"
)

type recTracer struct {
	t      *testing.T
	events []string
}

func (tr *recTracer) Debug(t *Trace, msg string, args ...any) {
	tr.t.Logf("DEBUG %s %s %v", t, msg, args)
}

func (tr *recTracer) Info(t *Trace, msg string, args ...any) {
	tr.t.Logf("INFO %s %s %v", t, msg, args)
}

func (tr *recTracer) Warn(t *Trace, msg string, args ...any) {
	tr.t.Logf("WARN %s %s %v", t, msg, args)
}

func (tr *recTracer) ResolvedLayout(t *Trace, prj ProjectName, tgt Target, l *Layout) {
	tr.events = append(tr.events, fmt.Sprintf("layout %s %s", t.Path(), tgt))
}

func (tr *recTracer) ResolvedSettings(t *Trace, prj ProjectName, tgt Target, cs *CompileSettings) {
	tr.events = append(tr.events, fmt.Sprintf("settings %s", prj))
}

func (tr *recTracer) Inherited(t *Trace, e DependencyEdge) {
	tr.events = append(tr.events, fmt.Sprintf("inherit %s", e))
}

func testCatalog(t *testing.T) *Catalog {
	cat := NewCatalog()
	testerr.Shall1(cat.Add(ProjectDecl{
		Name:   "shipyard.system",
		Kind:   System,
		Source: "../shipyard/system",
	})).BeNil(t)
	testerr.Shall1(cat.Add(ProjectDecl{
		Name:   "shipyard.math",
		Kind:   Math,
		Source: "../shipyard/math",
		Deps: []DependencyEdge{
			{Dependent: "shipyard.math", Producer: "shipyard.system", Mode: DefaultPropagation},
		},
	})).BeNil(t)
	testerr.Shall1(cat.Add(ProjectDecl{
		Name:    "app",
		Kind:    Test,
		Source:  "../app",
		Output:  Exe,
		Targets: Target{Win32 | Win64, VS2015, Debug | Master, Lib},
		Defines: []string{"APP"},
	})).BeNil(t)
	testerr.Shall1(cat.Depend("app", "shipyard.math", DefaultPropagation)).BeNil(t)
	testerr.Shall(cat.Check()).BeNil(t)
	return cat
}

func TestResolver_Configure(t *testing.T) {
	cat := testCatalog(t)
	tracer := &recTracer{t: t}
	r := testerr.Shall1(NewResolver(nil, NewTrace(context.Background(), tracer))).BeNil(t)
	cfg := testerr.Shall1(r.Configure(cat, "app", Target{Win64, VS2015, Debug, Lib})).BeNil(t)

	if cfg.Output != Exe {
		t.Errorf("app output kind %s", cfg.Output)
	}
	if cfg.Layout.TargetPath != "../bin/x64/Debug/app.exe" {
		t.Errorf("app target path '%s'", cfg.Layout.TargetPath)
	}
	wantDefs := Strings{"DEBUG_BUILD", "STATIC_BUILD", "NONCLIENT_BUILD", "APP"}
	if diff := cmp.Diff(wantDefs, cfg.Settings.Defines); diff != "" {
		t.Error(diff)
	}
	wantIncs := Strings{
		"../app",
		"../shipyard",
		"$(DXSDK_DIR)/Include",
		"../shipyard/math",
		"../shipyard/system",
	}
	if diff := cmp.Diff(wantIncs, cfg.Settings.IncludePaths); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(Strings{"../lib/x64/Debug"}, cfg.Settings.LibraryPaths); diff != "" {
		t.Error(diff)
	}
	wantLibs := Strings{"shipyard.math.lib", "shipyard.system.lib"}
	if diff := cmp.Diff(wantLibs, cfg.Settings.LibraryFiles); diff != "" {
		t.Error(diff)
	}

	wantEvents := []string{
		"layout <app> win64/vs2015/Debug/exe",
		"settings app",
		"layout <app>shipyard.math> win64/vs2015/Debug/lib",
		"settings shipyard.math",
		"layout <app>shipyard.math>shipyard.system> win64/vs2015/Debug/lib",
		"settings shipyard.system",
		"inherit shipyard.math -> shipyard.system [include-paths|library-paths|library-files]",
		"inherit app -> shipyard.math [include-paths|library-paths|library-files]",
	}
	if diff := cmp.Diff(wantEvents, tracer.events); diff != "" {
		t.Error(diff)
	}
}

func TestResolver_Configure_zeroResolver(t *testing.T) {
	cat := testCatalog(t)
	var r Resolver
	cfg := testerr.Shall1(r.Configure(cat, "app", Target{Win64, VS2015, Debug, Lib})).BeNil(t)
	if p := cfg.Layout.TargetPath; p != "../bin/x64/Debug/app.exe" {
		t.Errorf("target path '%s'", p)
	}
	if diff := cmp.Diff(Strings{".fx", ".hlsl"}, cfg.ResourceExtensions); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff(Strings{"$(DXSDK_DIR)/Include"}, cfg.Settings.PrivateIncludePaths); diff != "" {
		t.Error(diff)
	}
}

func TestResolver_Configure_canceled(t *testing.T) {
	cat := testCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := testerr.Shall1(NewResolver(nil, NewTrace(ctx, &recTracer{t: t}))).BeNil(t)
	_, err := r.Configure(cat, "app", Target{Win64, VS2015, Debug, Lib})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: %v", err)
	}
	if r.Trace.Ctx() != ctx {
		t.Error("trace lost its context")
	}
}

func TestResolver_Configure_deterministic(t *testing.T) {
	cat := testCatalog(t)
	r := testerr.Shall1(NewResolver(nil, nil)).BeNil(t)
	tgt := Target{Win32, VS2015, Master, Lib}
	c1 := testerr.Shall1(r.Configure(cat, "app", tgt)).BeNil(t)
	c2 := testerr.Shall1(r.Configure(cat, "app", tgt)).BeNil(t)
	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Error(diff)
	}
}

func TestResolver_Configure_errors(t *testing.T) {
	r := testerr.Shall1(NewResolver(nil, nil)).BeNil(t)
	cat := testCatalog(t)

	_, err := r.Configure(cat, "app", Target{Win64, VS2015, Debug | Master, Lib})
	if !errors.Is(err, ErrCompositeTarget) {
		t.Errorf("composite target: %v", err)
	}
	testerr.Shall1(r.Configure(cat, "app", Target{Linux, VS2015, Debug, Lib})).
		Check(t, testerr.Msg("project 'app' is not declared for target linux/vs2015/Debug/lib"))
	_, err = r.Configure(cat, "nope", Target{Win64, VS2015, Debug, Lib})
	if !errors.Is(err, UnknownProject("")) {
		t.Errorf("unknown project: %v", err)
	}

	t.Run("cycle", func(t *testing.T) {
		cat := NewCatalog()
		testerr.Shall1(cat.Add(ProjectDecl{Name: "a", Kind: System, Source: "a"})).BeNil(t)
		testerr.Shall1(cat.Add(ProjectDecl{Name: "b", Kind: System, Source: "b"})).BeNil(t)
		testerr.Shall1(cat.Depend("a", "b", DefaultPropagation)).BeNil(t)
		testerr.Shall1(cat.Depend("b", "a", DefaultPropagation)).BeNil(t)
		testerr.Shall1(r.Configure(cat, "a", Target{Win64, VS2015, Debug, Lib})).
			Check(t, testerr.Msg("dependency cycle: a -> b -> a"))
	})

	t.Run("unknown producer", func(t *testing.T) {
		cat := NewCatalog()
		testerr.Shall1(cat.Add(ProjectDecl{Name: "a", Kind: System, Source: "a"})).BeNil(t)
		testerr.Shall1(cat.Depend("a", "ghost", PropIncludePaths)).BeNil(t)
		if err := cat.Check(); !errors.Is(err, UnknownProject("")) {
			t.Errorf("catalog check: %v", err)
		}
		_, err := r.Configure(cat, "a", Target{Win64, VS2015, Debug, Lib})
		if !errors.Is(err, UnknownProject("")) {
			t.Errorf("configure: %v", err)
		}
	})
}

func TestResolver_Generate(t *testing.T) {
	cat := testCatalog(t)
	r := testerr.Shall1(NewResolver(nil, nil)).BeNil(t)
	var got []string
	gen := GeneratorFunc(func(_ context.Context, cfg *Configuration) error {
		got = append(got, cfg.Layout.OutputDirectory)
		return nil
	})
	testerr.Shall(r.Generate(context.Background(), gen, cat, "app", Target{})).BeNil(t)
	want := []string{
		"../bin/x86/Debug",
		"../bin/x86/Master",
		"../bin/x64/Debug",
		"../bin/x64/Master",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := r.Generate(ctx, gen, cat, "app", Target{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("generator error", func(t *testing.T) {
		errGen := errors.New("disk full")
		err := r.Generate(context.Background(),
			GeneratorFunc(func(context.Context, *Configuration) error { return errGen }),
			cat, "app", Target{},
		)
		if !errors.Is(err, errGen) {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("no targets", func(t *testing.T) {
		err := r.Generate(context.Background(), gen, cat, "shipyard.math", Target{})
		if !errors.Is(err, ErrConfig) {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("explicit target", func(t *testing.T) {
		got = nil
		tgt := Target{Win64, VS2015, Debug | Develop, Lib | Dll}
		testerr.Shall(r.Generate(context.Background(), gen, cat, "shipyard.math", tgt)).BeNil(t)
		want := []string{
			"../lib/x64/Debug",
			"../lib/x64/Debug",
			"../lib/x64/Develop",
			"../lib/x64/Develop",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Error(diff)
		}
		err := r.Generate(context.Background(), gen, cat, "app", tgt)
		if err == nil {
			t.Error("app is not declared for develop builds")
		}
	})
}

func TestCatalog_Add(t *testing.T) {
	cat := NewCatalog()
	testerr.Shall1(cat.Add(ProjectDecl{Name: "a", Kind: System, Source: "a"})).BeNil(t)
	testerr.Shall1(cat.Add(ProjectDecl{Name: "a", Kind: Math, Source: "b"})).
		Check(t, testerr.Msg("duplicate project 'a'"))

	for _, tc := range []struct {
		name string
		decl ProjectDecl
	}{
		{"no kind", ProjectDecl{Name: "x", Source: "x"}},
		{"no source", ProjectDecl{Name: "x", Kind: Math}},
		{"bad name", ProjectDecl{Name: ".x", Kind: Math, Source: "x"}},
		{"bad kind", ProjectDecl{Name: "x", Kind: 99, Source: "x"}},
		{"precomp", ProjectDecl{Name: "x", Kind: Math, Source: "x", PrecompHeader: "pch.h"}},
		{"output", ProjectDecl{Name: "x", Kind: Math, Source: "x", Output: Lib | Dll}},
		{"targets", ProjectDecl{Name: "x", Kind: Math, Source: "x", Targets: Target{Platform: Win32}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := cat.Add(tc.decl); !errors.Is(err, ErrConfig) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
	if cat.Len() != 1 {
		t.Errorf("catalog has %d projects", cat.Len())
	}
}

func TestCatalog_Depend(t *testing.T) {
	cat := testCatalog(t)
	_, err := cat.Depend("app", "app", DefaultPropagation)
	if !errors.Is(err, CycleError{}) {
		t.Errorf("self dependency: %v", err)
	}
	testerr.Shall1(cat.Depend("app", "shipyard.math", PropIncludePaths)).
		Check(t, testerr.Msg("duplicate dependency app -> shipyard.math [include-paths]"))
	_, err = cat.Depend("nope", "app", DefaultPropagation)
	if !errors.Is(err, UnknownProject("")) {
		t.Errorf("unknown dependent: %v", err)
	}
	_, err = cat.Depend("app", "shipyard.system", Propagation(0x40))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("bad propagation: %v", err)
	}

	var edges []string
	for e := range cat.Edges() {
		edges = append(edges, fmt.Sprintf("%s>%s", e.Dependent, e.Producer))
	}
	if diff := cmp.Diff([]string{"shipyard.math>shipyard.system", "app>shipyard.math"}, edges); diff != "" {
		t.Error(diff)
	}
	if rs := cat.Roots(); len(rs) != 1 || rs[0].Name != "app" {
		t.Errorf("unexpected roots: %v", rs)
	}
	if ls := cat.Leafs(); len(ls) != 1 || ls[0].Name != "shipyard.system" {
		t.Errorf("unexpected leafs: %v", ls)
	}
}
