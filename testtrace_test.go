package prjmk

import (
	"testing"

	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
)

type TestTracer struct{ t *testing.T }

var _ prjmkore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *prjmkore.Trace, msg string, args ...any) {
	tr.t.Logf("prjmk-DEBUG %s: %s %v", t, msg, args)
}

func (tr TestTracer) Info(t *prjmkore.Trace, msg string, args ...any) {
	tr.t.Logf("prjmk-INFO %s: %s %v", t, msg, args)
}

func (tr TestTracer) Warn(t *prjmkore.Trace, msg string, args ...any) {
	tr.t.Logf("prjmk-WARN %s: %s %v", t, msg, args)
}

func (tr TestTracer) ResolvedLayout(t *prjmkore.Trace, prj prjmkore.ProjectName, tgt prjmkore.Target, l *prjmkore.Layout) {
	tr.t.Logf("prjmk-ResolvedLayout: %s %s %s", prj, tgt, l.TargetPath)
}

func (tr TestTracer) ResolvedSettings(t *prjmkore.Trace, prj prjmkore.ProjectName, tgt prjmkore.Target, cs *prjmkore.CompileSettings) {
	tr.t.Logf("prjmk-ResolvedSettings: %s %s [%s]", prj, tgt, cs.Defines)
}

func (tr TestTracer) Inherited(t *prjmkore.Trace, e prjmkore.DependencyEdge) {
	tr.t.Logf("prjmk-Inherited: %s", e)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
