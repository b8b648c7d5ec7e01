package prjmkore

import (
	"context"
	"slices"
	"strings"
)

// Tracer receives the log messages and resolution events of a [Trace]. Log
// messages are sllm templates: argument names are backtick-quoted in msg and
// args alternate between names and values.
type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	ResolvedLayout(t *Trace, prj ProjectName, tgt Target, l *Layout)
	ResolvedSettings(t *Trace, prj ProjectName, tgt Target, cs *CompileSettings)
	Inherited(t *Trace, e DependencyEdge)
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace follows the projects being configured. All methods can be called on a
// nil Trace which does nothing.
type Trace struct {
	root *traceRoot
	up   *Trace
	prj  ProjectName
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	root := &traceRoot{ctx: ctx, tr: t}
	return &Trace{root: root}
}

func (t *Trace) Ctx() context.Context {
	if t == nil {
		return context.Background()
	}
	return t.root.ctx
}

func (t *Trace) Debug(msg string, args ...any) {
	if t.active() {
		t.root.tr.Debug(t, msg, args...)
	}
}

func (t *Trace) Info(msg string, args ...any) {
	if t.active() {
		t.root.tr.Info(t, msg, args...)
	}
}

func (t *Trace) Warn(msg string, args ...any) {
	if t.active() {
		t.root.tr.Warn(t, msg, args...)
	}
}

// Project returns the project currently being configured.
func (t *Trace) Project() ProjectName {
	if t == nil {
		return ""
	}
	return t.prj
}

// Path returns the chain of projects being configured, outermost first.
func (t *Trace) Path() string {
	var ps []string
	for ; t != nil; t = t.up {
		if t.prj != "" {
			ps = append(ps, string(t.prj))
		}
	}
	slices.Reverse(ps)
	return "<" + strings.Join(ps, ">") + ">"
}

func (t *Trace) TopTag() string {
	if t == nil || t.prj == "" {
		return ""
	}
	return "{" + string(t.prj) + "}"
}

func (t *Trace) String() string { return t.Path() }

func (t *Trace) active() bool { return t != nil && t.root.tr != nil }

func (t *Trace) pushProject(p ProjectName) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{root: t.root, up: t, prj: p}
}

func (t *Trace) resolvedLayout(tgt Target, l *Layout) {
	if t.active() {
		t.root.tr.ResolvedLayout(t, t.prj, tgt, l)
	}
}

func (t *Trace) resolvedSettings(tgt Target, cs *CompileSettings) {
	if t.active() {
		t.root.tr.ResolvedSettings(t, t.prj, tgt, cs)
	}
}

func (t *Trace) inherited(e DependencyEdge) {
	if t.active() {
		t.root.tr.Inherited(t, e)
	}
}

type traceRoot struct {
	ctx context.Context
	tr  Tracer
}
