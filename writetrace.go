package prjmk

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.fractalqb.de/fractalqb/prjmk/prjmkore"
	"git.fractalqb.de/fractalqb/sllm/v3"
)

type WriteTracer struct {
	W   io.Writer
	Log prjmkore.TraceLog
}

var _ prjmkore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() prjmkore.Tracer {
	return &WriteTracer{W: os.Stderr, Log: prjmkore.DefaultTraceLog}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = prjmkore.TraceWarn
	case "info", "i":
		tr.Log = prjmkore.TraceWarn | prjmkore.TraceInfo
	case "debug", "d":
		tr.Log = prjmkore.TraceWarn | prjmkore.TraceInfo | prjmkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(t *prjmkore.Trace, msg string, args ...any) {
	if tr.Log&prjmkore.TraceDebug == 0 {
		return
	}
	tr.logLine(t, "DEBUG", msg, args)
}

func (tr *WriteTracer) Info(t *prjmkore.Trace, msg string, args ...any) {
	if !tr.logInfo() {
		return
	}
	tr.logLine(t, "INFO ", msg, args)
}

func (tr *WriteTracer) Warn(t *prjmkore.Trace, msg string, args ...any) {
	if tr.Log == 0 {
		return
	}
	tr.logLine(t, "WARN ", msg, args)
}

func (tr *WriteTracer) ResolvedLayout(t *prjmkore.Trace, prj prjmkore.ProjectName, tgt prjmkore.Target, l *prjmkore.Layout) {
	if !tr.logInfo() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t= %s %s -> %s\n", t.TopTag(), t.Path(), tgt, l.TargetPath)
}

func (tr *WriteTracer) ResolvedSettings(t *prjmkore.Trace, prj prjmkore.ProjectName, tgt prjmkore.Target, cs *prjmkore.CompileSettings) {
	if tr.Log&prjmkore.TraceDebug == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  settings of '%s' for %s: defines [%s]\n",
		t.TopTag(),
		prj,
		tgt,
		cs.Defines,
	)
}

func (tr *WriteTracer) Inherited(t *prjmkore.Trace, e prjmkore.DependencyEdge) {
	if !tr.logInfo() {
		return
	}
	fmt.Fprintf(tr.W, "%s\t< %s\n", t.TopTag(), e)
}

func (tr *WriteTracer) logInfo() bool {
	return tr.Log&(prjmkore.TraceInfo|prjmkore.TraceDebug) != 0
}

func (tr *WriteTracer) logLine(t *prjmkore.Trace, level, msg string, args []any) {
	fmt.Fprintf(tr.W, "%s\t  %s ", t.TopTag(), level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
