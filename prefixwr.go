package prjmk

import (
	"bytes"
	"io"
)

// prefixWriter writes prefix at the start of each line. The first write error
// sticks and makes all further writes no-ops.
type prefixWriter struct {
	w      io.Writer
	prefix []byte
	inLine bool
	err    error
}

func newPrefixWriter(w io.Writer, prefix string) *prefixWriter {
	return &prefixWriter{w: w, prefix: []byte(prefix)}
}

func (pw *prefixWriter) Write(p []byte) (n int, err error) {
	if pw.err != nil {
		return 0, pw.err
	}
	for len(p) > 0 {
		if !pw.inLine {
			if _, pw.err = pw.w.Write(pw.prefix); pw.err != nil {
				return n, pw.err
			}
			pw.inLine = true
		}
		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line = p[:i+1]
			pw.inLine = false
		}
		m, err := pw.w.Write(line)
		n += m
		if err != nil {
			pw.err = err
			return n, err
		}
		p = p[len(line):]
	}
	return n, nil
}
