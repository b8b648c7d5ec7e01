package prjmkore

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// fragmentNames holds the names of the flags of one target fragment type. The
// name of a flag with bit number i is names[i].
type fragmentNames struct {
	what  string
	names []string
}

func (fn *fragmentNames) mask() uint32 { return (1 << len(fn.names)) - 1 }

func (fn *fragmentNames) valid(v uint32) bool {
	return v != 0 && v&^fn.mask() == 0
}

func (fn *fragmentNames) format(v uint32) string {
	if v == 0 {
		return "none"
	}
	var sb strings.Builder
	bs := bitset.From([]uint64{uint64(v)})
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		if i < uint(len(fn.names)) {
			sb.WriteString(fn.names[i])
		} else {
			fmt.Fprintf(&sb, "0x%x", uint32(1)<<i)
		}
	}
	return sb.String()
}

// parse accepts a single name or a '|'-separated list of names. Names are
// matched case-insensitively. "none" is the empty flag set, as returned by
// format.
func (fn *fragmentNames) parse(s string) (uint32, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return 0, nil
	}
	var v uint32
NEXT_NAME:
	for _, n := range strings.Split(s, "|") {
		n = strings.TrimSpace(n)
		for i, fname := range fn.names {
			if strings.EqualFold(n, fname) {
				v |= 1 << i
				continue NEXT_NAME
			}
		}
		return 0, ConfigError{What: fn.what, Value: s}
	}
	return v, nil
}

func (fn *fragmentNames) check(v uint32) error {
	if !fn.valid(v) {
		return ConfigError{What: fn.what, Value: fn.format(v)}
	}
	return nil
}

func single[F ~uint32](f F) bool { return f != 0 && f&(f-1) == 0 }

func count[F ~uint32](f F) int {
	return int(bitset.From([]uint64{uint64(f)}).Count())
}

// eachFlag iterates the set flags of f in ascending bit order.
func eachFlag[F ~uint32](f F) iter.Seq[F] {
	return func(yield func(F) bool) {
		bs := bitset.From([]uint64{uint64(f)})
		for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
			if !yield(F(1) << i) {
				return
			}
		}
	}
}
