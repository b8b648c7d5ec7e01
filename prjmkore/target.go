package prjmkore

import (
	"fmt"
	"iter"
)

// Platform is a flag fragment of a [Target].
type Platform uint32

const (
	Win32 Platform = 1 << iota
	Win64
	Linux
	Mac
)

var platformNames = fragmentNames{
	what:  "platform",
	names: []string{"win32", "win64", "linux", "mac"},
}

func ParsePlatform(s string) (Platform, error) {
	v, err := platformNames.parse(s)
	return Platform(v), err
}

func (p Platform) String() string { return platformNames.format(uint32(p)) }
func (p Platform) Valid() bool    { return platformNames.valid(uint32(p)) }
func (p Platform) Single() bool   { return single(p) }

// IsMswin reports whether p only has Microsoft Windows platforms set.
func (p Platform) IsMswin() bool { return p != 0 && p&^(Win32|Win64) == 0 }

func (p Platform) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Platform) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePlatform(string(text))
	return err
}

// DevEnv is a flag fragment of a [Target] that selects the toolchain or IDE
// version.
type DevEnv uint32

const (
	VS2015 DevEnv = 1 << iota
	VS2017
	VS2019
)

var devEnvNames = fragmentNames{
	what:  "devenv",
	names: []string{"vs2015", "vs2017", "vs2019"},
}

func ParseDevEnv(s string) (DevEnv, error) {
	v, err := devEnvNames.parse(s)
	return DevEnv(v), err
}

func (d DevEnv) String() string { return devEnvNames.format(uint32(d)) }
func (d DevEnv) Valid() bool    { return devEnvNames.valid(uint32(d)) }
func (d DevEnv) Single() bool   { return single(d) }

func (d DevEnv) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DevEnv) UnmarshalText(text []byte) (err error) {
	*d, err = ParseDevEnv(string(text))
	return err
}

// Optimization is a flag fragment of a [Target].
type Optimization uint32

const (
	Debug Optimization = 1 << iota
	Develop
	Profile
	Master

	AllOptimizations = Debug | Develop | Profile | Master
)

var optimizationNames = fragmentNames{
	what:  "optimization",
	names: []string{"Debug", "Develop", "Profile", "Master"},
}

func ParseOptimization(s string) (Optimization, error) {
	v, err := optimizationNames.parse(s)
	return Optimization(v), err
}

func (o Optimization) String() string { return optimizationNames.format(uint32(o)) }
func (o Optimization) Valid() bool    { return optimizationNames.valid(uint32(o)) }
func (o Optimization) Single() bool   { return single(o) }

func (o Optimization) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Optimization) UnmarshalText(text []byte) (err error) {
	*o, err = ParseOptimization(string(text))
	return err
}

// OutputKind is a flag fragment of a [Target].
type OutputKind uint32

const (
	Lib OutputKind = 1 << iota
	Dll
	Exe
)

var outputKindNames = fragmentNames{
	what:  "output kind",
	names: []string{"lib", "dll", "exe"},
}

func ParseOutputKind(s string) (OutputKind, error) {
	v, err := outputKindNames.parse(s)
	return OutputKind(v), err
}

func (k OutputKind) String() string { return outputKindNames.format(uint32(k)) }
func (k OutputKind) Valid() bool    { return outputKindNames.valid(uint32(k)) }
func (k OutputKind) Single() bool   { return single(k) }

// IsLibrary reports whether k only has library kinds set.
func (k OutputKind) IsLibrary() bool { return k != 0 && k&^(Lib|Dll) == 0 }

func (k OutputKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *OutputKind) UnmarshalText(text []byte) (err error) {
	*k, err = ParseOutputKind(string(text))
	return err
}

// Target describes buildable configurations. Each fragment may have more than
// one flag set. Such a composite target is expanded into single-value targets
// with [Target.Expand] before anything is resolved.
type Target struct {
	Platform     Platform     `yaml:"platform"`
	DevEnv       DevEnv       `yaml:"devenv"`
	Optimization Optimization `yaml:"optimization"`
	Output       OutputKind   `yaml:"output"`
}

func NewTarget(p Platform, d DevEnv, o Optimization, k OutputKind) (Target, error) {
	t := Target{Platform: p, DevEnv: d, Optimization: o, Output: k}
	if err := t.Check(); err != nil {
		return Target{}, err
	}
	return t, nil
}

// Check returns an error if any fragment of t is zero or has unknown flags.
func (t Target) Check() error {
	if err := platformNames.check(uint32(t.Platform)); err != nil {
		return err
	}
	if err := devEnvNames.check(uint32(t.DevEnv)); err != nil {
		return err
	}
	if err := optimizationNames.check(uint32(t.Optimization)); err != nil {
		return err
	}
	return outputKindNames.check(uint32(t.Output))
}

// Single reports whether each fragment of t has exactly one flag set.
func (t Target) Single() bool {
	return t.Platform.Single() &&
		t.DevEnv.Single() &&
		t.Optimization.Single() &&
		t.Output.Single()
}

// Covers reports whether all flags of u are also set in t.
func (t Target) Covers(u Target) bool {
	return u.Platform&^t.Platform == 0 &&
		u.DevEnv&^t.DevEnv == 0 &&
		u.Optimization&^t.Optimization == 0 &&
		u.Output&^t.Output == 0
}

func (t Target) WithOutput(k OutputKind) Target {
	t.Output = k
	return t
}

// Count returns the number of single-value targets yielded by [Target.Expand].
func (t Target) Count() int {
	return count(t.Platform) *
		count(t.DevEnv) *
		count(t.Optimization) *
		count(t.Output)
}

// Expand yields one single-value target for each flag combination of t. The
// fragments vary in the order output, optimization, devenv, platform, i.e.
// platform is the outermost loop. The sequence can be iterated any number of
// times.
func (t Target) Expand() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for p := range eachFlag(t.Platform) {
			for d := range eachFlag(t.DevEnv) {
				for o := range eachFlag(t.Optimization) {
					for k := range eachFlag(t.Output) {
						if !yield(Target{p, d, o, k}) {
							return
						}
					}
				}
			}
		}
	}
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", t.Platform, t.DevEnv, t.Optimization, t.Output)
}
