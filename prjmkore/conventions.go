package prjmkore

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Conventions control the exact formatting of resolved paths and defines.
// Conventions are treated as immutable once they are used for resolution.
type Conventions struct {
	// Root is the directory for generated projects and build outputs.
	Root string `yaml:"root" validate:"required"`
	// SourceDir is the directory source paths are relative to.
	SourceDir string `yaml:"source-dir" validate:"required"`
	// IncludeRoot is the base include directory, relative to SourceDir. The
	// directories of a [KindProfile] are relative to IncludeRoot.
	IncludeRoot string `yaml:"include-root" validate:"required"`
	// Sep is the path separator used in resolved paths.
	Sep string `yaml:"sep" validate:"required,oneof=/ \\"`

	GeneratedDir    string `yaml:"generated-dir" validate:"required"`
	IntermediateDir string `yaml:"intermediate-dir" validate:"required"`
	MswinSegment    string `yaml:"mswin-segment" validate:"required"`
	LibRoot         string `yaml:"lib-root" validate:"required"`
	BinRoot         string `yaml:"bin-root" validate:"required"`

	// RawPlatformOutput uses the platform name instead of x86/x64 in output
	// directories.
	RawPlatformOutput bool `yaml:"raw-platform-output"`
	// TrailingSep appends Sep to all resolved directories.
	TrailingSep bool `yaml:"trailing-sep"`

	DefinePrefix string `yaml:"define-prefix"`

	SDKInclude       string    `yaml:"sdk-include" validate:"required"`
	SDKLib           string    `yaml:"sdk-lib" validate:"required"`
	DisabledWarnings []string  `yaml:"disabled-warnings" validate:"dive,numeric"`
	Kinds            KindTable `yaml:"kinds"`

	// ResourceExtensions are the file extensions generators add to projects
	// as resource files.
	ResourceExtensions []string `yaml:"resource-extensions" validate:"dive,startswith=.,min=2"`
}

// DefaultConventions returns new conventions that follow the most recent layout
// of the build scripts.
func DefaultConventions() *Conventions {
	return &Conventions{
		Root:            "..",
		SourceDir:       ".",
		IncludeRoot:     "../shipyard",
		Sep:             "/",
		GeneratedDir:    "generated-projects",
		IntermediateDir: "intermediate",
		MswinSegment:    "Mswin",
		LibRoot:         "lib",
		BinRoot:         "bin",
		SDKInclude:      "$(DXSDK_DIR)/Include",
		SDKLib:          "$(DXSDK_DIR)/Lib",
		DisabledWarnings: []string{
			"4100", // unreferenced formal parameter
			"4201", // nameless struct/union
			"4530", // unwind semantics not enabled
			"4577", // noexcept with exceptions disabled
		},
		Kinds:              DefaultKinds(),
		ResourceExtensions: []string{".fx", ".hlsl"},
	}
}

// ParseConventions reads YAML data over the [DefaultConventions]. Entries of
// the kinds mapping replace the default profile of that kind.
func ParseConventions(data []byte) (*Conventions, error) {
	c := DefaultConventions()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing conventions: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadConventions(file string) (*Conventions, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading conventions: %w", err)
	}
	c, err := ParseConventions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return c, nil
}

func (c *Conventions) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: conventions: %w", ErrConfig, err)
	}
	for k := range c.Kinds {
		if !k.Valid() {
			return ConfigError{What: "project kind", Value: k.String()}
		}
	}
	return nil
}

func (c *Conventions) Clone() *Conventions {
	res := *c
	res.DisabledWarnings = slices.Clone(c.DisabledWarnings)
	res.ResourceExtensions = slices.Clone(c.ResourceExtensions)
	res.Kinds = c.Kinds.Clone()
	return &res
}

// Profile returns the profile of kind k. Valid kinds without an entry in the
// kind table have an empty profile.
func (c *Conventions) Profile(k ProjectKind) (KindProfile, error) {
	if !k.Valid() {
		return KindProfile{}, ConfigError{What: "project kind", Value: k.String()}
	}
	return c.Kinds[k], nil
}

func (c *Conventions) join(elem ...string) string {
	p := path.Join(elem...)
	if c.Sep != "/" {
		p = strings.ReplaceAll(p, "/", c.Sep)
	}
	return p
}

func (c *Conventions) dir(p string) string {
	if c.TrailingSep && !strings.HasSuffix(p, c.Sep) {
		return p + c.Sep
	}
	return p
}

func (c *Conventions) platformSegment(p Platform) string {
	if p.IsMswin() {
		return c.MswinSegment
	}
	return p.String()
}

// Arch returns the architecture name for platform p: x86 for win32, x64 for
// win64 and the platform name otherwise.
func Arch(p Platform) string {
	switch p {
	case Win32:
		return "x86"
	case Win64:
		return "x64"
	}
	return p.String()
}

// ArchSegment returns the directory segment of platform p in output
// directories.
func (c *Conventions) ArchSegment(p Platform) string {
	if c.RawPlatformOutput {
		return p.String()
	}
	return Arch(p)
}

func (c *Conventions) outputRoot(k OutputKind) string {
	if k == Exe {
		return c.BinRoot
	}
	return c.LibRoot
}

func (c *Conventions) define(d string) string { return c.DefinePrefix + d }
