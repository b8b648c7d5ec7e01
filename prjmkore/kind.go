package prjmkore

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ProjectKind selects the [KindProfile] used when resolving compile settings.
// The zero value is not a valid kind.
type ProjectKind int

const (
	System ProjectKind = iota + 1
	Math
	Graphics
	Tools
	Viewer
	Test
)

var kindNames = [...]string{"", "system", "math", "graphics", "tools", "viewer", "test"}

func ParseProjectKind(s string) (ProjectKind, error) {
	for i, n := range kindNames[1:] {
		if n == s {
			return ProjectKind(i + 1), nil
		}
	}
	return 0, ConfigError{What: "project kind", Value: s}
}

func (k ProjectKind) Valid() bool { return k >= System && k <= Test }

func (k ProjectKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k ProjectKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ConfigError{What: "project kind", Value: k.String()}
	}
	return []byte(kindNames[k]), nil
}

func (k *ProjectKind) UnmarshalText(text []byte) (err error) {
	*k, err = ParseProjectKind(string(text))
	return err
}

// KindProfile holds what a project kind adds to the compile settings. All
// directories are relative to the include root of the [Conventions]. Library
// directories, library files and copy files are only used on Windows platforms
// and only if NativeLibs is set.
type KindProfile struct {
	Defines      []string `yaml:"defines,omitempty"`
	IncludeDirs  []string `yaml:"include-dirs,omitempty"`
	NativeLibs   bool     `yaml:"native-libs,omitempty"`
	SDK          bool     `yaml:"sdk,omitempty"`
	LibraryDirs  []string `yaml:"library-dirs,omitempty"`
	LibraryFiles []string `yaml:"library-files,omitempty"`
	CopyFiles    []string `yaml:"copy-files,omitempty"`
}

func (kp KindProfile) Clone() KindProfile {
	kp.Defines = slices.Clone(kp.Defines)
	kp.IncludeDirs = slices.Clone(kp.IncludeDirs)
	kp.LibraryDirs = slices.Clone(kp.LibraryDirs)
	kp.LibraryFiles = slices.Clone(kp.LibraryFiles)
	kp.CopyFiles = slices.Clone(kp.CopyFiles)
	return kp
}

type KindTable map[ProjectKind]KindProfile

// DefaultKinds returns a new table with the profiles of all project kinds.
func DefaultKinds() KindTable {
	dxLibs := []string{
		"d3d11.lib",
		"d3dx11.lib",
		"dxgi.lib",
		"DxErr.lib",
		"dxguid.lib",
		"d3dcompiler.lib",
	}
	return KindTable{
		System: {},
		Math:   {},
		Graphics: {
			IncludeDirs:  []string{"extern"},
			NativeLibs:   true,
			SDK:          true,
			LibraryFiles: dxLibs,
		},
		Tools: {
			IncludeDirs: []string{"extern/assimp"},
			NativeLibs:  true,
			LibraryDirs: []string{"extern/assimp/bin"},
			LibraryFiles: []string{
				"assimp-vc141-mt.lib",
				"zlib.lib",
			},
			CopyFiles: []string{
				"extern/assimp/bin/assimp-vc141-mt.dll",
				"extern/assimp/bin/zlib.dll",
			},
		},
		Viewer: {
			NativeLibs:   true,
			SDK:          true,
			LibraryFiles: slices.Clone(dxLibs),
		},
		Test: {},
	}
}

func (kt KindTable) Clone() KindTable {
	res := make(KindTable, len(kt))
	for k, p := range kt {
		res[k] = p.Clone()
	}
	return res
}

// UnmarshalYAML replaces the profiles of the kinds given in the YAML mapping and
// keeps all other profiles of kt.
func (kt *KindTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: kind table must be a mapping", node.Line)
	}
	if *kt == nil {
		*kt = make(KindTable)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		kn, vn := node.Content[i], node.Content[i+1]
		kind, err := ParseProjectKind(kn.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", kn.Line, err)
		}
		var prof KindProfile
		if err := vn.Decode(&prof); err != nil {
			return err
		}
		(*kt)[kind] = prof
	}
	return nil
}

func (kt KindTable) MarshalYAML() (any, error) {
	res := make(map[string]KindProfile, len(kt))
	for k, p := range kt {
		if !k.Valid() {
			return nil, ConfigError{What: "project kind", Value: k.String()}
		}
		res[k.String()] = p
	}
	return res, nil
}
