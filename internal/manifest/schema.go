package manifest

// File is the top-level manifest structure.
type File struct {
	// Version of the manifest schema.
	Version string `yaml:"version"`
	// Package is the Go package name the enums are declared in.
	Package string `yaml:"package"`
	// ImportPath of the package. Optional unless an enum moves its core
	// artifacts to another package.
	ImportPath string `yaml:"import_path,omitempty"`
	// Enums lists the enumerations to generate.
	Enums []Enum `yaml:"enums"`
}

// Enum is one enum declaration.
type Enum struct {
	Name string `yaml:"name"`
	// FullName is the display name used in diagnostics. Defaults to Name.
	FullName   string   `yaml:"full_name,omitempty"`
	Underlying string   `yaml:"underlying,omitempty"`
	Flags      bool     `yaml:"flags,omitempty"`
	Public     *bool    `yaml:"public,omitempty"`
	Transform  string   `yaml:"transform,omitempty"`
	Options    Options  `yaml:"options,omitempty"`
	Members    []Member `yaml:"members"`
}

// Options overrides the generated surface.
type Options struct {
	// Name replaces the enum name as identifier stem.
	Name string `yaml:"name,omitempty"`
	// Package and ImportPath move the Format and Core artifacts.
	Package    string `yaml:"package,omitempty"`
	ImportPath string `yaml:"import_path,omitempty"`
}

// Member is one enum member.
type Member struct {
	Name string `yaml:"name"`
	// Value is nil when the member is auto-numbered.
	Value       *Literal `yaml:"value,omitempty"`
	Label       *string  `yaml:"label,omitempty"`
	Description *string  `yaml:"description,omitempty"`
	Omit        bool     `yaml:"omit,omitempty"`
	Transform   string   `yaml:"transform,omitempty"`
}

// Literal is an integer written either as a YAML number or as a string such
// as "0x10" or "-3". Text keeps the original spelling.
type Literal struct {
	Text string
	Line int
}
