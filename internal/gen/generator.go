package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"enum-generator/internal/model"
)

// ArtifactKind identifies one of the three artifacts generated per enum.
type ArtifactKind int

const (
	ArtifactFormat ArtifactKind = iota
	ArtifactCore
	ArtifactExtensions
)

// ArtifactKinds lists the artifacts in generation order.
var ArtifactKinds = []ArtifactKind{ArtifactFormat, ArtifactCore, ArtifactExtensions}

// String returns the artifact suffix, e.g. "Format".
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactFormat:
		return "Format"
	case ArtifactCore:
		return "Core"
	case ArtifactExtensions:
		return "Extensions"
	default:
		return fmt.Sprintf("ArtifactKind(%d)", int(k))
	}
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// FileSuffix is appended to every generated file name.
	FileSuffix string
	// DebugDir, when set, receives unformatted sources that go/format rejected.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FileSuffix: ".gen.go",
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Name is the stable artifact name, e.g. "example.com/app/color.Color_Core".
	Name string
	// Kind is the artifact this file holds.
	Kind ArtifactKind
	// Filename is the name of the file (e.g., "color_core.gen.go").
	Filename string
	// Package is the package clause of the file.
	Package string
	// Dir is the slash-separated directory of the file relative to the enum's
	// package directory. Empty unless the artifact moved to another package.
	Dir string
	// Content is the formatted Go source code, without provenance header.
	Content []byte
}

// Generator renders the artifacts of one enum.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate renders the three artifacts of e, in ArtifactKinds order.
func (g *Generator) Generate(e *model.Enum) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(ArtifactKinds))

	for _, kind := range ArtifactKinds {
		file, err := g.GenerateArtifact(e, kind)
		if err != nil {
			return nil, fmt.Errorf("generating %s for %s: %w", kind, e.FullName(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateArtifact renders a single artifact of e.
func (g *Generator) GenerateArtifact(e *model.Enum, kind ArtifactKind) (*GeneratedFile, error) {
	var (
		tmpl *template.Template
		data declarer
		pkg  string
	)

	switch kind {
	case ArtifactFormat:
		tmpl, pkg = formatTemplate, e.CorePackage()
		data = buildFormatData(e)
	case ArtifactCore:
		core, err := buildCoreData(e)
		if err != nil {
			return nil, err
		}

		tmpl, pkg, data = coreTemplate, e.CorePackage(), core
	case ArtifactExtensions:
		tmpl, pkg = extensionsTemplate, e.Package()
		data = buildExtensionsData(e)
	default:
		return nil, fmt.Errorf("unknown artifact kind %v", kind)
	}

	if err := checkCollisions(e, kind, data.declared()); err != nil {
		return nil, err
	}

	file := &GeneratedFile{
		Name:     e.FullyQualifiedName() + "_" + kind.String(),
		Kind:     kind,
		Filename: g.filename(e, kind),
		Package:  pkg,
	}

	if kind != ArtifactExtensions && e.SplitCore() {
		o := e.Options()
		file.Dir = coreDir(e.Namespace(), o.ImportPathOverride, o.PackageOverride)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// filename returns e.g. "test_enum_core.gen.go".
func (g *Generator) filename(e *model.Enum, kind ArtifactKind) string {
	suffix := g.config.FileSuffix
	if suffix == "" {
		suffix = ".go"
	}

	return fileStem(e) + "_" + ident(false, kind.String()) + suffix
}
