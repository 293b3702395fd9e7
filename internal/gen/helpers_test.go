package gen

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"enum-generator/internal/model"
)

func ptr(s string) *string { return &s }

// importerFunc adapts a function to types.Importer.
type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// referenceSpec is the flags enum used throughout the tests:
// First=8 (labelled and described), Second=1, Third=2, Other=256.
func referenceSpec() model.Spec {
	return model.Spec{
		Name:      "TestEnum",
		Namespace: "example.com/app/code",
		Package:   "code",
		Public:    true,
		Flags:     true,
		Kind:      model.KindInt32,
		Members: []model.MemberSpec{
			{
				Name:        "First",
				Value:       model.SignedValue(model.KindInt32, 8),
				Label:       ptr("FirstDisplayName"),
				Description: ptr("FirstDescription"),
			},
			{Name: "Second", Value: model.SignedValue(model.KindInt32, 1)},
			{Name: "Third", Value: model.SignedValue(model.KindInt32, 2)},
			{Name: "Other", Value: model.SignedValue(model.KindInt32, 256)},
		},
	}
}

func mustEnum(t *testing.T, s model.Spec) *model.Enum {
	t.Helper()

	e, err := model.New(s)
	require.NoError(t, err)

	return e
}

// declaration renders the hand-written side of an enum: its type and member
// constants.
func declaration(e *model.Enum) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "package %s\n\ntype %s %s\n", e.Package(), e.Name(), e.Kind())

	if e.Len() > 0 {
		sb.WriteString("\nconst (\n")

		for _, m := range e.Members() {
			fmt.Fprintf(&sb, "\t%s %s = %s\n", m.Name(), e.Name(), m.Value().Literal())
		}

		sb.WriteString(")\n")
	}

	return sb.String()
}

// typeCheck parses and type-checks the declaration of e together with the
// generated files. Split core artifacts are checked as a second package that
// imports the first.
func typeCheck(t *testing.T, e *model.Enum, files []GeneratedFile) {
	t.Helper()

	fset := token.NewFileSet()
	std := importer.Default()
	checked := map[string]*types.Package{}

	imp := importerFunc(func(path string) (*types.Package, error) {
		if p, ok := checked[path]; ok {
			return p, nil
		}

		return std.Import(path)
	})

	parse := func(name string, src []byte) *ast.File {
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err, "parsing %s:\n%s", name, src)

		return f
	}

	check := func(path string, asts []*ast.File) {
		conf := types.Config{Importer: imp}

		pkg, err := conf.Check(path, fset, asts, nil)
		require.NoError(t, err, "type-checking %s", path)

		checked[path] = pkg
	}

	enumPath := e.Namespace()
	if enumPath == "" {
		enumPath = e.Package()
	}

	enumFiles := []*ast.File{parse("decl.go", []byte(declaration(e)))}

	var coreFiles []*ast.File

	for _, f := range files {
		a := parse(f.Filename, f.Content)
		if f.Package == e.Package() && f.Dir == "" {
			enumFiles = append(enumFiles, a)
		} else {
			coreFiles = append(coreFiles, a)
		}
	}

	check(enumPath, enumFiles)

	if len(coreFiles) > 0 {
		check(e.Options().ImportPathOverride, coreFiles)
	}
}

func contentOf(t *testing.T, files []GeneratedFile, kind ArtifactKind) string {
	t.Helper()

	for _, f := range files {
		if f.Kind == kind {
			return string(f.Content)
		}
	}

	t.Fatalf("no %s artifact", kind)

	return ""
}
