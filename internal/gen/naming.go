package gen

import (
	"go/token"
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"enum-generator/internal/match"
	"enum-generator/internal/model"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// memberData is the per-member view shared by the templates.
type memberData struct {
	// Ref is the member constant as written in the artifact, e.g. "First" or "code.First".
	Ref string
	// Text, ValueText, Label and Description are quoted Go string literals.
	Text        string
	ValueText   string
	Literal     string
	Label       string
	Description string
}

// ident joins parts into an identifier, exported when public is true.
func ident(public bool, parts ...string) string {
	s := strings.Join(parts, "")
	if public {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

// qualifier returns the prefix used to reference identifiers of the enum's
// package from the core package.
func qualifier(e *model.Enum) string {
	if !e.SplitCore() {
		return ""
	}

	return e.Package() + "."
}

// enumImport returns the import of the enum's package needed by split core
// artifacts, or nil.
func enumImport(e *model.Enum) []importSpec {
	if !e.SplitCore() {
		return nil
	}

	spec := importSpec{Path: e.Namespace()}
	if path.Base(e.Namespace()) != e.Package() {
		spec.Alias = e.Package()
	}

	return []importSpec{spec}
}

func newMemberData(m model.Member, qual string) memberData {
	d := memberData{
		Ref:       qual + m.Name(),
		Text:      strconv.Quote(m.Text()),
		ValueText: strconv.Quote(m.Value().Literal()),
		Literal:   m.Value().Literal(),
	}

	if label, ok := m.Label(); ok {
		d.Label = strconv.Quote(label)
	}

	if desc, ok := m.Description(); ok {
		d.Description = strconv.Quote(desc)
	}

	return d
}

func membersData(members []model.Member, qual string) []memberData {
	out := make([]memberData, 0, len(members))
	for _, m := range members {
		out = append(out, newMemberData(m, qual))
	}

	return out
}

// labeled keeps only members with a label.
func labeled(members []memberData) []memberData {
	var out []memberData

	for _, m := range members {
		if m.Label != "" {
			out = append(out, m)
		}
	}

	return out
}

// described keeps only members with a description.
func described(members []memberData) []memberData {
	var out []memberData

	for _, m := range members {
		if m.Description != "" {
			out = append(out, m)
		}
	}

	return out
}

// fileStem returns the snake_case base name used for an enum's files.
func fileStem(e *model.Enum) string {
	words := match.Words(e.Name())
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "_")
}

// exported reports whether name can be referenced from another package.
func exported(name string) bool {
	return token.IsExported(name)
}
