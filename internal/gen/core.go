package gen

import (
	"fmt"
	"text/template"

	"enum-generator/internal/bitmask"
	"enum-generator/internal/model"
)

// definedMode selects the body of the generated IsDefined function.
type definedMode int

const (
	definedNever  definedMode = iota // no members
	definedZero                      // flags enum whose members are all zero
	definedMask                      // flags enum: mask containment
	definedSwitch                    // exact value match
)

type coreData struct {
	Package  string
	Imports  []importSpec
	EnumName string
	Type     string
	Kind     string
	Format   string

	MemberCount string
	IsFlagEnum  string
	Count       int
	Flags       bool
	ErrText     string

	Names           string
	NamesCache      string
	Values          string
	ValuesCache     string
	Underlying      string
	UnderlyingCache string

	TryParse  string
	Parse     string
	IsDefined string

	Listed    []memberData
	Members   []memberData
	Labeled   []memberData
	Described []memberData
	Distinct  []memberData

	DefinedMode definedMode
	Mask        string

	HasLabel          bool
	HasDescription    bool
	TextType          string
	Labels            string
	LabelsCache       string
	Descriptions      string
	DescriptionsCache string
}

func (d *coreData) DefinedNever() bool { return d.DefinedMode == definedNever }
func (d *coreData) DefinedZero() bool  { return d.DefinedMode == definedZero }
func (d *coreData) DefinedMask() bool  { return d.DefinedMode == definedMask }

func buildCoreData(e *model.Enum) (*coreData, error) {
	qual := qualifier(e)
	if e.SplitCore() {
		if err := checkReachable(e); err != nil {
			return nil, err
		}
	}

	pub, stem := e.Public(), e.Stem()
	members := membersData(e.Members(), qual)

	d := &coreData{
		Package:  e.CorePackage(),
		Imports:  enumImport(e),
		EnumName: e.Name(),
		Type:     qual + e.Name(),
		Kind:     e.Kind().String(),
		Format:   formatTypeName(e),

		MemberCount: ident(pub, stem, "MemberCount"),
		IsFlagEnum:  ident(pub, stem, "IsFlagEnum"),
		Count:       e.Len(),
		Flags:       e.Flags(),
		ErrText:     ident(pub, "ErrInvalid", stem, "Text"),

		Names:           ident(pub, stem, "Names"),
		NamesCache:      ident(false, stem, "NamesCache"),
		Values:          ident(pub, stem, "Values"),
		ValuesCache:     ident(false, stem, "ValuesCache"),
		Underlying:      ident(pub, stem, "UnderlyingValues"),
		UnderlyingCache: ident(false, stem, "UnderlyingValuesCache"),

		TryParse:  ident(pub, "TryParse", stem),
		Parse:     ident(pub, "Parse", stem),
		IsDefined: ident(pub, "Is", stem, "Defined"),

		Listed:    membersData(e.ListedMembers(), qual),
		Members:   members,
		Labeled:   labeled(members),
		Described: described(members),
		Distinct:  membersData(e.DistinctMembers(), qual),

		HasLabel:          e.HasLabel(),
		HasDescription:    e.HasDescription(),
		TextType:          ident(pub, stem, "Text"),
		Labels:            ident(pub, stem, "Labels"),
		LabelsCache:       ident(false, stem, "LabelsCache"),
		Descriptions:      ident(pub, stem, "Descriptions"),
		DescriptionsCache: ident(false, stem, "DescriptionsCache"),
	}

	switch {
	case e.Len() == 0:
		d.DefinedMode = definedNever
	case e.Flags():
		mask, err := bitmask.Analyze(e)
		if err != nil {
			return nil, err
		}

		if mask.Empty() {
			d.DefinedMode = definedZero
		} else {
			d.DefinedMode, d.Mask = definedMask, mask.Binary()
		}
	default:
		d.DefinedMode = definedSwitch
	}

	return d, nil
}

// checkReachable verifies that a core artifact placed in another package can
// reference the enum type and every member constant.
func checkReachable(e *model.Enum) error {
	if !exported(e.Name()) {
		return fmt.Errorf("enum type %s is unexported and cannot be referenced from package %s",
			e.Name(), e.CorePackage())
	}

	for _, m := range e.Members() {
		if !exported(m.Name()) {
			return fmt.Errorf("member %s of %s is unexported and cannot be referenced from package %s",
				m.Name(), e.Name(), e.CorePackage())
		}
	}

	return nil
}

var coreTemplate = template.Must(template.New("core").Parse(`package {{.Package}}

import (
	"errors"
	"fmt"
	"sync/atomic"
{{- if .Imports}}
{{range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- end}}
)

const (
	// {{.MemberCount}} is the number of declared {{.EnumName}} members.
	{{.MemberCount}} = {{.Count}}
	// {{.IsFlagEnum}} reports whether {{.EnumName}} members are combined as bit flags.
	{{.IsFlagEnum}} = {{.Flags}}
)

// {{.ErrText}} is returned by {{.Parse}} when no member matches the text.
var {{.ErrText}} = errors.New("{{.EnumName}}: text out of range")

var (
	{{.NamesCache}} atomic.Pointer[[]string]
	{{.ValuesCache}} atomic.Pointer[[]{{.Type}}]
	{{.UnderlyingCache}} atomic.Pointer[[]{{.Kind}}]
)

// {{.Names}} returns the member names in declaration order.
// The returned slice is shared and must not be modified.
func {{.Names}}() []string {
	if p := {{.NamesCache}}.Load(); p != nil {
		return *p
	}

	s := []string{
{{- range .Listed}}
		{{.Text}},
{{- end}}
	}
	{{.NamesCache}}.Store(&s)

	return s
}

// {{.Values}} returns the members in declaration order.
// The returned slice is shared and must not be modified.
func {{.Values}}() []{{.Type}} {
	if p := {{.ValuesCache}}.Load(); p != nil {
		return *p
	}

	s := []{{.Type}}{
{{- range .Listed}}
		{{.Ref}},
{{- end}}
	}
	{{.ValuesCache}}.Store(&s)

	return s
}

// {{.Underlying}} returns the underlying member values in declaration order.
// The returned slice is shared and must not be modified.
func {{.Underlying}}() []{{.Kind}} {
	if p := {{.UnderlyingCache}}.Load(); p != nil {
		return *p
	}

	s := []{{.Kind}}{
{{- range .Listed}}
		{{.Literal}},
{{- end}}
	}
	{{.UnderlyingCache}}.Store(&s)

	return s
}

// {{.TryParse}} resolves text to a member, trying the strategies enabled in
// format in the order name, value{{if .HasLabel}}, label{{end}}{{if .HasDescription}}, description{{end}}.
// Within a strategy the first declared member wins.
// A nil equal compares exactly; pass strings.EqualFold to ignore case.
func {{.TryParse}}(text string, format {{.Format}}, equal func(a, b string) bool) ({{.Type}}, bool) {
	if equal == nil {
		equal = func(a, b string) bool { return a == b }
	}

	if format&{{.Format}}Name != 0 {
{{- range .Members}}
		if equal(text, {{.Text}}) {
			return {{.Ref}}, true
		}
{{- end}}
	}

	if format&{{.Format}}Value != 0 {
{{- range .Members}}
		if equal(text, {{.ValueText}}) {
			return {{.Ref}}, true
		}
{{- end}}
	}
{{- if .HasLabel}}

	if format&{{.Format}}Label != 0 {
{{- range .Labeled}}
		if equal(text, {{.Label}}) {
			return {{.Ref}}, true
		}
{{- end}}
	}
{{- end}}
{{- if .HasDescription}}

	if format&{{.Format}}Description != 0 {
{{- range .Described}}
		if equal(text, {{.Description}}) {
			return {{.Ref}}, true
		}
{{- end}}
	}
{{- end}}

	return 0, false
}

// {{.Parse}} is like {{.TryParse}} but fails with {{.ErrText}} when nothing matches.
func {{.Parse}}(text string, format {{.Format}}, equal func(a, b string) bool) ({{.Type}}, error) {
	v, ok := {{.TryParse}}(text, format, equal)
	if !ok {
		return 0, fmt.Errorf("invalid {{.EnumName}} %q: %w", text, {{.ErrText}})
	}

	return v, nil
}

// {{.IsDefined}} reports whether v is
{{- if .Flags}} a combination of declared {{.EnumName}} flags.{{else}} a declared {{.EnumName}} value.{{end}}
func {{.IsDefined}}(v {{.Type}}) bool {
{{- if .DefinedNever}}
	return false
{{- else if .DefinedZero}}
	return v == 0
{{- else if .DefinedMask}}
	return v&{{.Mask}} == v
{{- else}}
	switch v {
	case {{range $i, $m := .Distinct}}{{if $i}}, {{end}}{{$m.Ref}}{{end}}:
		return true
	}

	return false
{{- end}}
}
{{- if or .HasLabel .HasDescription}}

// {{.TextType}} pairs a {{.EnumName}} member with a piece of text.
type {{.TextType}} struct {
	Value {{.Type}}
	Text  string
}
{{- end}}
{{- if .HasLabel}}

var {{.LabelsCache}} atomic.Pointer[[]{{.TextType}}]

// {{.Labels}} returns the members that declare a label, in declaration order.
// The returned slice is shared and must not be modified.
func {{.Labels}}() []{{.TextType}} {
	if p := {{.LabelsCache}}.Load(); p != nil {
		return *p
	}

	s := []{{.TextType}}{
{{- range .Labeled}}
		{Value: {{.Ref}}, Text: {{.Label}}},
{{- end}}
	}
	{{.LabelsCache}}.Store(&s)

	return s
}
{{- end}}
{{- if .HasDescription}}

var {{.DescriptionsCache}} atomic.Pointer[[]{{.TextType}}]

// {{.Descriptions}} returns the members that declare a description, in declaration order.
// The returned slice is shared and must not be modified.
func {{.Descriptions}}() []{{.TextType}} {
	if p := {{.DescriptionsCache}}.Load(); p != nil {
		return *p
	}

	s := []{{.TextType}}{
{{- range .Described}}
		{Value: {{.Ref}}, Text: {{.Description}}},
{{- end}}
	}
	{{.DescriptionsCache}}.Store(&s)

	return s
}
{{- end}}
`))
