package gen

import (
	"text/template"

	"enum-generator/internal/model"
)

type extensionsData struct {
	Package  string
	EnumName string
	Type     string
	Kind     string
	Signed   bool
	Flags    bool
	ErrValue string

	TryUnderlying  string
	Underlying     string
	TryLabel       string
	Label          string
	TryDescription string
	Description    string
	IsFlagSet      string

	Distinct  []memberData
	Labeled   []memberData
	Described []memberData

	HasLabel       bool
	HasDescription bool
}

func buildExtensionsData(e *model.Enum) *extensionsData {
	pub, stem := e.Public(), e.Stem()
	distinct := membersData(e.DistinctMembers(), "")

	return &extensionsData{
		Package:  e.Package(),
		EnumName: e.Name(),
		Type:     e.Name(),
		Kind:     e.Kind().String(),
		Signed:   e.Kind().IsSigned(),
		Flags:    e.Flags(),
		ErrValue: ident(pub, "ErrInvalid", stem, "Value"),

		TryUnderlying:  ident(pub, "TryUnderlyingValue"),
		Underlying:     ident(pub, "UnderlyingValue"),
		TryLabel:       ident(pub, "TryLabel"),
		Label:          ident(pub, "Label"),
		TryDescription: ident(pub, "TryDescription"),
		Description:    ident(pub, "Description"),
		IsFlagSet:      ident(pub, "IsFlagSet"),

		Distinct:  distinct,
		Labeled:   labeled(distinct),
		Described: described(distinct),

		HasLabel:       e.HasLabel(),
		HasDescription: e.HasDescription(),
	}
}

var extensionsTemplate = template.Must(template.New("extensions").Parse(`package {{.Package}}

import (
	"errors"
	"fmt"
	"strconv"
)

// {{.ErrValue}} is returned when a {{.EnumName}} value matches no declared member.
var {{.ErrValue}} = errors.New("{{.EnumName}}: value out of range")

// String returns the declared name of v, or its decimal value when v matches
// no member.
func (v {{.Type}}) String() string {
{{- if .Distinct}}
	switch v {
{{- range .Distinct}}
	case {{.Ref}}:
		return {{.Text}}
{{- end}}
	}
{{- end}}
{{if .Signed}}
	return strconv.FormatInt(int64(v), 10)
{{- else}}
	return strconv.FormatUint(uint64(v), 10)
{{- end}}
}

// {{.TryUnderlying}} returns the underlying value of v if v is a declared member.
func (v {{.Type}}) {{.TryUnderlying}}() ({{.Kind}}, bool) {
{{- if .Distinct}}
	switch v {
	case {{range $i, $m := .Distinct}}{{if $i}}, {{end}}{{$m.Ref}}{{end}}:
		return {{.Kind}}(v), true
	}
{{- end}}

	return 0, false
}

// {{.Underlying}} is like {{.TryUnderlying}} but fails with {{.ErrValue}}.
func (v {{.Type}}) {{.Underlying}}() ({{.Kind}}, error) {
	u, ok := v.{{.TryUnderlying}}()
	if !ok {
		return 0, fmt.Errorf("invalid {{.EnumName}} value %d: %w", v, {{.ErrValue}})
	}

	return u, nil
}
{{- if .HasLabel}}

// {{.TryLabel}} returns the label declared for v.
func (v {{.Type}}) {{.TryLabel}}() (string, bool) {
	switch v {
{{- range .Labeled}}
	case {{.Ref}}:
		return {{.Label}}, true
{{- end}}
	}

	return "", false
}

// {{.Label}} is like {{.TryLabel}} but fails with {{.ErrValue}}.
func (v {{.Type}}) {{.Label}}() (string, error) {
	s, ok := v.{{.TryLabel}}()
	if !ok {
		return "", fmt.Errorf("no label for {{.EnumName}} value %d: %w", v, {{.ErrValue}})
	}

	return s, nil
}
{{- end}}
{{- if .HasDescription}}

// {{.TryDescription}} returns the description declared for v.
func (v {{.Type}}) {{.TryDescription}}() (string, bool) {
	switch v {
{{- range .Described}}
	case {{.Ref}}:
		return {{.Description}}, true
{{- end}}
	}

	return "", false
}

// {{.Description}} is like {{.TryDescription}} but fails with {{.ErrValue}}.
func (v {{.Type}}) {{.Description}}() (string, error) {
	s, ok := v.{{.TryDescription}}()
	if !ok {
		return "", fmt.Errorf("no description for {{.EnumName}} value %d: %w", v, {{.ErrValue}})
	}

	return s, nil
}
{{- end}}
{{- if .Flags}}

// {{.IsFlagSet}} reports whether every bit of flag is set in v.
func (v {{.Type}}) {{.IsFlagSet}}(flag {{.Type}}) bool {
	return v&flag == flag
}
{{- end}}
`))
