package gen

import (
	"text/template"

	"enum-generator/internal/model"
)

// Matching strategy bits. They are persisted by callers, so the values are fixed.
const (
	formatNone        = 0
	formatName        = 1
	formatValue       = 2
	formatLabel       = 4
	formatDescription = 8
)

type formatData struct {
	Package        string
	Type           string
	EnumName       string
	HasLabel       bool
	HasDescription bool
	None           int
	Name           int
	Value          int
	Label          int
	Description    int
}

func buildFormatData(e *model.Enum) *formatData {
	return &formatData{
		Package:        e.CorePackage(),
		Type:           formatTypeName(e),
		EnumName:       e.Name(),
		HasLabel:       e.HasLabel(),
		HasDescription: e.HasDescription(),
		None:           formatNone,
		Name:           formatName,
		Value:          formatValue,
		Label:          formatLabel,
		Description:    formatDescription,
	}
}

// formatTypeName returns the name of the generated flag type, e.g. "ColorFormat".
func formatTypeName(e *model.Enum) string {
	return ident(e.Public(), e.Stem(), "Format")
}

var formatTemplate = template.Must(template.New("format").Parse(`package {{.Package}}

// {{.Type}} selects the strategies used to match text against {{.EnumName}} members.
type {{.Type}} uint8

const (
	{{.Type}}None {{.Type}} = {{.None}}
	{{.Type}}Name {{.Type}} = {{.Name}}
	{{.Type}}Value {{.Type}} = {{.Value}}
{{- if .HasLabel}}
	{{.Type}}Label {{.Type}} = {{.Label}}
{{- end}}
{{- if .HasDescription}}
	{{.Type}}Description {{.Type}} = {{.Description}}
{{- end}}
	{{.Type}}Default = {{.Type}}Name | {{.Type}}Value
)

// Has reports whether every strategy of flag is enabled in f.
func (f {{.Type}}) Has(flag {{.Type}}) bool {
	return f&flag == flag
}
`))
