package manifest

import (
	"fmt"

	"enum-generator/internal/model"
)

// FromEnums describes enums as a manifest. Parsing the result with Enums
// yields the same models. All enums must come from one package.
func FromEnums(enums []*model.Enum) (*File, error) {
	f := &File{Version: SupportedVersion}

	for i, e := range enums {
		if i == 0 {
			f.Package, f.ImportPath = e.Package(), e.Namespace()
		} else if e.Package() != f.Package || e.Namespace() != f.ImportPath {
			return nil, fmt.Errorf("enum %s belongs to package %s, but the manifest describes %s",
				e.FullyQualifiedName(), e.Package(), f.Package)
		}

		f.Enums = append(f.Enums, fromEnum(e))
	}

	return f, nil
}

func fromEnum(e *model.Enum) Enum {
	public := e.Public()
	o := e.Options()

	decl := Enum{
		Name:       e.Name(),
		Underlying: e.Kind().String(),
		Flags:      e.Flags(),
		Public:     &public,
		Options: Options{
			Name:       o.NameOverride,
			Package:    o.PackageOverride,
			ImportPath: o.ImportPathOverride,
		},
		Members: make([]Member, 0, e.Len()),
	}

	if e.FullName() != e.Name() {
		decl.FullName = e.FullName()
	}

	if t := e.Transform(); !t.IsZero() {
		decl.Transform = t.String()
	}

	for _, m := range e.Members() {
		member := Member{
			Name:  m.Name(),
			Value: &Literal{Text: m.Value().Literal()},
			Omit:  m.Omit(),
		}

		if label, ok := m.Label(); ok {
			member.Label = &label
		}

		if desc, ok := m.Description(); ok {
			member.Description = &desc
		}

		// Only the member's own transform; the enum's is inherited on load.
		if t := m.Transform(); !t.IsZero() {
			member.Transform = t.String()
		}

		decl.Members = append(decl.Members, member)
	}

	return decl
}
