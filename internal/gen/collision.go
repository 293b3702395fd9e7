package gen

import (
	"fmt"
	"slices"

	"enum-generator/internal/model"
)

// shadowing lists the identifiers each template declares in a scope where
// member constants are referenced, imports included. Locals such as s and ok
// are absent because no member is referenced where they are visible.
var shadowing = map[ArtifactKind][]string{
	ArtifactCore:       {"errors", "fmt", "atomic", "text", "format", "equal", "v"},
	ArtifactExtensions: {"errors", "fmt", "strconv", "v"},
}

// declarer is implemented by template data that declares package-level names.
type declarer interface {
	declared() []string
}

// checkCollisions rejects e when an identifier of the enum's package that the
// kind artifact references is shadowed by, or redeclared in, that artifact.
func checkCollisions(e *model.Enum, kind ArtifactKind, declared []string) error {
	reserved := slices.Concat(shadowing[kind], declared)

	if kind != ArtifactExtensions && e.SplitCore() {
		// Only the import of the enum's package is exposed.
		if kind == ArtifactCore && slices.Contains(reserved, e.Package()) {
			return fmt.Errorf("%w: package name %s of %s collides with an identifier of the generated %s code",
				model.ErrInvalid, e.Package(), e.Name(), kind)
		}

		return nil
	}

	if slices.Contains(reserved, e.Name()) {
		return fmt.Errorf("%w: enum type %s collides with an identifier of the generated %s code",
			model.ErrInvalid, e.Name(), kind)
	}

	for _, m := range e.Members() {
		if slices.Contains(reserved, m.Name()) {
			return fmt.Errorf("%w: member %s of %s collides with an identifier of the generated %s code",
				model.ErrInvalid, m.Name(), e.Name(), kind)
		}
	}

	return nil
}

func (d *formatData) declared() []string {
	names := []string{d.Type, d.Type + "None", d.Type + "Name", d.Type + "Value", d.Type + "Default"}
	if d.HasLabel {
		names = append(names, d.Type+"Label")
	}

	if d.HasDescription {
		names = append(names, d.Type+"Description")
	}

	return names
}

func (d *coreData) declared() []string {
	names := []string{
		d.MemberCount, d.IsFlagEnum, d.ErrText,
		d.Names, d.NamesCache, d.Values, d.ValuesCache, d.Underlying, d.UnderlyingCache,
		d.TryParse, d.Parse, d.IsDefined,
	}

	if d.HasLabel || d.HasDescription {
		names = append(names, d.TextType)
	}

	if d.HasLabel {
		names = append(names, d.Labels, d.LabelsCache)
	}

	if d.HasDescription {
		names = append(names, d.Descriptions, d.DescriptionsCache)
	}

	return names
}

func (d *extensionsData) declared() []string {
	return []string{d.ErrValue}
}
