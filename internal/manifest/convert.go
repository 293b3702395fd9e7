package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/multierr"

	"enum-generator/internal/match"
	"enum-generator/internal/model"
)

// SupportedVersion is the default manifest schema version.
const SupportedVersion = "1"

// supportedVersions constrains the schema versions understood by Enums.
var supportedVersions = mustConstraint("1.x")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}

	return constraint
}

// maxSuggestDistance bounds the edit distance of "did you mean" hints.
const maxSuggestDistance = 2

// Enums validates the manifest and builds the enum models in declaration
// order. All problems are reported together.
func (f *File) Enums() ([]*model.Enum, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	var (
		enums []*model.Enum
		errs  error
	)

	seen := map[string]bool{}

	for i := range f.Enums {
		decl := &f.Enums[i]
		if seen[decl.Name] {
			errs = multierr.Append(errs, fmt.Errorf("enums[%d]: duplicate enum %s", i, decl.Name))
			continue
		}

		seen[decl.Name] = true

		e, err := f.buildEnum(decl)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("enums[%d] %s: %w", i, decl.Name, err))
			continue
		}

		enums = append(enums, e)
	}

	if errs != nil {
		return nil, errs
	}

	return enums, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid manifest version %q: %w", version, err)
	}

	if !supportedVersions.Check(v) {
		return fmt.Errorf("unsupported manifest version %q (want %s)", version, supportedVersions)
	}

	return nil
}

func (f *File) buildEnum(decl *Enum) (*model.Enum, error) {
	kind, err := model.ParseKind(decl.Underlying)
	if err != nil {
		return nil, withSuggestion(err, decl.Underlying, model.KindNames())
	}

	transform, err := parseTransform(decl.Transform)
	if err != nil {
		return nil, err
	}

	spec := model.Spec{
		Name:      decl.Name,
		FullName:  decl.FullName,
		Namespace: f.ImportPath,
		Package:   f.Package,
		Public:    decl.Public == nil || *decl.Public,
		Flags:     decl.Flags,
		Kind:      kind,
		Transform: transform,
		Options: model.Options{
			NameOverride:       decl.Options.Name,
			PackageOverride:    decl.Options.Package,
			ImportPathOverride: decl.Options.ImportPath,
		},
	}

	var next model.Value

	for j, m := range decl.Members {
		ms, err := buildMember(kind, m, next, j)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", m.Name, err)
		}

		spec.Members = append(spec.Members, ms)

		next, err = successor(ms.Value)
		if err != nil && j+1 < len(decl.Members) && decl.Members[j+1].Value == nil {
			return nil, fmt.Errorf("member %s: %w", decl.Members[j+1].Name, err)
		}
	}

	return model.New(spec)
}

func buildMember(kind model.Kind, m Member, next model.Value, index int) (model.MemberSpec, error) {
	ms := model.MemberSpec{
		Name:        m.Name,
		Label:       m.Label,
		Description: m.Description,
		Omit:        m.Omit,
	}

	switch {
	case m.Value != nil:
		v, err := model.ParseValue(kind, m.Value.Text)
		if err != nil {
			return ms, fmt.Errorf("line %d: %w", m.Value.Line, err)
		}

		ms.Value = v
	case index == 0:
		ms.Value = zero(kind)
	default:
		ms.Value = next
	}

	t, err := parseTransform(m.Transform)
	if err != nil {
		return ms, err
	}

	ms.Transform = t

	return ms, nil
}

// successor returns v+1, failing when the kind overflows.
func successor(v model.Value) (model.Value, error) {
	kind := v.Kind()

	if kind.IsSigned() {
		n := v.Int64() + 1
		next, err := model.ParseValue(kind, strconv.FormatInt(n, 10))
		if err != nil || n < v.Int64() {
			return model.Value{}, fmt.Errorf("auto-numbered value after %s overflows %s", v, kind)
		}

		return next, nil
	}

	n := v.Bits() + 1
	next, err := model.ParseValue(kind, strconv.FormatUint(n, 10))
	if err != nil || n == 0 {
		return model.Value{}, fmt.Errorf("auto-numbered value after %s overflows %s", v, kind)
	}

	return next, nil
}

func zero(kind model.Kind) model.Value {
	if kind.IsSigned() {
		return model.SignedValue(kind, 0)
	}

	return model.UnsignedValue(kind, 0)
}

func parseTransform(s string) (model.Transform, error) {
	t, err := model.ParseTransform(s)
	if err != nil && !strings.HasPrefix(strings.TrimSpace(s), "pattern:") {
		return t, withSuggestion(err, s, []string{"none", "upper", "lower", "snake", "kebab"})
	}

	return t, err
}

func withSuggestion(err error, name string, candidates []string) error {
	if s := match.Suggest(name, candidates, maxSuggestDistance); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}

	return err
}
