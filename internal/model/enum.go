package model

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MemberSpec is the raw description of one member handed over by a front end.
type MemberSpec struct {
	// Name is the Go identifier of the member constant.
	Name  string
	Value Value
	// Label and Description are nil when the member declares none.
	Label       *string
	Description *string
	// Omit excludes the member from the generated value listings only.
	Omit      bool
	Transform Transform
}

// Options overrides defaults of the generated surface.
type Options struct {
	// NameOverride replaces the enum name as the stem of generated identifiers.
	NameOverride string
	// PackageOverride and ImportPathOverride move the Format and Core artifacts
	// into another package. Extension methods always stay with the enum.
	PackageOverride    string
	ImportPathOverride string
}

// Spec is the raw description of one enumeration.
type Spec struct {
	Name string
	// FullName defaults to Name.
	FullName string
	// Namespace is the import path of the enum's package. Optional.
	Namespace string
	// Package is the Go package name the enum is declared in.
	Package   string
	Public    bool
	Flags     bool
	Kind      Kind
	Transform Transform
	Members   []MemberSpec
	Options   Options
}

// Member is a validated enumeration member.
type Member struct {
	name        string
	text        string
	value       Value
	label       *string
	description *string
	omit        bool
	transform   Transform
}

// Enum is a validated, immutable enumeration.
type Enum struct {
	name           string
	fullName       string
	namespace      string
	pkg            string
	public         bool
	flags          bool
	kind           Kind
	transform      Transform
	members        []Member
	options        Options
	hasLabel       bool
	hasDescription bool
}

// New validates s and builds the immutable model.
func New(s Spec) (*Enum, error) {
	if !token.IsIdentifier(s.Name) {
		return nil, fmt.Errorf("%w: enum name %q is not a Go identifier", ErrInvalid, s.Name)
	}

	if !token.IsIdentifier(s.Package) {
		return nil, fmt.Errorf("%w: enum %s: package name %q is not a Go identifier", ErrInvalid, s.Name, s.Package)
	}

	if !s.Kind.IsValid() {
		return nil, fmt.Errorf("%w: enum %s: invalid underlying kind %v", ErrInvalid, s.Name, s.Kind)
	}

	if err := validateOptions(s); err != nil {
		return nil, err
	}

	e := &Enum{
		name:      s.Name,
		fullName:  s.FullName,
		namespace: s.Namespace,
		pkg:       s.Package,
		public:    s.Public,
		flags:     s.Flags,
		kind:      s.Kind,
		transform: s.Transform,
		options:   s.Options,
		members:   make([]Member, 0, len(s.Members)),
	}

	if e.fullName == "" {
		e.fullName = e.name
	}

	seen := make(map[string]struct{}, len(s.Members))

	for _, ms := range s.Members {
		m, err := newMember(s, ms)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[m.name]; dup {
			return nil, fmt.Errorf("%w: enum %s: duplicate member %s", ErrInvalid, s.Name, m.name)
		}

		seen[m.name] = struct{}{}

		e.hasLabel = e.hasLabel || m.label != nil
		e.hasDescription = e.hasDescription || m.description != nil
		e.members = append(e.members, m)
	}

	return e, nil
}

func newMember(s Spec, ms MemberSpec) (Member, error) {
	if !token.IsIdentifier(ms.Name) || ms.Name == "_" {
		return Member{}, fmt.Errorf("%w: enum %s: member name %q is not a Go identifier", ErrInvalid, s.Name, ms.Name)
	}

	if !ms.Value.Kind().IsValid() {
		return Member{}, fmt.Errorf("%w: enum %s: member %s has no value", ErrInvalid, s.Name, ms.Name)
	}

	if !ms.Value.fits(s.Kind) {
		return Member{}, fmt.Errorf("%w: enum %s: member %s value %s does not fit %s",
			ErrInvalid, s.Name, ms.Name, ms.Value, s.Kind)
	}

	value := Value{kind: s.Kind, bits: ms.Value.bits}

	// Negative flag members have no agreed bit-width policy.
	if s.Flags && value.IsNegative() {
		return Member{}, fmt.Errorf("%w: enum %s: flags member %s has negative value %s",
			ErrInvalid, s.Name, ms.Name, value)
	}

	transform := ms.Transform
	if transform.IsZero() {
		transform = s.Transform
	}

	return Member{
		name:        ms.Name,
		text:        transform.Apply(ms.Name),
		value:       value,
		label:       cloneString(ms.Label),
		description: cloneString(ms.Description),
		omit:        ms.Omit,
		transform:   ms.Transform,
	}, nil
}

func validateOptions(s Spec) error {
	o := s.Options
	if o.NameOverride != "" && !token.IsIdentifier(o.NameOverride) {
		return fmt.Errorf("%w: enum %s: name override %q is not a Go identifier", ErrInvalid, s.Name, o.NameOverride)
	}

	if o.PackageOverride == "" && o.ImportPathOverride == "" {
		return nil
	}

	if !token.IsIdentifier(o.PackageOverride) {
		return fmt.Errorf("%w: enum %s: package override %q is not a Go identifier", ErrInvalid, s.Name, o.PackageOverride)
	}

	if o.ImportPathOverride == "" {
		return fmt.Errorf("%w: enum %s: package override requires an import path", ErrInvalid, s.Name)
	}

	if s.Namespace == "" {
		return fmt.Errorf("%w: enum %s: package override requires the enum's import path", ErrInvalid, s.Name)
	}

	if o.ImportPathOverride == s.Namespace && o.PackageOverride != s.Package {
		return fmt.Errorf("%w: enum %s: package %s cannot share directory %s with package %s",
			ErrInvalid, s.Name, o.PackageOverride, s.Namespace, s.Package)
	}

	return nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}

// Name returns the member's Go identifier.
func (m Member) Name() string { return m.name }

// Text returns the literal name used in generated code, after transforms.
func (m Member) Text() string { return m.text }

// Value returns the member's underlying value.
func (m Member) Value() Value { return m.value }

// Label returns the member's label and whether it declares one.
func (m Member) Label() (string, bool) {
	if m.label == nil {
		return "", false
	}

	return *m.label, true
}

// Description returns the member's description and whether it declares one.
func (m Member) Description() (string, bool) {
	if m.description == nil {
		return "", false
	}

	return *m.description, true
}

// Omit reports whether the member is left out of the value listings.
func (m Member) Omit() bool { return m.omit }

// Transform returns the member's own transform (not the inherited one).
func (m Member) Transform() Transform { return m.transform }

// Name returns the Go type name of the enum.
func (e *Enum) Name() string { return e.name }

// FullName returns the display name, Name unless overridden.
func (e *Enum) FullName() string { return e.fullName }

// Namespace returns the import path of the enum's package, possibly empty.
func (e *Enum) Namespace() string { return e.namespace }

// Package returns the name of the package declaring the enum.
func (e *Enum) Package() string { return e.pkg }

// Public reports whether the generated identifiers are exported.
func (e *Enum) Public() bool { return e.public }

// Flags reports whether members are combined as bit flags.
func (e *Enum) Flags() bool { return e.flags }

// Kind returns the underlying integer kind.
func (e *Enum) Kind() Kind { return e.kind }

// Transform returns the transform inherited by members without their own.
func (e *Enum) Transform() Transform { return e.transform }

// Options returns the overrides of the generated surface.
func (e *Enum) Options() Options { return e.options }

// FullyQualifiedName returns the namespace-qualified full name.
func (e *Enum) FullyQualifiedName() string {
	if e.namespace == "" {
		return e.fullName
	}

	return e.namespace + "." + e.fullName
}

// HasLabel reports whether any member declares a label.
func (e *Enum) HasLabel() bool { return e.hasLabel }

// HasDescription reports whether any member declares a description.
func (e *Enum) HasDescription() bool { return e.hasDescription }

// Len returns the number of members.
func (e *Enum) Len() int { return len(e.members) }

// Members returns a copy of the members in declaration order.
func (e *Enum) Members() []Member {
	return slices.Clone(e.members)
}

// ListedMembers returns the members that appear in the value listings.
func (e *Enum) ListedMembers() []Member {
	listed := make([]Member, 0, len(e.members))
	for _, m := range e.members {
		if !m.omit {
			listed = append(listed, m)
		}
	}

	return listed
}

// DistinctMembers returns, in declaration order, the first member of every
// distinct underlying value.
func (e *Enum) DistinctMembers() []Member {
	seen := make(map[uint64]struct{}, len(e.members))
	distinct := make([]Member, 0, len(e.members))

	for _, m := range e.members {
		if _, ok := seen[m.value.bits]; ok {
			continue
		}

		seen[m.value.bits] = struct{}{}
		distinct = append(distinct, m)
	}

	return distinct
}

// Stem returns the identifier stem of the generated surface, always with an
// upper-case first letter.
func (e *Enum) Stem() string {
	stem := e.name
	if e.options.NameOverride != "" {
		stem = e.options.NameOverride
	}

	r, size := utf8.DecodeRuneInString(stem)

	return string(unicode.ToUpper(r)) + stem[size:]
}

// CorePackage returns the package name of the Format and Core artifacts.
func (e *Enum) CorePackage() string {
	if e.options.PackageOverride != "" {
		return e.options.PackageOverride
	}

	return e.pkg
}

// SplitCore reports whether the Format and Core artifacts live outside the
// enum's package and must import it.
func (e *Enum) SplitCore() bool {
	o := e.options
	if o.PackageOverride == "" {
		return false
	}

	return o.ImportPathOverride != e.namespace
}

// Spec returns a copy of the Spec e was built from.
func (e *Enum) Spec() Spec {
	s := Spec{
		Name:      e.name,
		FullName:  e.fullName,
		Namespace: e.namespace,
		Package:   e.pkg,
		Public:    e.public,
		Flags:     e.flags,
		Kind:      e.kind,
		Transform: e.transform,
		Options:   e.options,
		Members:   make([]MemberSpec, 0, len(e.members)),
	}

	for _, m := range e.members {
		s.Members = append(s.Members, MemberSpec{
			Name:        m.name,
			Value:       m.value,
			Label:       cloneString(m.label),
			Description: cloneString(m.description),
			Omit:        m.omit,
			Transform:   m.transform,
		})
	}

	return s
}

// String returns a short human-readable summary.
func (e *Enum) String() string {
	var sb strings.Builder

	sb.WriteString(e.FullyQualifiedName())
	sb.WriteString(" (")
	sb.WriteString(e.kind.String())

	if e.flags {
		sb.WriteString(", flags")
	}

	fmt.Fprintf(&sb, ", %d members)", len(e.members))

	return sb.String()
}
