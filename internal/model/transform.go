package model

import (
	"fmt"
	"strings"
	"unicode"

	"enum-generator/internal/match"
)

// TransformKind selects how a member's literal name is cased in generated code.
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformUpper
	TransformLower
	TransformSnake
	TransformKebab
	TransformPattern
)

// transformNames lists the textual form accepted by ParseTransform.
var transformNames = map[string]TransformKind{
	"none":  TransformNone,
	"upper": TransformUpper,
	"lower": TransformLower,
	"snake": TransformSnake,
	"kebab": TransformKebab,
}

const patternPrefix = "pattern:"

// Transform is applied to member names at generation time only.
type Transform struct {
	Kind TransformKind
	// Pattern is the per-rune case pattern for TransformPattern:
	// 'U' upper, 'L' lower, '_' keep. The last rune repeats.
	Pattern string
}

// TransformNames returns the accepted transform spellings.
func TransformNames() []string {
	return []string{"none", "upper", "lower", "snake", "kebab", patternPrefix + "<U|L|_...>"}
}

// ParseTransform parses "upper", "lower", "snake", "kebab", "none" or
// "pattern:<P>".
func ParseTransform(s string) (Transform, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Transform{}, nil
	}

	if rest, ok := strings.CutPrefix(s, patternPrefix); ok {
		for _, r := range rest {
			if r != 'U' && r != 'L' && r != '_' {
				return Transform{}, fmt.Errorf("%w: case pattern %q may only contain U, L and _", ErrInvalid, rest)
			}
		}

		if rest == "" {
			return Transform{}, fmt.Errorf("%w: empty case pattern", ErrInvalid)
		}

		return Transform{Kind: TransformPattern, Pattern: rest}, nil
	}

	k, ok := transformNames[strings.ToLower(s)]
	if !ok {
		return Transform{}, fmt.Errorf("%w: unknown transform %q", ErrInvalid, s)
	}

	return Transform{Kind: k}, nil
}

// IsZero reports whether the transform leaves names untouched.
func (t Transform) IsZero() bool {
	return t.Kind == TransformNone
}

// String returns the textual form accepted by ParseTransform.
func (t Transform) String() string {
	if t.Kind == TransformPattern {
		return patternPrefix + t.Pattern
	}

	for name, k := range transformNames {
		if k == t.Kind {
			return name
		}
	}

	return "none"
}

// Apply returns name with the transform applied.
func (t Transform) Apply(name string) string {
	switch t.Kind {
	case TransformUpper:
		return strings.ToUpper(name)
	case TransformLower:
		return strings.ToLower(name)
	case TransformSnake:
		return joinWords(name, "_")
	case TransformKebab:
		return joinWords(name, "-")
	case TransformPattern:
		return applyPattern(name, t.Pattern)
	default:
		return name
	}
}

func joinWords(name, sep string) string {
	words := match.Words(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, sep)
}

func applyPattern(name, pattern string) string {
	if pattern == "" {
		return name
	}

	p := []rune(pattern)

	var sb strings.Builder

	for i, r := range []rune(name) {
		c := p[len(p)-1]
		if i < len(p) {
			c = p[i]
		}

		switch c {
		case 'U':
			sb.WriteRune(unicode.ToUpper(r))
		case 'L':
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
