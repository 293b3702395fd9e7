package match

import (
	"strings"
	"unicode"
)

// Words splits an identifier into its words, keeping the original case.
// Examples:
//   - "FirstValue" -> ["First", "Value"]
//   - "httpStatus" -> ["http", "Status"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "read_only-mode" -> ["read", "only", "mode"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words   []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// Normalize lower-cases s and strips separators, so "Read_Only" and
// "readonly" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Words(s), ""))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// lower or digit to upper: "orderID" splits before 'I'
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// end of acronym: "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(r) && unicode.IsUpper(prev) && hasNextLower
}
