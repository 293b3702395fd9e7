// Package match provides identifier word splitting and edit-distance based
// suggestions.
//
// Key functions:
//   - Words: splits CamelCase, snake_case and kebab-case identifiers
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known spelling for an unknown name
package match
