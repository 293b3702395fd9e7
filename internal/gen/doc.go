// Package gen provides deterministic Go code generation for enumerations.
//
// Generation approach uses text/template + go/format for readable,
// reflection-free Go code. One model.Enum yields three artifacts:
//   - Format: the matching-mode flag type used by the parse functions
//   - Core: cached listings, TryParse/Parse, IsDefined, label and description tables
//   - Extensions: String, underlying value, label, description and flag methods
//
// Synthesizers are pure: they read the immutable model and return text.
package gen
