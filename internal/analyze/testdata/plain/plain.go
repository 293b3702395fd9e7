// Package plain has no marked types.
package plain

// Size is not generated.
type Size int

const (
	Small Size = iota
	Large
)
