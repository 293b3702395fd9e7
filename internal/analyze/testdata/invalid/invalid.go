// Package invalid declares a flags enum with a negative member.
package invalid

//enumgen:generate
//enumgen:flags
type Bits int8

const (
	Low  Bits = 1
	Sign Bits = -128
)
