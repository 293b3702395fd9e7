package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a member's underlying integer literal.
//
// The literal is kept as a raw 64-bit pattern. Negative signed values are
// stored in two's complement, so Bits never performs a numeric conversion.
type Value struct {
	kind Kind
	bits uint64
}

// SignedValue builds a value of a signed kind.
func SignedValue(kind Kind, v int64) Value {
	return Value{kind: kind, bits: uint64(v)}
}

// UnsignedValue builds a value of an unsigned kind.
func UnsignedValue(kind Kind, v uint64) Value {
	return Value{kind: kind, bits: v}
}

// ParseValue parses an integer literal (decimal, 0x, 0o, 0b, underscores
// allowed) and checks that it fits kind.
func ParseValue(kind Kind, text string) (Value, error) {
	if !kind.IsValid() {
		return Value{}, fmt.Errorf("%w: invalid kind %v", ErrInvalid, kind)
	}

	text = strings.TrimSpace(text)

	if kind.IsSigned() {
		n, err := strconv.ParseInt(text, 0, kind.Bits())
		if err != nil {
			return Value{}, fmt.Errorf("%w: value %q does not fit %s: %w", ErrInvalid, text, kind, err)
		}

		return SignedValue(kind, n), nil
	}

	n, err := strconv.ParseUint(text, 0, kind.Bits())
	if err != nil {
		return Value{}, fmt.Errorf("%w: value %q does not fit %s: %w", ErrInvalid, text, kind, err)
	}

	return UnsignedValue(kind, n), nil
}

// Kind returns the kind the value was built for.
func (v Value) Kind() Kind {
	return v.kind
}

// Bits returns the value reinterpreted as a 64-bit unsigned pattern.
func (v Value) Bits() uint64 {
	return v.bits
}

// Int64 returns the value as a signed number. Only meaningful for signed kinds.
func (v Value) Int64() int64 {
	return int64(v.bits)
}

// IsNegative reports whether v is a negative signed literal.
func (v Value) IsNegative() bool {
	return v.kind.IsSigned() && int64(v.bits) < 0
}

// Literal renders the value as a decimal Go literal.
func (v Value) Literal() string {
	if v.kind.IsSigned() {
		return strconv.FormatInt(int64(v.bits), 10)
	}

	return strconv.FormatUint(v.bits, 10)
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Literal()
}

// fits reports whether the stored pattern is representable in kind.
func (v Value) fits(kind Kind) bool {
	bits := kind.Bits()
	if bits == 64 {
		if kind.IsSigned() == v.kind.IsSigned() {
			return true
		}

		if kind.IsSigned() {
			return v.bits <= math.MaxInt64
		}

		return !v.IsNegative()
	}

	if kind.IsSigned() {
		n := int64(v.bits)
		if !v.kind.IsSigned() && v.bits > math.MaxInt64 {
			return false
		}

		limit := int64(1) << (bits - 1)

		return n >= -limit && n < limit
	}

	if v.IsNegative() {
		return false
	}

	return v.bits < uint64(1)<<bits
}
