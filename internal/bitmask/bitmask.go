package bitmask

import (
	"errors"
	"fmt"
	"strconv"

	"enum-generator/internal/model"
)

// ErrNotFlags is returned when a mask is requested for a non-flags enum.
var ErrNotFlags = errors.New("enum is not flags-style")

// Mask is the combined membership mask of a flags enum.
type Mask struct {
	// Combined is the OR of every member's bit pattern.
	Combined uint64
	// Kind is the underlying kind of the enum the mask was built for.
	Kind model.Kind
}

// Analyze builds the combined mask of a flags enum.
func Analyze(e *model.Enum) (Mask, error) {
	if !e.Flags() {
		return Mask{}, fmt.Errorf("%s: %w", e.FullName(), ErrNotFlags)
	}

	if e.Kind().Bits() > 64 {
		return Mask{}, fmt.Errorf("%s: underlying type %s is wider than 64 bits", e.FullName(), e.Kind())
	}

	m := Mask{Kind: e.Kind()}
	for _, member := range e.Members() {
		m.Combined |= member.Value().Bits()
	}

	return m, nil
}

// Empty reports whether no member sets any bit.
func (m Mask) Empty() bool {
	return m.Combined == 0
}

// Contains reports whether every bit of v is declared by some member.
func (m Mask) Contains(v uint64) bool {
	if m.Combined == 0 {
		return v == 0
	}

	return v&m.Combined == v
}

// Binary renders the mask as a Go binary literal, e.g. "0b100001011".
func (m Mask) Binary() string {
	return "0b" + strconv.FormatUint(m.Combined, 2)
}

// IsFlagSet reports whether every bit of flag is also set in value.
func IsFlagSet(value, flag uint64) bool {
	return value&flag == flag
}
