package model

import (
	"fmt"
	"strings"
)

// Kind is the underlying integer type of an enumeration.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindInt:    "int",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint:   "uint",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
}

// kindAliases maps predeclared aliases onto their canonical kind.
var kindAliases = map[string]Kind{
	"byte": KindUint8,
	"rune": KindInt32,
}

// KindNames returns the canonical names of all supported kinds.
func KindNames() []string {
	names := make([]string, 0, KindTotal-1)
	for k := KindInt; int(k) < KindTotal; k++ {
		names = append(names, kindNames[k])
	}

	return names
}

// ParseKind resolves a Go integer type name. Types wider than 64 bits and
// non-integer types are rejected.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}

	for k := KindInt; int(k) < KindTotal; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: unsupported underlying type %q", ErrInvalid, name)
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if k <= 0 || int(k) >= KindTotal {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

// Bits returns the width of the kind. int and uint are generated for 64-bit
// targets, so they report 64.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt, KindUint, KindInt64, KindUint64:
		return 64
	}
}
