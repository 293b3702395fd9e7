// Package model defines the immutable metadata model consumed by the
// synthesizers: one Enum per enumeration and its ordered Members.
//
// Key types:
//   - Kind: underlying integer type (int8..uint64)
//   - Value: member literal stored as a raw 64-bit pattern
//   - Transform: generation-time casing of member names
//   - Enum / Member: validated, read-only view built by New
//
// Front ends fill a Spec and call New. Nothing in the model is mutated after
// construction; capability flags such as HasLabel are derived from members.
package model
