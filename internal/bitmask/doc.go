// Package bitmask computes membership masks for flags-style enumerations.
//
// Every member value is widened to its 64-bit two's-complement pattern and
// OR-ed into a combined mask. A value is defined when all of its bits are
// covered by the mask; with an empty mask only zero is defined.
package bitmask
