package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   string
		literal string
		bits    uint64
	}{
		{"decimal", KindInt32, "256", "256", 256},
		{"hex", KindUint16, "0xFF", "255", 255},
		{"binary", KindUint8, "0b101", "5", 5},
		{"underscores", KindInt64, "1_000", "1000", 1000},
		{"negative", KindInt8, "-1", "-1", math.MaxUint64},
		{"max uint64", KindUint64, "18446744073709551615", "18446744073709551615", math.MaxUint64},
		{"min int64", KindInt64, "-9223372036854775808", "-9223372036854775808", 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.kind, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.literal, v.Literal())
			assert.Equal(t, tt.bits, v.Bits())
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseValue_OutOfRange(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
	}{
		{KindInt8, "128"},
		{KindInt8, "-129"},
		{KindUint8, "256"},
		{KindUint8, "-1"},
		{KindUint32, "4294967296"},
		{KindInt32, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.input, func(t *testing.T) {
			_, err := ParseValue(tt.kind, tt.input)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValue_BitReinterpretation(t *testing.T) {
	// -2 keeps its two's-complement pattern instead of saturating to zero.
	v := SignedValue(KindInt16, -2)
	assert.Equal(t, uint64(math.MaxUint64-1), v.Bits())
	assert.True(t, v.IsNegative())
	assert.Equal(t, int64(-2), v.Int64())

	u := UnsignedValue(KindUint64, math.MaxUint64)
	assert.False(t, u.IsNegative())
	assert.Equal(t, "18446744073709551615", u.String())
}

func TestValue_Fits(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		kind     Kind
		expected bool
	}{
		{"small into int8", SignedValue(KindInt64, 127), KindInt8, true},
		{"overflow int8", SignedValue(KindInt64, 128), KindInt8, false},
		{"negative into int8", SignedValue(KindInt64, -128), KindInt8, true},
		{"negative into uint8", SignedValue(KindInt64, -1), KindUint8, false},
		{"unsigned into uint8", UnsignedValue(KindUint64, 255), KindUint8, true},
		{"big unsigned into int64", UnsignedValue(KindUint64, math.MaxUint64), KindInt64, false},
		{"max int64 into uint64", SignedValue(KindInt64, math.MaxInt64), KindUint64, true},
		{"negative into uint64", SignedValue(KindInt64, -5), KindUint64, false},
		{"huge unsigned into int16", UnsignedValue(KindUint64, 1<<63), KindInt16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.fits(tt.kind))
		})
	}
}
