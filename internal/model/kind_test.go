package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"int", KindInt},
		{"int8", KindInt8},
		{"uint64", KindUint64},
		{" uint16 ", KindUint16},
		{"byte", KindUint8},
		{"rune", KindInt32},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestParseKind_Unsupported(t *testing.T) {
	for _, name := range []string{"int128", "uint128", "float64", "string", ""} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseKind(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestKind_Properties(t *testing.T) {
	t.Parallel()

	for k := KindInt; int(k) < KindTotal; k++ {
		assert.True(t, k.IsValid(), k.String())
		assert.Equal(t, strings.HasPrefix(k.String(), "int"), k.IsSigned(), k.String())
		assert.Contains(t, []int{8, 16, 32, 64}, k.Bits(), k.String())

		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.False(t, Kind(0).IsValid())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Len(t, KindNames(), KindTotal-1)
	assert.Panics(t, func() { Kind(0).Bits() })
}
