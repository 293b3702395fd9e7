package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-generator/internal/diagnostic"
	"enum-generator/internal/model"
)

const colorsPkg = "enum-generator/internal/analyze/testdata/colors"

func loadColors(t *testing.T) *Result {
	t.Helper()

	res, err := NewAnalyzer("", nil).LoadPackages(context.Background(), "./testdata/colors")
	require.NoError(t, err)
	require.Len(t, res.Packages, 1)

	return res
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	res := loadColors(t)

	pkg := res.Packages[0]
	assert.Equal(t, colorsPkg, pkg.Path)
	assert.Equal(t, "colors", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	var names []string
	for _, e := range res.Enums() {
		names = append(names, e.Name())
	}

	assert.Equal(t, []string{"Color", "level", "Mode"}, names)
	assert.Same(t, pkg, res.Package(res.Enums()[0]))
}

func TestAnalyzer_FlagsEnum(t *testing.T) {
	color := loadColors(t).Enums()[0]

	assert.Equal(t, colorsPkg+".Color", color.FullyQualifiedName())
	assert.Equal(t, "colors", color.Package())
	assert.Equal(t, model.KindInt32, color.Kind())
	assert.True(t, color.Flags())
	assert.True(t, color.Public())
	assert.True(t, color.HasLabel())
	assert.True(t, color.HasDescription())

	members := color.Members()
	require.Len(t, members, 4, "blank constants are skipped")

	var values []int64
	for _, m := range members {
		values = append(values, m.Value().Int64())
	}

	assert.Equal(t, []int64{8, 1, 2, 256}, values)
	assert.Equal(t, "FIRST", members[0].Text())
	assert.Equal(t, "second", members[1].Text())
	assert.Equal(t, "THIRD", members[2].Text())
	assert.True(t, members[3].Omit())

	label, ok := members[0].Label()
	require.True(t, ok)
	assert.Equal(t, "FirstDisplayName", label)

	desc, ok := members[0].Description()
	require.True(t, ok)
	assert.Equal(t, "FirstDescription", desc)

	_, ok = members[1].Label()
	assert.False(t, ok)
}

func TestAnalyzer_IotaAndOverrides(t *testing.T) {
	level := loadColors(t).Enums()[1]

	assert.False(t, level.Public())
	assert.False(t, level.Flags())
	assert.Equal(t, model.KindUint8, level.Kind())
	assert.Equal(t, "Severity", level.Stem())

	var names []string

	for i, m := range level.Members() {
		names = append(names, m.Name())
		assert.Equal(t, uint64(i), m.Value().Bits())
	}

	assert.Equal(t, []string{"debug", "info", "warn"}, names)
}

func TestAnalyzer_Diagnostics(t *testing.T) {
	res := loadColors(t)

	assert.True(t, res.Diagnostics.IsValid())
	require.Len(t, res.Diagnostics.Warnings, 2)

	ratio := res.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeScanIgnored, ratio.Code)
	assert.Equal(t, "Ratio", ratio.Enum)
	assert.Contains(t, ratio.Message, "float64 is not a supported integer type")
	assert.Contains(t, ratio.Position, "colors.go:")

	typo := res.Diagnostics.Warnings[1]
	assert.Equal(t, "Mode", typo.Enum)
	assert.Equal(t, `unknown marker "flag"`, typo.Message)
	assert.Equal(t, []string{"flags"}, typo.Suggestions)

	mode := res.Enums()[2]
	assert.False(t, mode.Flags())
}

func TestAnalyzer_InvalidEnum(t *testing.T) {
	_, err := NewAnalyzer("", nil).LoadPackages(context.Background(), "./testdata/invalid")
	require.Error(t, err)
	require.ErrorIs(t, err, model.ErrInvalid)
	assert.Contains(t, err.Error(), "invalid.go:")
	assert.Contains(t, err.Error(), "negative value -128")
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer("", nil).LoadPackages(context.Background(), "./testdata/missing")
	require.Error(t, err)
}

func TestMarkers(t *testing.T) {
	res := markers(nil)
	assert.Empty(t, res)

	m := marker{name: markerLabel, arg: `"a \"b\""`}
	s, err := m.quoted()
	require.NoError(t, err)
	assert.Equal(t, `a "b"`, s)

	m.arg = "bare"
	_, err = m.quoted()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects a quoted string")
}

func TestAnalyzer_Example(t *testing.T) {
	res, err := NewAnalyzer("../../examples/scan", nil).LoadPackages(context.Background(), ".")
	require.NoError(t, err)
	assert.True(t, res.Diagnostics.IsValid())
	require.Len(t, res.Enums(), 2)

	weather, alert := res.Enums()[0], res.Enums()[1]
	assert.Equal(t, "enum-generator/examples/scan.Weather", weather.FullyQualifiedName())
	assert.Equal(t, "partly_cloudy", weather.Members()[1].Text())
	assert.True(t, weather.HasLabel())

	assert.True(t, alert.Flags())
	assert.Len(t, alert.ListedMembers(), 3)

	label, ok := alert.Members()[1].Label()
	assert.True(t, ok)
	assert.Equal(t, "Flood warning", label)
}

func TestAnalyzer_NoMarkedTypes(t *testing.T) {
	res, err := NewAnalyzer("", nil).LoadPackages(context.Background(), "./testdata/plain")
	require.NoError(t, err)
	require.Len(t, res.Packages, 1)
	assert.Empty(t, res.Enums())

	require.Len(t, res.Diagnostics.Infos, 1)
	info := res.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeScanEmpty, info.Code)
	assert.Equal(t, diagnostic.DiagnosticInfo, info.Severity)
	assert.Contains(t, info.Message, "testdata/plain declares no //enumgen:generate types")
}
