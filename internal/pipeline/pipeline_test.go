package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"enum-generator/internal/diagnostic"
	"enum-generator/internal/gen"
	"enum-generator/internal/model"
)

func newEnum(t *testing.T, name string) *model.Enum {
	t.Helper()

	e, err := model.New(model.Spec{
		Name:      name,
		FullName:  "Outer." + name,
		Namespace: "example.com/app/code",
		Package:   "code",
		Public:    true,
		Kind:      model.KindInt,
		Members: []model.MemberSpec{
			{Name: name + "A", Value: model.SignedValue(model.KindInt, 0)},
			{Name: name + "B", Value: model.SignedValue(model.KindInt, 1)},
		},
	})
	require.NoError(t, err)

	return e
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
}

func TestOrchestrator_Run(t *testing.T) {
	enums := []*model.Enum{newEnum(t, "Color"), newEnum(t, "Shape"), newEnum(t, "Size")}

	o := NewOrchestrator(Options{
		Workers:   2,
		Header:    gen.Header{Version: "1.0.0"},
		Generator: gen.DefaultGeneratorConfig(),
	}, zap.NewNop())
	o.now = fixedClock()

	res := o.Run(context.Background(), enums)

	require.True(t, res.Diagnostics.IsValid(), res.Diagnostics.Error())
	require.Len(t, res.Enums, 3)

	for i, er := range res.Enums {
		assert.Same(t, enums[i], er.Enum)
		require.NoError(t, er.Err)
		require.Len(t, er.Files, 3)
	}

	files := res.Files()
	require.Len(t, files, 9)
	assert.Equal(t, "example.com/app/code.Outer.Color_Format", files[0].Name)
	assert.Equal(t, "example.com/app/code.Outer.Size_Extensions", files[8].Name)

	content := string(files[0].Content)
	assert.True(t, strings.HasPrefix(content,
		"// Generated by enum-generator 1.0.0\n"+
			"// Generated on: 2024-01-02 03:04:05 UTC\n"+
			"// Code generated by enum-generator. DO NOT EDIT.\n\npackage code\n"), content)
}

func TestOrchestrator_Run_Deterministic(t *testing.T) {
	enums := []*model.Enum{newEnum(t, "Color"), newEnum(t, "Shape")}
	opts := Options{Header: gen.Header{OmitTimestamp: true}, Generator: gen.DefaultGeneratorConfig()}

	first := NewOrchestrator(opts, nil).Run(context.Background(), enums).Files()
	second := NewOrchestrator(opts, nil).Run(context.Background(), enums).Files()

	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, string(first[i].Content), string(second[i].Content))
		assert.NotContains(t, string(first[i].Content), "Generated on:")
	}
}

func TestOrchestrator_Run_IsolatesFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	enums := []*model.Enum{newEnum(t, "Color"), newEnum(t, "Broken"), newEnum(t, "Panicky"), newEnum(t, "Shape")}

	o := NewOrchestrator(Options{Generator: gen.DefaultGeneratorConfig()}, zap.New(core))
	next := o.generate
	o.generate = func(e *model.Enum) ([]gen.GeneratedFile, error) {
		switch e.Name() {
		case "Broken":
			return nil, errors.New("template exploded")
		case "Panicky":
			panic("index out of range")
		}

		return next(e)
	}

	res := o.Run(context.Background(), enums)

	require.Len(t, res.Diagnostics.Errors, 2)
	assert.Equal(t, diagnostic.CodeGenerationFailed, res.Diagnostics.Errors[0].Code)
	assert.Equal(t,
		"An error happened while generating code for Outer.Broken. Error: template exploded",
		res.Diagnostics.Errors[0].Message)
	assert.Equal(t, "Outer.Broken", res.Diagnostics.Errors[0].Enum)
	assert.Equal(t,
		"An error happened while generating code for Outer.Panicky. Error: panic: index out of range",
		res.Diagnostics.Errors[1].Message)

	require.NoError(t, res.Enums[0].Err)
	require.Error(t, res.Enums[1].Err)
	require.Error(t, res.Enums[2].Err)
	require.NoError(t, res.Enums[3].Err)
	assert.Nil(t, res.Enums[2].Files)
	assert.Len(t, res.Files(), 6)

	assert.Equal(t, 2, logs.FilterMessage("generation failed").Len())

	summary := logs.FilterMessage("generation finished").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(2), countField(summary[0], "failed"))
}

func countField(entry observer.LoggedEntry, key string) int64 {
	for _, f := range entry.Context {
		if f.Key == key {
			return f.Integer
		}
	}

	return -1
}

func TestOrchestrator_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewOrchestrator(Options{}, nil).Run(ctx, []*model.Enum{newEnum(t, "Color")})

	assert.True(t, res.Diagnostics.IsValid())
	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeSkipped, res.Diagnostics.Warnings[0].Code)
	require.ErrorIs(t, res.Enums[0].Err, context.Canceled)
	assert.Empty(t, res.Files())
}

func TestOrchestrator_Run_CancelMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	enums := make([]*model.Enum, 0, 20)
	for _, n := range strings.Fields("A B C D E F G H I J K L M N O P Q R S T") {
		enums = append(enums, newEnum(t, "E"+n))
	}

	var calls atomic.Int32

	o := NewOrchestrator(Options{Workers: 1}, nil)
	next := o.generate
	o.generate = func(e *model.Enum) ([]gen.GeneratedFile, error) {
		if calls.Add(1) == 3 {
			cancel()
		}

		return next(e)
	}

	res := o.Run(ctx, enums)

	// The first three enums completed before cancellation took effect.
	for _, er := range res.Enums[:3] {
		require.NoError(t, er.Err)
		assert.Len(t, er.Files, 3)
	}

	assert.Less(t, int(calls.Load()), len(enums))
	assert.True(t, res.Diagnostics.IsValid())
	assert.NotEmpty(t, res.Diagnostics.Warnings)
}

func TestOrchestrator_Run_Empty(t *testing.T) {
	res := NewOrchestrator(Options{}, nil).Run(context.Background(), nil)

	assert.Empty(t, res.Enums)
	assert.Empty(t, res.Files())
	assert.True(t, res.Diagnostics.IsValid())
}
