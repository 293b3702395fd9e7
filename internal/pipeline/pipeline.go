// Package pipeline runs the generator over a batch of enums.
//
// Every enum is generated independently on a bounded worker pool. A failure
// for one enum is recorded as a diagnostic and never affects the others.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"enum-generator/internal/diagnostic"
	"enum-generator/internal/gen"
	"enum-generator/internal/model"
)

// Options configures an Orchestrator.
type Options struct {
	// Workers bounds the number of enums generated concurrently. Zero means
	// GOMAXPROCS.
	Workers int
	// Header is prefixed to every artifact. A zero Header.Time is replaced by
	// the start time of the run.
	Header    gen.Header
	Generator gen.GeneratorConfig
}

// EnumResult holds the outcome for one enum.
type EnumResult struct {
	Enum  *model.Enum
	Files []gen.GeneratedFile
	// Err is set when generation failed or the enum was skipped.
	Err error
}

// Result holds the outcome of a run, in input order.
type Result struct {
	Enums       []EnumResult
	Diagnostics diagnostic.Diagnostics
}

// Files returns the artifacts of every successful enum, in input order.
func (r *Result) Files() []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, er := range r.Enums {
		if er.Err == nil {
			files = append(files, er.Files...)
		}
	}

	return files
}

// Orchestrator sequences the artifact generators over a batch of enums.
type Orchestrator struct {
	opts     Options
	log      *zap.Logger
	now      func() time.Time
	generate func(e *model.Enum) ([]gen.GeneratedFile, error)
}

// NewOrchestrator creates an Orchestrator. A nil logger disables logging.
func NewOrchestrator(opts Options, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}

	return &Orchestrator{
		opts:     opts,
		log:      log,
		now:      time.Now,
		generate: gen.NewGenerator(opts.Generator).Generate,
	}
}

// Run generates every enum. It does not fail as a whole: per-enum errors,
// panics and cancellations end up in the result diagnostics. Enums not started
// when ctx is cancelled are skipped; completed ones stay valid.
func (o *Orchestrator) Run(ctx context.Context, enums []*model.Enum) *Result {
	start := o.now()

	header := o.opts.Header
	if header.Time.IsZero() {
		header.Time = start
	}

	workers := o.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	res := &Result{Enums: make([]EnumResult, len(enums))}

	var g errgroup.Group

	g.SetLimit(workers)

	for i, e := range enums {
		res.Enums[i].Enum = e

		if err := ctx.Err(); err != nil {
			res.Enums[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.Enums[i].Err = err
				return nil
			}

			files, err := o.runOne(e, header)
			res.Enums[i].Files, res.Enums[i].Err = files, err

			return nil
		})
	}

	_ = g.Wait()

	failed := 0

	for _, er := range res.Enums {
		switch {
		case er.Err == nil:
		case errors.Is(er.Err, context.Canceled), errors.Is(er.Err, context.DeadlineExceeded):
			res.Diagnostics.AddWarning(diagnostic.CodeSkipped,
				fmt.Sprintf("Generation of %s was skipped: %v", er.Enum.FullName(), er.Err), er.Enum.FullName())
		default:
			failed++

			res.Diagnostics.GenerationFailed(er.Enum.FullName(), er.Err)
		}
	}

	o.log.Info("generation finished",
		zap.Int("count", len(enums)),
		zap.Int("failed", failed),
		zap.Int64("duration_ms", o.now().Sub(start).Milliseconds()),
	)

	return res
}

// runOne generates one enum, turning a panic into an error.
func (o *Orchestrator) runOne(e *model.Enum, header gen.Header) (files []gen.GeneratedFile, err error) {
	log := o.log.With(zap.String("enum", e.FullyQualifiedName()))

	defer func() {
		if r := recover(); r != nil {
			files, err = nil, fmt.Errorf("panic: %v", r)
		}

		if err != nil {
			log.Error("generation failed", zap.Error(err))
		}
	}()

	files, err = o.generate(e)
	if err != nil {
		return nil, err
	}

	for i := range files {
		files[i] = header.Apply(files[i])
		log.Debug("artifact generated",
			zap.String("artifact", files[i].Name),
			zap.String("file", files[i].Filename),
		)
	}

	return files, nil
}
