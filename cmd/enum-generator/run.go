package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"enum-generator/internal/diagnostic"
	"enum-generator/internal/gen"
	"enum-generator/internal/model"
	"enum-generator/internal/pipeline"
)

// generate runs the pipeline over enums and writes every successful enum to
// the directory returned by dirFor. Diagnostics are printed; an error is
// returned when any enum failed.
func (a *app) generate(ctx context.Context, enums []*model.Enum, dirFor func(*model.Enum) string) error {
	genCfg := gen.DefaultGeneratorConfig()
	genCfg.FileSuffix = a.cfg.Suffix

	if a.cfg.DebugUnformatted {
		genCfg.DebugDir = a.cfg.OutputDir
		if genCfg.DebugDir == "" {
			genCfg.DebugDir = "."
		}
	}

	o := pipeline.NewOrchestrator(pipeline.Options{
		Workers:   a.cfg.Workers,
		Header:    gen.Header{Version: version, OmitTimestamp: a.cfg.OmitTimestamp},
		Generator: genCfg,
	}, a.log)

	res := o.Run(ctx, enums)

	for _, er := range res.Enums {
		if er.Err != nil {
			continue
		}

		written, err := gen.WriteFiles(er.Files, dirFor(er.Enum))
		if err != nil {
			if len(written) > 0 {
				err = fmt.Errorf("%w; already written: %s", err, strings.Join(written, ", "))
			}

			res.Diagnostics.GenerationFailed(er.Enum.FullName(), err)

			continue
		}

		for i, path := range written {
			a.log.Info("file written",
				zap.String("enum", er.Enum.FullyQualifiedName()),
				zap.String("file", path),
				zap.String("size", humanize.IBytes(uint64(len(er.Files[i].Content)))),
			)
		}
	}

	return a.report(res.Diagnostics)
}

// report prints diagnostics and turns errors into a command failure.
func (a *app) report(diags diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		fmt.Fprintf(a.errOut, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("generation failed for %d enum(s)", len(diags.Errors))
	}

	return nil
}
