package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enum-generator/internal/analyze"
	"enum-generator/internal/manifest"
	"enum-generator/internal/model"
)

func newScanCmd(a *app) *cobra.Command {
	var dir, manifestOut string

	cmd := &cobra.Command{
		Use:   "scan [packages]",
		Short: "Generate code for enums marked with //enumgen:generate",
		Long: `Load Go packages and generate code for every named integer type
marked with //enumgen:generate.

Files are written next to each package unless --output is set. With
--manifest-out, the enums of a single package are written as a YAML manifest
for "enum-generator gen" instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			res, err := analyze.NewAnalyzer(dir, a.log).LoadPackages(cmd.Context(), args...)
			if err != nil {
				return err
			}

			if err := a.report(res.Diagnostics); err != nil {
				return err
			}

			if manifestOut != "" {
				return a.writeManifest(res.Enums(), manifestOut)
			}

			return a.generate(cmd.Context(), res.Enums(), func(e *model.Enum) string {
				if a.cfg.OutputDir != "" {
					return a.cfg.OutputDir
				}

				return res.Package(e).Dir
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory package patterns are resolved from")
	cmd.Flags().StringP("output", "o", "", "output directory (default: the package directory)")
	cmd.Flags().StringVar(&manifestOut, "manifest-out", "", "write the scanned enums as a manifest instead of generating code")

	return cmd
}

// writeManifest converts enums into a manifest written to path.
func (a *app) writeManifest(enums []*model.Enum, path string) error {
	f, err := manifest.FromEnums(enums)
	if err != nil {
		return err
	}

	if err := manifest.WriteFile(f, path); err != nil {
		return err
	}

	a.log.Info("manifest written", zap.String("file", path), zap.Int("count", len(f.Enums)))

	return nil
}
