package main

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"enum-generator/internal/manifest"
	"enum-generator/internal/model"
)

func newGenCmd(a *app) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate code for the enums of a YAML manifest",
		Long: `Generate code for the enums declared in a YAML manifest.

Files are written to --output, or next to the manifest when no output
directory is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if manifestPath == "" {
				return errors.New("--manifest is required")
			}

			f, err := manifest.LoadFile(manifestPath)
			if err != nil {
				return err
			}

			enums, err := f.Enums()
			if err != nil {
				return err
			}

			outDir := a.cfg.OutputDir
			if outDir == "" {
				outDir = filepath.Dir(manifestPath)
			}

			return a.generate(cmd.Context(), enums, func(*model.Enum) string { return outDir })
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest describing the enums")
	cmd.Flags().StringP("output", "o", "", "output directory")

	return cmd
}
