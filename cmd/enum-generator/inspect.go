package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"enum-generator/internal/analyze"
	"enum-generator/internal/bitmask"
	"enum-generator/internal/manifest"
	"enum-generator/internal/model"
)

// dumper prints models without pointer addresses so output is stable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspectCmd(a *app) *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "inspect [packages]",
		Short: "Dump the enum models without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			var enums []*model.Enum

			switch {
			case manifestPath != "":
				f, err := manifest.LoadFile(manifestPath)
				if err != nil {
					return err
				}

				if enums, err = f.Enums(); err != nil {
					return err
				}
			case len(args) > 0:
				res, err := analyze.NewAnalyzer("", a.log).LoadPackages(cmd.Context(), args...)
				if err != nil {
					return err
				}

				if err := a.report(res.Diagnostics); err != nil {
					return err
				}

				enums = res.Enums()
			default:
				return errors.New("either --manifest or package patterns are required")
			}

			out := cmd.OutOrStdout()

			for _, e := range enums {
				fmt.Fprintln(out, e.String())

				if e.Flags() {
					mask, err := bitmask.Analyze(e)
					if err != nil {
						return err
					}

					fmt.Fprintf(out, "mask: %s\n", mask.Binary())
				}

				dumper.Fdump(out, e.Spec())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest describing the enums")

	return cmd
}
