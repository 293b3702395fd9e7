// Package main provides the CLI entrypoint for enum-generator.
//
// enum-generator is a Go codegen tool that:
//   - Reads enum declarations from a YAML manifest or from marked Go source
//   - Generates a matching-mode flag type per enum
//   - Generates cached listings, parsing and membership tests
//   - Generates String, underlying value, label and description lookups
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enum-generator/internal/config"
	"enum-generator/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by all commands once flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer

	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "enum-generator",
		Short: "Generate parsing and lookup code for Go enums",
		Long: `enum-generator generates companion code for integer enums.

For every enum it writes three files:
  <name>_format.gen.go      matching-mode flag type
  <name>_core.gen.go        listings, TryParse/Parse, IsDefined, label tables
  <name>_extensions.gen.go  String, UnderlyingValue, Label, Description, IsFlagSet

Examples:
  enum-generator gen --manifest enums.yaml -o ./color
  enum-generator scan ./color/...
  enum-generator inspect --manifest enums.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./enumgen.yaml if present)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "emit JSON logs")
	flags.Int("workers", 0, "enums generated concurrently (0 = GOMAXPROCS)")
	flags.Bool("omit-timestamp", false, "leave the generation time out of file headers")
	flags.Bool("debug-unformatted", false, "keep sources rejected by gofmt as .unformatted.go files")
	flags.String("suffix", ".gen.go", "generated file name suffix")

	root.AddCommand(
		newGenCmd(a),
		newScanCmd(a),
		newInspectCmd(a),
		newVersionCmd(a),
	)

	return root
}

// persistentKeys maps persistent flags to configuration keys.
var persistentKeys = map[string]string{
	"log-level":         config.KeyLogLevel,
	"log-json":          config.KeyLogJSON,
	"workers":           config.KeyWorkers,
	"omit-timestamp":    config.KeyOmitTimestamp,
	"debug-unformatted": config.KeyDebugUnformatted,
	"suffix":            config.KeySuffix,
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}

	for name, key := range persistentKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	if f := cmd.Flags().Lookup("output"); f != nil {
		if err := v.BindPFlag(config.KeyOutputDir, f); err != nil {
			return fmt.Errorf("binding flag output: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	opts := cfg.LogOptions()
	opts.Output = a.errOut

	log, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg, a.log = cfg, log

	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "enum-generator %s\n", version)
		},
	}
}
