// Package cli wires the descriptor helpers into the propdesc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/propdesc/pkg/config"
	"github.com/amirasaad/propdesc/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// App holds the state shared by every subcommand.
type App struct {
	cfg    *config.App
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile   string
	file      string
	inFormat  string
	outFormat string
	inSnap    bool
	outSnap   bool
}

// NewRootCmd builds the command tree. Documents are read from in unless
// --file is given; results go to out and logs to errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &App{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "propdesc",
		Short: "Inspect and lock property descriptors of records",
		Long: `propdesc reads a record (a JSON object or YAML mapping) and reports or
restricts the writable, enumerable and configurable flags of its keys.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.StringVarP(&a.file, "file", "f", "", "record document to read (default stdin)")
	flags.StringVar(&a.inFormat, "input", "", "input format: auto, json or yaml")
	flags.StringVarP(&a.outFormat, "output", "o", "", "output format: table, json or yaml")
	flags.BoolVar(&a.inSnap, "in-snapshot", false, "input is a snapshot with descriptors")
	flags.BoolVar(&a.outSnap, "out-snapshot", false, "write records as snapshots with descriptors")

	root.AddCommand(
		a.keysCmd(),
		a.frozenCmd(),
		a.lockCmd(),
		a.freezeCmd(),
		a.describeCmd(),
	)
	return root
}

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
}

// setup loads configuration, lets explicit flags override it and builds
// the logger.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.cfgFile != "" {
		if err := config.ApplyFile(cfg, a.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.Format = a.inFormat
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.outFormat
	}
	if flags.Changed("in-snapshot") {
		cfg.Input.Snapshot = a.inSnap
	}
	if flags.Changed("out-snapshot") {
		cfg.Output.Snapshot = a.outSnap
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.New(a.errOut, cfg.Log)
	a.logger.Debug("configuration loaded",
		"env", cfg.Env,
		"input_format", cfg.Input.Format,
		"output_format", cfg.Output.Format,
	)
	return nil
}

// interactive reports whether input would be read from a terminal.
func (a *App) interactive() bool {
	f, ok := a.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
