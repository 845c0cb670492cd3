package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/config"
	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // path to advent.cue
	Root    string // overrides config root
	NoColor bool

	// Registry is the exercise registry (for testing).
	// If nil, defaults to registry.Default.
	Registry *registry.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the advent CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advent",
		Short: "advent - puzzle execution harness",
		Long: `Run Advent of Code style exercises.

Each part is tested against the examples in io/y<year>/cases/d<dd>.yaml
before its real input (io/y<year>/input/d<dd>p<pp>.in or d<dd>.in) is
solved. A failing example stops the part before the real input is read.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", config.FileName, "path to the CUE config file")
	cmd.PersistentFlags().StringVar(&opts.Root, "root", "", "directory holding io/ (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable ANSI colours")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCasesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// settings loads the config file and applies the global flags over it.
func (o *RootOptions) settings() (config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return config.Config{}, err
	}
	if o.Root != "" {
		cfg.Root = o.Root
	}
	if o.NoColor {
		cfg.Color = false
	}
	return cfg, nil
}

func (o *RootOptions) registry() *registry.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return registry.Default
}

// logger returns a text logger on the command's stderr, at debug level
// when verbose is set.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// formatter returns the output formatter for the command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// console returns the console exercises print to. In JSON mode it writes
// to stderr so stdout carries only the JSON response.
func (o *RootOptions) console(cmd *cobra.Command, cfg config.Config) *console.Console {
	w := cmd.OutOrStdout()
	if o.Format == "json" {
		w = cmd.ErrOrStderr()
	}
	var opts []console.Option
	if !cfg.Color {
		opts = append(opts, console.WithNoColor())
	}
	if o.Verbose {
		opts = append(opts, console.WithLogLevel(slog.LevelDebug))
	}
	return console.New(w, opts...)
}
