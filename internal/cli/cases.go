package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/cases"
)

// CasesOptions holds flags for the cases command.
type CasesOptions struct {
	*RootOptions
	Year  int    // 0 uses the config year
	Cases string // case file path; empty uses the default location
}

// PartCases summarises one part of a case file.
type PartCases struct {
	Part     int  `json:"part"`
	Cases    int  `json:"cases"`
	Runnable bool `json:"runnable"`
	Answer   bool `json:"answer"`
}

// CasesResult summarises a validated case file.
type CasesResult struct {
	Path  string      `json:"path"`
	Parts []PartCases `json:"parts"`
}

// String renders one line per part.
func (r CasesResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✓ %s\n", r.Path)
	for _, p := range r.Parts {
		state := "disabled"
		if p.Runnable {
			state = "runnable"
		}
		fmt.Fprintf(&sb, "  part %d: %d case(s), %s", p.Part, p.Cases, state)
		if p.Answer {
			sb.WriteString(", answer known")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// NewCasesCommand creates the cases command.
func NewCasesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CasesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cases <day>",
		Short: "Validate an exercise day's case file",
		Long: `Validate a case file and summarise its cases per part.

The file is decoded strictly: unknown fields, parts out of range, empty
inputs and missing expected answers are errors.

Examples:
  advent cases 1
  advent cases 5 --year 2024
  advent cases 1 --cases ./d01.yaml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCases(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "exercise year (defaults to config)")
	cmd.Flags().StringVar(&opts.Cases, "cases", "", "path to the case file")

	return cmd
}

func validateCases(opts *CasesOptions, dayArg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	day, err := parseDay(dayArg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid day", err)
	}
	cfg, err := opts.settings()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}
	year := cfg.Year
	if opts.Year != 0 {
		year = opts.Year
	}

	path := opts.Cases
	if path == "" {
		path = cases.DefaultPath(cfg.Root, year, day)
	}
	file, err := cases.Load(path)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeCases, "invalid case file", err)
	}

	table := &runnableTable{runnable: map[int]bool{}, answers: map[int]bool{}}
	file.Apply(table)

	result := CasesResult{Path: path}
	counts := file.CountByPart()
	for p := 1; p <= file.Parts; p++ {
		result.Parts = append(result.Parts, PartCases{
			Part:     p,
			Cases:    counts[p],
			Runnable: table.runnable[p],
			Answer:   table.answers[p],
		})
	}
	return f.Success(result)
}

// runnableTable replays a case file's enable and disable rules.
type runnableTable struct {
	runnable map[int]bool
	answers  map[int]bool
}

func (t *runnableTable) AddCase(part int, _ string, _ any) { t.runnable[part] = true }
func (t *runnableTable) Enable(part int)                   { t.runnable[part] = true }
func (t *runnableTable) Disable(part int)                  { t.runnable[part] = false }
func (t *runnableTable) Expect(part int, _ any)            { t.answers[part] = true }
