package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Year int // 0 lists every year
}

// ExerciseInfo describes one registered exercise part.
type ExerciseInfo struct {
	Year     int    `json:"year"`
	Day      int    `json:"day"`
	Part     int    `json:"part"`
	Name     string `json:"name"`
	TypeName string `json:"type"`
}

// ListResult holds the registered exercise parts.
type ListResult struct {
	Exercises []ExerciseInfo `json:"exercises"`
}

// String renders one line per part.
func (r ListResult) String() string {
	if len(r.Exercises) == 0 {
		return "No exercises registered."
	}
	lines := make([]string, len(r.Exercises))
	for i, e := range r.Exercises {
		lines[i] = fmt.Sprintf("%d  %s  %s", e.Year, e.Name, e.TypeName)
	}
	return strings.Join(lines, "\n")
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered exercises",
		Long: `List every registered exercise part in year, day and part order.

Examples:
  advent list
  advent list --year 2025 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listExercises(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "only list this year")

	return cmd
}

func listExercises(opts *ListOptions, cmd *cobra.Command) error {
	result := ListResult{Exercises: []ExerciseInfo{}}
	for _, e := range opts.registry().Entries() {
		if opts.Year != 0 && e.Identity.Year != opts.Year {
			continue
		}
		result.Exercises = append(result.Exercises, ExerciseInfo{
			Year:     e.Identity.Year,
			Day:      e.Identity.Day,
			Part:     e.Identity.Part,
			Name:     e.Identity.Name(),
			TypeName: e.TypeName,
		})
	}
	return opts.formatter(cmd).Success(result)
}
