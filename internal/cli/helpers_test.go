package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/console"
	"github.com/roach88/advent/internal/puzzle"
	"github.com/roach88/advent/internal/registry"
)

// Day7Part1 sums whitespace separated integers.
type Day7Part1 struct{}

func (Day7Part1) Parse(raw string) ([]int, error) {
	var nums []int
	for _, f := range strings.Fields(raw) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func (Day7Part1) Solve(out *console.Console, nums []int) (int, error) {
	out.Echo("adding", len(nums), "numbers")
	total := 0
	for _, n := range nums {
		total += n
	}
	return total, nil
}

// Day7Part2 multiplies them.
type Day7Part2 struct{ Day7Part1 }

func (Day7Part2) Solve(_ *console.Console, nums []int) (int, error) {
	product := 1
	for _, n := range nums {
		product *= n
	}
	return product, nil
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	file := filepath.Join("/src", "y2025", "d07.go")
	require.NoError(t, registry.Add(reg, file, func() puzzle.Solver[[]int, int] { return Day7Part1{} }))
	require.NoError(t, registry.Add(reg, file, func() puzzle.Solver[[]int, int] { return Day7Part2{} }))
	return reg
}

// workspace creates a root holding io/y2025 with the given files, keyed by
// their path below io/y2025.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, "io", "y2025", name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// execute runs the root command with args against root and reg.
// The config file is pinned to a path that does not exist, so the year
// always comes from flags.
func execute(t *testing.T, reg *registry.Registry, root string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&RootOptions{Registry: reg})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--root", root,
		"--config", filepath.Join(root, "missing.cue"),
		"--no-color",
	}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
