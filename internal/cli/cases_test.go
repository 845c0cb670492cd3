package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCases_Summary(t *testing.T) {
	root := workspace(t, map[string]string{
		"cases/d07.yaml": dayCases + "disable: [2]\nanswers: {1: 9}\n",
	})

	stdout, _, err := execute(t, testRegistry(t), root, "cases", "7", "--year", "2025")

	require.NoError(t, err)
	path := filepath.Join(root, "io", "y2025", "cases", "d07.yaml")
	assert.Equal(t,
		"✓ "+path+"\n  part 1: 1 case(s), runnable, answer known\n  part 2: 1 case(s), disabled\n",
		stdout)
}

func TestCases_JSON(t *testing.T) {
	root := workspace(t, map[string]string{
		"cases/d07.yaml": "parts: 1\nenable: [1]\n",
	})

	stdout, _, err := execute(t, testRegistry(t), root, "--format", "json", "cases", "7", "--year", "2025")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CasesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []PartCases{{Part: 1, Cases: 0, Runnable: true}}, resp.Data.Parts)
}

func TestCases_Invalid(t *testing.T) {
	root := workspace(t, map[string]string{
		"cases/d07.yaml": "cases:\n  - {part: 1, input: \"1\"}\n",
	})

	_, _, err := execute(t, testRegistry(t), root, "cases", "7", "--year", "2025")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "expected is required")
}

func TestCases_MissingFile(t *testing.T) {
	_, _, err := execute(t, testRegistry(t), t.TempDir(), "cases", "7", "--year", "2025")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCases_InvalidDay(t *testing.T) {
	_, _, err := execute(t, testRegistry(t), t.TempDir(), "cases", "0")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
