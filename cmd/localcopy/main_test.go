package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		verifyExtent, verifyMaxRank, verifyLayouts = 0, 0, nil
		verbose = false
		configPath = "localcopy.yaml"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "localcopy "+version+"\n", out)
}

func TestVerify_Flags(t *testing.T) {
	out, err := execute(t, "verify", "--extent", "3", "--max-rank", "2", "--layout", "left")
	require.NoError(t, err)

	assert.Contains(t, out, "PASS team-copy")
	assert.Contains(t, out, "LayoutLeft")
	// 2 ranks x 5 scenarios + scratch.
	assert.Contains(t, out, "11 scenarios, 0 failed")
}

func TestVerify_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
verify:
  extent: 2
  max_rank: 1
  layouts: [right, left]
  team_size: 2
logging:
  level: warn
  format: json
`), 0o644))

	out, err := execute(t, "--config", path, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "11 scenarios, 0 failed")
}

func TestVerify_InvalidLayout(t *testing.T) {
	_, err := execute(t, "verify", "--layout", "diagonal", "--extent", "2", "--max-rank", "1")
	assert.ErrorContains(t, err, "unknown layout")
}

func TestBench(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bench:
  extent: 4
  rank: 2
  iterations: 2
  layout: left
`), 0o644))

	out, err := execute(t, "--config", path, "bench")
	require.NoError(t, err)
	for _, name := range []string{"team", "thread", "range", "team-fill"} {
		assert.Contains(t, out, name)
	}
}
