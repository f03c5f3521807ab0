package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KiaFarhang/guarded-counter/internal/config"
)

func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	t.Run("Defaults to two workers of ten thousand increments", func(t *testing.T) {
		out, _, err := execute(t, context.Background(), "run")
		require.NoError(t, err)
		assert.Contains(t, out, "Final value: 20000\n")
	})
	t.Run("Honours flags", func(t *testing.T) {
		out, _, err := execute(t, context.Background(), "run", "--initial", "5", "--workers", "4", "--iterations", "25", "--verify")
		require.NoError(t, err)
		assert.Contains(t, out, "Initial value: 5\n")
		assert.Contains(t, out, "Final value: 105\n")
		assert.Contains(t, out, "#3")
	})
	t.Run("Flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "counter.yaml")
		require.NoError(t, os.WriteFile(path, []byte("initial: 10\nworkers: 3\niterations: 100\n"), 0o644))

		out, _, err := execute(t, context.Background(), "run", "--config", path, "--iterations", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Final value: 13\n")
	})
	t.Run("Logs worker activity when verbose", func(t *testing.T) {
		_, errOut, err := execute(t, context.Background(), "run", "--workers", "1", "--iterations", "1", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, errOut, "counter: ")
		assert.Contains(t, errOut, "worker 0 finished")
	})
	t.Run("Runs with a progress bar", func(t *testing.T) {
		out, _, err := execute(t, context.Background(), "run", "--workers", "2", "--iterations", "10", "--progress")
		require.NoError(t, err)
		assert.Contains(t, out, "Final value: 20\n")
	})
	t.Run("Returns an error for invalid settings", func(t *testing.T) {
		_, _, err := execute(t, context.Background(), "run", "--workers", "0")
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("Returns an error for a missing config file", func(t *testing.T) {
		_, _, err := execute(t, context.Background(), "run", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("Returns the context error when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := execute(t, ctx, "run")
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("Rejects positional arguments", func(t *testing.T) {
		_, _, err := execute(t, context.Background(), "run", "extra")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	Version = "v1.2.3"
	defer func() { Version = "dev" }()

	out, _, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestRootCommand(t *testing.T) {
	out, _, err := execute(t, context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "version")
}
