package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repohealth/internal/config"
)

func TestInitWritesStarterConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	b, err := os.ReadFile(filepath.Join(dir, config.DefaultConfigFilename))
	require.NoError(t, err)
	assert.Equal(t, config.ExampleFile, string(b))
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	_, err := runCommand(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	initForce = false
	_, err = runCommand(t, "init", dir, "--force")
	require.NoError(t, err)
}
