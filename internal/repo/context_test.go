package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMissingPath(t *testing.T) {
	_, err := Build(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestBuildFileNotDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "afile")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Build(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestBuildPlainDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# project")
	writeFile(t, root, "main.py", "print('x')")
	writeFile(t, root, "requirements.txt", "flask==3.0.0")

	rc, err := Build(context.Background(), root)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(rc.Root))
	assert.Equal(t, 3, rc.FS.Count())
	assert.False(t, rc.Git.IsRepo, "no .git directory")
	assert.Contains(t, rc.Stack.Languages, "Python")
	assert.Contains(t, rc.Stack.PackageManagers, "pip")
	assert.Empty(t, rc.Stack.CIProviders)
}
