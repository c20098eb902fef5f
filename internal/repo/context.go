package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathNotFound reports that the scan root does not exist or is not a
// directory. It is a precondition failure, not a check failure.
var ErrPathNotFound = errors.New("path not found")

// Context is the immutable snapshot of repository facts all checks read
// from. It is built once per scan and shared read-only across concurrently
// running checks; nothing on it mutates after Build returns, so a scan is a
// pure function of context + configuration.
type Context struct {
	// Root is the absolute repository root path.
	Root string

	FS    *FileIndex
	Git   GitInfo
	Stack StackInfo
}

// Build constructs a Context for the repository at path.
//
// It enumerates the working tree, extracts git metadata via the local git
// binary, and detects the technology stack. Build performs no network
// access. It returns ErrPathNotFound (wrapped) if path does not exist or is
// not a directory.
func Build(ctx context.Context, path string) (*Context, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, abs)
	}

	fs, err := NewFileIndex(abs)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", abs, err)
	}

	rc := &Context{
		Root: abs,
		FS:   fs,
		Git:  ReadGitInfo(ctx, abs),
	}
	rc.Stack = DetectStack(fs)
	return rc, nil
}
