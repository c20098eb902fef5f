package repo

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// MaxReadSize caps lazy content reads. Files larger than this read as
// absent; checks only need to inspect text files.
const MaxReadSize = 1 << 20 // 1 MiB

// FileStats holds the stat facts checks may consult.
type FileStats struct {
	Size    int64
	ModTime time.Time
}

// FileIndex is the enumerated view of a repository working tree plus a lazy
// content accessor. The enumeration is fixed at construction; content reads
// are cached, size-capped, and safe for concurrent use. Concurrent reads of
// the same file are deduplicated so parallel checks hit the disk once.
type FileIndex struct {
	root  string
	files []string            // sorted repo-relative paths, "/"-separated
	dirs  map[string]struct{} // repo-relative directory paths

	mu      sync.RWMutex
	content map[string]string
	group   singleflight.Group
}

// NewFileIndex walks root and records every regular file and directory.
// The .git directory is excluded; symlinks are recorded neither as files
// nor followed.
func NewFileIndex(root string) (*FileIndex, error) {
	idx := &FileIndex{
		root:    root,
		dirs:    make(map[string]struct{}),
		content: make(map[string]string),
	}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees degrade to absence rather than failing the scan.
			if p == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			idx.dirs[rel] = struct{}{}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if d.Type().IsRegular() {
			idx.files = append(idx.files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(idx.files)
	return idx, nil
}

// Root returns the absolute root path the index was built from.
func (idx *FileIndex) Root() string { return idx.root }

// Files returns the enumerated repo-relative file paths, sorted. Callers
// must not mutate the returned slice.
func (idx *FileIndex) Files() []string { return idx.files }

// Count returns the number of enumerated files.
func (idx *FileIndex) Count() int { return len(idx.files) }

// HasDir reports whether a directory exists at the repo-relative path.
func (idx *FileIndex) HasDir(rel string) bool {
	_, ok := idx.dirs[filepath.ToSlash(rel)]
	return ok
}

// Exists reports whether any enumerated file matches any of the patterns.
func (idx *FileIndex) Exists(patterns ...string) bool {
	for _, pattern := range patterns {
		for _, f := range idx.files {
			if MatchPattern(pattern, f) {
				return true
			}
		}
	}
	return false
}

// Glob returns all enumerated files matching the pattern, in sorted order.
func (idx *FileIndex) Glob(pattern string) []string {
	var out []string
	for _, f := range idx.files {
		if MatchPattern(pattern, f) {
			out = append(out, f)
		}
	}
	return out
}

// FindFiles returns all files matching any pattern, deduplicated, sorted.
func (idx *FileIndex) FindFiles(patterns ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		for _, f := range idx.Glob(pattern) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// ReadFile returns the content of a repo-relative file. Missing files,
// unreadable files, and files over MaxReadSize read as ("", false).
func (idx *FileIndex) ReadFile(rel string) (string, bool) {
	rel = filepath.ToSlash(rel)

	idx.mu.RLock()
	if s, ok := idx.content[rel]; ok {
		idx.mu.RUnlock()
		return s, true
	}
	idx.mu.RUnlock()

	v, err, _ := idx.group.Do(rel, func() (any, error) {
		full := filepath.Join(idx.root, filepath.FromSlash(rel))
		info, err := os.Stat(full)
		if err != nil || info.Size() > MaxReadSize {
			return nil, os.ErrNotExist
		}
		b, err := os.ReadFile(full)
		if err != nil {
			return nil, err
		}
		s := string(b)
		idx.mu.Lock()
		idx.content[rel] = s
		idx.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return "", false
	}
	return v.(string), true
}

// Stat returns size and mtime for a repo-relative file.
func (idx *FileIndex) Stat(rel string) (FileStats, bool) {
	full := filepath.Join(idx.root, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		return FileStats{}, false
	}
	return FileStats{Size: info.Size(), ModTime: info.ModTime()}, true
}

// MatchPattern matches a repo-relative path against a glob pattern.
//
// Patterns use path.Match syntax against the full relative path. A leading
// "**/" additionally matches at any directory depth, including the root, so
// "**/*_test.go" matches both "a_test.go" and "pkg/a_test.go".
func MatchPattern(pattern, rel string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		if matched, _ := path.Match(rest, rel); matched {
			return true
		}
		segs := strings.Split(rel, "/")
		for i := 1; i < len(segs); i++ {
			if matched, _ := path.Match(rest, strings.Join(segs[i:], "/")); matched {
				return true
			}
		}
		return false
	}
	matched, _ := path.Match(pattern, rel)
	return matched
}
