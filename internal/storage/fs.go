package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSStore serves files from a single directory, typically the flag images.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./flags"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	abs, err := filepath.EvalSymlinks(base)
	if err != nil {
		return nil, err
	}
	abs, err = filepath.Abs(abs)
	if err != nil {
		return nil, err
	}
	return &FSStore{base: abs}, nil
}

// List returns the regular file names in the store, sorted.
func (s *FSStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

// Open resolves name against the store root and refuses anything that ends up
// outside of it, including through symlinks.
func (s *FSStore) Open(name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, os.ErrNotExist
	}
	joined := filepath.Join(s.base, name)
	if !within(s.base, joined) {
		return nil, ErrOutsideRoot
	}
	p, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return nil, err
	}
	if !within(s.base, p) {
		return nil, ErrOutsideRoot
	}
	return os.Open(p)
}

func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// IsNotFound reports whether err means the requested file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
