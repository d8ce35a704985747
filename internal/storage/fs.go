package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type FSSource struct{ base string }

func NewFSSource(base string) (*FSSource, error) {
	if base == "" {
		base = "./quizzes"
	}
	fi, err := os.Stat(base)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", base)
	}
	return &FSSource{base: base}, nil
}

// List returns the regular files directly under the base directory.
// Subdirectories and dotfiles are skipped.
func (s *FSSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

func (s *FSSource) Open(name string) (io.ReadCloser, error) {
	if name == "" {
		return nil, errors.New("empty name")
	}
	clean := filepath.Clean(name)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return nil, fmt.Errorf("name %q escapes source", name)
	}
	return os.Open(filepath.Join(s.base, clean))
}

func (s *FSSource) Base() string { return s.base }
