// Package scan enumerates the source files of a project tree.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sevigo/docsheet/internal/core"
)

// Enumerator walks a fixed set of directories below a project root.
type Enumerator struct {
	root    string
	dirs    []string
	exclude map[string]bool
	logger  *slog.Logger
}

// NewEnumerator returns an Enumerator over the given project-relative dirs.
// Any path segment found in excludeDirs removes the entry from the result.
func NewEnumerator(root string, dirs, excludeDirs []string, logger *slog.Logger) *Enumerator {
	if logger == nil {
		logger = slog.Default()
	}
	exclude := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		exclude[d] = true
	}
	return &Enumerator{
		root:    root,
		dirs:    dirs,
		exclude: exclude,
		logger:  logger,
	}
}

// Enumerate returns every regular file, or symlink to one, below the configured dirs, in walk order.
// Missing dirs are skipped without error.
func (e *Enumerator) Enumerate() ([]core.FileDescriptor, error) {
	absRoot, err := filepath.Abs(e.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", e.root, err)
	}

	var files []core.FileDescriptor
	for _, dir := range e.dirs {
		base := filepath.Join(absRoot, filepath.FromSlash(dir))
		info, err := os.Stat(base)
		if err != nil || !info.IsDir() {
			e.logger.Debug("skipping missing scan root", "dir", dir)
			continue
		}

		found, err := e.walk(absRoot, base)
		if err != nil {
			return nil, fmt.Errorf("failed to list files in %s: %w", dir, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

func (e *Enumerator) walk(absRoot, base string) ([]core.FileDescriptor, error) {
	var files []core.FileDescriptor
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == base {
				return err
			}
			e.logger.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != base && e.exclude[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if e.Excluded(rel) || !e.regular(path, d) {
			return nil
		}

		files = append(files, core.FileDescriptor{
			RelPath: rel,
			AbsPath: path,
			Ext:     strings.ToLower(filepath.Ext(path)),
			Name:    d.Name(),
		})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return files, err
}

// regular reports whether d is a regular file. Symlinks count when their
// target is one; linked directories are not followed.
func (e *Enumerator) regular(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := os.Stat(path)
	if err != nil {
		e.logger.Debug("skipping dangling symlink", "path", path, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

// Excluded reports whether any segment of a slash-separated path is in the exclusion set.
func (e *Enumerator) Excluded(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if e.exclude[part] {
			return true
		}
	}
	return false
}
