package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/technophile-04/create-eth-codemod/core/config"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"github.com/technophile-04/create-eth-codemod/core/models"
)

type FileWalker struct {
	Extensions []string
	IgnoreDirs []string
	Exclude    []string
}

func NewFileWalker(cfg *config.Config) *FileWalker {
	return &FileWalker{
		Extensions: cfg.Extensions,
		IgnoreDirs: cfg.IgnoreDirs,
		Exclude:    cfg.Exclude,
	}
}

// Walk returns candidate files under root in lexical order.
func (w *FileWalker) Walk(root string) ([]models.DiscoveredFile, error) {
	var discovered []models.DiscoveredFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && (w.isIgnoredDir(d.Name()) || w.isExcluded(relPath)) {
				logger.Debug("Skipping directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !w.hasExtension(path) || w.isExcluded(relPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		discovered = append(discovered, models.DiscoveredFile{
			Path:    path,
			RelPath: relPath,
			Mode:    info.Mode().Perm(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Discovered %d candidate files under %s", len(discovered), root)
	return discovered, nil
}

// Matches applies the same filters as Walk to a single path under root.
func (w *FileWalker) Matches(root, path string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, dir := range strings.Split(filepath.ToSlash(filepath.Dir(relPath)), "/") {
		if w.isIgnoredDir(dir) {
			return false
		}
	}
	return w.hasExtension(path) && !w.isExcluded(relPath)
}

// IsIgnoredDir reports whether a directory under root is skipped by Walk.
func (w *FileWalker) IsIgnoredDir(root, path string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if relPath == "." {
		return false
	}
	return w.isIgnoredDir(filepath.Base(path)) || w.isExcluded(relPath)
}

func (w *FileWalker) isIgnoredDir(name string) bool {
	return slices.Contains(w.IgnoreDirs, name)
}

func (w *FileWalker) hasExtension(path string) bool {
	return slices.Contains(w.Extensions, strings.ToLower(filepath.Ext(path)))
}

func (w *FileWalker) isExcluded(relPath string) bool {
	for _, pattern := range w.Exclude {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

// Describe builds the DiscoveredFile for a single path under root.
func (w *FileWalker) Describe(root, path string) (models.DiscoveredFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.DiscoveredFile{}, err
	}
	if !info.Mode().IsRegular() {
		return models.DiscoveredFile{}, fmt.Errorf("%s is not a regular file", path)
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return models.DiscoveredFile{}, err
	}
	return models.DiscoveredFile{
		Path:    path,
		RelPath: filepath.ToSlash(relPath),
		Mode:    info.Mode().Perm(),
	}, nil
}
