package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/technophile-04/create-eth-codemod/core/cache"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"github.com/technophile-04/create-eth-codemod/core/migrator"
	"github.com/technophile-04/create-eth-codemod/core/models"
)

const DefaultDebounce = 500 * time.Millisecond

// FileWatcher re-runs the migrator on files that change under RootDir.
type FileWatcher struct {
	RootDir  string
	Debounce time.Duration
	OnReport func(*models.Report)

	watcher  *fsnotify.Watcher
	migrator *migrator.Migrator
	cache    *cache.ContentCache

	mutex   sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
}

func NewFileWatcher(rootDir string, m *migrator.Migrator, cc *cache.ContentCache) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	m.UseCache(cc)

	return &FileWatcher{
		RootDir:  rootDir,
		Debounce: DefaultDebounce,
		OnReport: func(*models.Report) {},
		watcher:  w,
		migrator: m,
		cache:    cc,
		pending:  make(map[string]struct{}),
	}, nil
}

// Watch blocks until ctx is done or the underlying watcher fails.
func (fw *FileWatcher) Watch(ctx context.Context) error {
	if err := fw.addWatchersRecursively(fw.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}
	logger.Info("Watching %s for legacy imports", fw.RootDir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			fw.handle(ctx, event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) handle(ctx context.Context, event fsnotify.Event) {
	fileWalker := fw.migrator.Walker

	if event.Has(fsnotify.Create) {
		if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
			if !fileWalker.IsIgnoredDir(fw.RootDir, event.Name) {
				logger.Debug("Adding watcher for new directory: %s", event.Name)
				if err := fw.addWatchersRecursively(event.Name); err != nil {
					logger.Warn("Could not watch %s: %v", event.Name, err)
				}
			}
			return
		}
	}

	if !fileWalker.Matches(fw.RootDir, event.Name) {
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		fw.cache.Forget(event.Name)
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	logger.Debug("File event: %s %s", event.Op, event.Name)

	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	fw.pending[event.Name] = struct{}{}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.Debounce, func() { fw.flush(ctx) })
}

func (fw *FileWatcher) flush(ctx context.Context) {
	fw.mutex.Lock()
	paths := make([]string, 0, len(fw.pending))
	for path := range fw.pending {
		paths = append(paths, path)
	}
	fw.pending = make(map[string]struct{})
	fw.mutex.Unlock()

	sort.Strings(paths)

	var files []models.DiscoveredFile
	for _, path := range paths {
		f, err := fw.migrator.Walker.Describe(fw.RootDir, path)
		if err != nil {
			logger.Debug("Skipping %s: %v", path, err)
			continue
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return
	}

	report, err := fw.migrator.MigrateFiles(ctx, files)
	if err != nil {
		logger.Debug("Migration interrupted: %v", err)
	}
	if report.FilesChanged() > 0 || len(report.Failures) > 0 {
		fw.OnReport(report)
	}
}

func (fw *FileWatcher) Close() error {
	fw.mutex.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mutex.Unlock()

	fw.cache.LogStats()
	return fw.watcher.Close()
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		if fw.migrator.Walker.IsIgnoredDir(fw.RootDir, path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}
		return nil
	})
}
