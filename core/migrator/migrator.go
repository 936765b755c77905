package migrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/technophile-04/create-eth-codemod/core/cache"
	"github.com/technophile-04/create-eth-codemod/core/config"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"github.com/technophile-04/create-eth-codemod/core/models"
	"github.com/technophile-04/create-eth-codemod/core/rewriter"
	"github.com/technophile-04/create-eth-codemod/core/walker"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	DryRun  bool
	Diff    bool
	Workers int
}

type Migrator struct {
	Walker   *walker.FileWalker
	rewriter *rewriter.Rewriter
	cache    *cache.ContentCache
	opts     Options
}

func New(cfg *config.Config, rw *rewriter.Rewriter, opts Options) *Migrator {
	if opts.Workers < 1 {
		opts.Workers = cfg.Workers
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Migrator{
		Walker:   walker.NewFileWalker(cfg),
		rewriter: rw,
		opts:     opts,
	}
}

// UseCache makes the migrator skip files whose content matches the last
// version it read or wrote.
func (m *Migrator) UseCache(cc *cache.ContentCache) {
	m.cache = cc
}

// Run migrates every candidate file under root.
func (m *Migrator) Run(ctx context.Context, root string) (*models.Report, error) {
	files, err := m.Walker.Walk(root)
	if err != nil {
		return nil, err
	}
	logger.Info("Scanning %d files with %d workers", len(files), m.opts.Workers)
	return m.MigrateFiles(ctx, files)
}

// MigrateFiles rewrites files concurrently. Per-file failures are recorded in
// the report; the returned error is only set when ctx was cancelled.
func (m *Migrator) MigrateFiles(ctx context.Context, files []models.DiscoveredFile) (*models.Report, error) {
	report := &models.Report{DryRun: m.opts.DryRun}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(m.opts.Workers)

	for _, f := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			change, err := m.migrateFile(f)

			mu.Lock()
			defer mu.Unlock()
			report.Scanned++
			switch {
			case err != nil:
				logger.Debug("Failed to migrate %s: %v", f.RelPath, err)
				report.Failures = append(report.Failures, models.FileFailure{Path: f.RelPath, Err: err})
			case change != nil:
				report.Changed = append(report.Changed, *change)
			}
			return nil
		})
	}
	g.Wait()

	report.Sort()
	if m.cache != nil {
		m.cache.LogStats()
	}
	return report, ctx.Err()
}

func (m *Migrator) migrateFile(f models.DiscoveredFile) (*models.FileChange, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if m.cache != nil && !m.cache.Changed(f.Path, data) {
		return nil, nil
	}

	original := string(data)
	res := m.rewriter.Rewrite(original)
	if !res.Changed() {
		return nil, nil
	}

	change := &models.FileChange{Path: f.RelPath, Changes: res.Changes}

	if m.opts.Diff {
		diff, err := unifiedDiff(f.RelPath, original, res.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to diff file: %w", err)
		}
		change.Diff = diff
	}

	if m.opts.DryRun {
		return change, nil
	}

	mode := f.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(f.Path, []byte(res.Content), mode); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	change.Written = true
	if m.cache != nil {
		m.cache.Remember(f.Path, []byte(res.Content))
	}

	logger.Debug("Rewrote %s (%d changes)", f.RelPath, len(res.Changes))
	return change, nil
}

func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}

// PrintReport logs the per-file summary and writes any diffs to w.
func PrintReport(w io.Writer, r *models.Report) {
	verb := "Updated"
	if r.DryRun {
		verb = "Would update"
	}

	for _, c := range r.Changed {
		logger.Success("%s %s", verb, c.Path)
		for _, line := range c.Changes {
			logger.Info("  • %s", line)
		}
		if c.Diff != "" {
			io.WriteString(w, c.Diff)
		}
	}

	for _, f := range r.Failures {
		logger.Error("Failed %s: %v", f.Path, f.Err)
	}

	switch {
	case r.FilesChanged() == 0:
		logger.Info("No legacy scaffold-eth imports found in %d files", r.Scanned)
	case r.DryRun:
		logger.Info("Dry run: %d of %d files would change (%d edits)", r.FilesChanged(), r.Scanned, r.ChangeCount())
	default:
		logger.Info("%d of %d files changed (%d edits)", r.FilesChanged(), r.Scanned, r.ChangeCount())
	}
}
