package models

import "sort"

type Report struct {
	DryRun   bool
	Scanned  int
	Changed  []FileChange
	Failures []FileFailure
}

func (r *Report) FilesChanged() int {
	return len(r.Changed)
}

func (r *Report) ChangeCount() int {
	n := 0
	for _, c := range r.Changed {
		n += len(c.Changes)
	}
	return n
}

// Sort orders entries by path so reports are stable regardless of the
// order workers finished in.
func (r *Report) Sort() {
	sort.Slice(r.Changed, func(i, j int) bool {
		return r.Changed[i].Path < r.Changed[j].Path
	})
	sort.Slice(r.Failures, func(i, j int) bool {
		return r.Failures[i].Path < r.Failures[j].Path
	})
}
