package models

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSortAndCounts(t *testing.T) {
	r := &Report{
		Changed: []FileChange{
			{Path: "b.tsx", Changes: []string{"x", "y"}},
			{Path: "a.tsx", Changes: []string{"z"}},
		},
		Failures: []FileFailure{{Path: "d.ts", Err: fs.ErrPermission}, {Path: "c.ts", Err: fs.ErrNotExist}},
	}
	r.Sort()

	assert.Equal(t, "a.tsx", r.Changed[0].Path)
	assert.Equal(t, "c.ts", r.Failures[0].Path)
	assert.Equal(t, 2, r.FilesChanged())
	assert.Equal(t, 3, r.ChangeCount())
}

func TestFileFailureUnwrap(t *testing.T) {
	f := FileFailure{Path: "x.ts", Err: fs.ErrPermission}
	assert.True(t, errors.Is(f, fs.ErrPermission))
	assert.Equal(t, "x.ts: permission denied", f.Error())
}
