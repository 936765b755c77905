package models

import "io/fs"

type DiscoveredFile struct {
	Path    string
	RelPath string
	Mode    fs.FileMode
}

// FileChange is a file whose content was (or in a dry run, would be)
// rewritten.
type FileChange struct {
	Path    string
	Changes []string
	Diff    string
	Written bool
}

type FileFailure struct {
	Path string
	Err  error
}

func (f FileFailure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

func (f FileFailure) Unwrap() error {
	return f.Err
}
