package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technophile-04/create-eth-codemod/core/logger"
	"github.com/technophile-04/create-eth-codemod/core/version"
)

const legacyImport = "import { InputBase } from \"~~/components/scaffold-eth\";\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		logger.Reset()
		logfile, verbose, noColor, configPath = "", false, false, ""
		dryRun, showDiff, watch, workers = false, false, false, 0
	})

	var out, logs bytes.Buffer
	logger.SetOutput(&logs, nil)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), logs.String(), err
}

func project(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	page := filepath.Join(root, "page.tsx")
	require.NoError(t, os.WriteFile(page, []byte(legacyImport), 0o644))
	return root, page
}

func TestRootDryRunDiff(t *testing.T) {
	root, page := project(t)

	out, logs, err := execute(t, root, "--dry-run", "--diff", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "+import { BaseInput as InputBase } from \"@scaffold-ui/components\";")
	assert.Contains(t, logs, "Would update page.tsx")
	assert.Contains(t, logs, "(InputBase → BaseInput)")

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, legacyImport, string(data))
}

func TestRootWrites(t *testing.T) {
	root, page := project(t)
	logPath := filepath.Join(t.TempDir(), "codemod.log")

	_, logs, err := execute(t, root, "--no-color", "--workers", "2", "--logfile", logPath)
	require.NoError(t, err)
	assert.Contains(t, logs, "1 of 1 files changed")

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, "import { BaseInput as InputBase } from \"@scaffold-ui/components\";\n", string(data))

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Updated page.tsx")
}

func TestRootRejectsFile(t *testing.T) {
	_, page := project(t)

	_, _, err := execute(t, page)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestRootRejectsWatchDryRun(t *testing.T) {
	root, _ := project(t)

	_, _, err := execute(t, root, "--watch", "--dry-run")
	assert.ErrorContains(t, err, "--watch cannot be combined with --dry-run")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "create-eth-codemod "+version.Version+"\n", out)
}
