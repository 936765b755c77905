package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsAndSinks(t *testing.T) {
	t.Cleanup(Reset)

	var out, errOut, file bytes.Buffer
	SetOutput(&out, &errOut)
	SetColor(false)
	AddWriter(&file, false)

	Debug("hidden %d", 1)
	Info("scanning %s", "app")
	Warn("careful")
	Error("broken")

	assert.Equal(t, "INFO  scanning app\n", out.String())
	assert.Equal(t, "WARN  careful\nERROR broken\n", errOut.String())
	assert.Equal(t, "INFO  scanning app\nWARN  careful\nERROR broken\n", file.String())
}

func TestVerboseEnablesDebug(t *testing.T) {
	t.Cleanup(Reset)

	var out bytes.Buffer
	SetOutput(&out, nil)
	SetColor(false)
	SetVerbose(true)

	assert.True(t, IsVerbose())
	Debug("walk %s", "src")
	Success("done")

	assert.Equal(t, "DEBUG walk src\nOK    done\n", out.String())
}

func TestColoredOutput(t *testing.T) {
	t.Cleanup(Reset)

	var out bytes.Buffer
	SetOutput(&out, nil)

	Success("updated")
	assert.Equal(t, ColorGreen+"OK   "+ColorReset+" updated\n", out.String())
}
