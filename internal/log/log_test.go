package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Info(CatMode, "mode changed", "from", "normal", "to", "insert")

	line := buf.String()
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2} \[INFO\] \[mode\] mode changed from=normal to=insert\n$`, line)
}

func TestLogOddFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Debug(CatCore, "grew", "name")

	assert.Contains(t, buf.String(), " name=<missing>")
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	ErrorErr(CatClipboard, "write failed", errors.New("no xclip"))
	ErrorErr(CatClipboard, "write failed", nil)

	out := buf.String()
	assert.Contains(t, out, "[ERROR] [clipboard] write failed error=no xclip")
	assert.Contains(t, out, "error=<nil>")
}

func TestMinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Info(CatCore, "hidden")
	Warn(CatCore, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatCore, "muted")
	assert.Empty(t, buf.String())
}

func TestDisabledByDefault(t *testing.T) {
	SetOutput(nil)
	assert.NotPanics(t, func() { Debug(CatRender, "nothing to write to") })
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}
