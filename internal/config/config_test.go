package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/miv/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points the default lookup locations at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
tab_size: 2
language: go
show_line_numbers: false
keymap:
  normal:
    - keys: "gT"
      command: next_buffer
    - keys: "<C-q>"
      command: quit
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.TabSize)
	assert.Equal(t, "go", cfg.Language)
	assert.False(t, cfg.ShowLineNumbers)
	assert.Equal(t, "catppuccin-mocha", cfg.Theme)
	require.Len(t, cfg.Keymap.Normal, 2)
	assert.Equal(t, BindingConfig{Keys: "gT", Command: "next_buffer"}, cfg.Keymap.Normal[0])
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_LocalFileBeforeHome(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".miv.yaml", "tab_size: 3\n")
	writeFile(t, dir, ".config/miv/config.yaml", "tab_size: 8\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TabSize)
}

func TestLoad_HomeFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".config/miv/config.yaml", "theme: dracula\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MIV_TAB_SIZE", "6")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TabSize)
}

func TestLoad_InvalidTabSize(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "bad.yaml", "tab_size: 0\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate_UnknownCommand(t *testing.T) {
	cfg := Defaults()
	cfg.Keymap.Visual = []BindingConfig{{Keys: "Y", Command: "yank_everything"}}

	err := Validate(cfg)
	require.ErrorIs(t, err, core.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "keymap.visual[0]")
}

func TestValidate_BadKeySpec(t *testing.T) {
	cfg := Defaults()
	cfg.Keymap.Insert = []BindingConfig{{Keys: "<Nope>", Command: "normal"}}

	err := Validate(cfg)
	require.ErrorIs(t, err, core.ErrInvalidKeySpec)
}

func TestValidate_EmptyKeySpec(t *testing.T) {
	cfg := Defaults()
	cfg.Keymap.Normal = []BindingConfig{{Keys: "", Command: "quit"}}

	require.ErrorIs(t, Validate(cfg), core.ErrEmptyKeySpec)
}

func TestEditorOptions_BuildsEditor(t *testing.T) {
	cfg := Defaults()
	cfg.TabSize = 2
	cfg.Keymap.Insert = []BindingConfig{{Keys: "jk", Command: "normal"}}

	ed, err := core.New(cfg.EditorOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 2, ed.TabSize())

	_, ok := ed.Tree(core.InsertMode).Lookup([]core.KeyEvent{core.RuneKey('j'), core.RuneKey('k')})
	assert.True(t, ok)
}

func TestEditorOptions_ConflictFailsEditor(t *testing.T) {
	cfg := Defaults()
	// "g" would shadow the default "gg".
	cfg.Keymap.Normal = []BindingConfig{{Keys: "g", Command: "top"}}
	require.NoError(t, Validate(cfg))

	_, err := core.New(cfg.EditorOptions()...)
	require.ErrorIs(t, err, core.ErrMotionConflict)
}

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults().TabSize, cfg.TabSize)
	assert.Equal(t, Defaults().Theme, cfg.Theme)
}
