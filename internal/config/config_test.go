package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glint/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, ok, err := config.Load(dir)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, time.Millisecond, cfg.Engine.BatchBudget())
	assert.Equal(t, 16*time.Millisecond, cfg.Engine.IdleSlice())
}

func TestLoadWalksUpToConfig(t *testing.T) {
	root := t.TempDir()
	content := "[engine]\nbatch_budget_ms = 5\n\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0o644))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, ok, err := config.Load(nested)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, cfg.Engine.BatchBudgetMs)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Unset fields fall back to defaults.
	assert.Equal(t, config.Default().Engine.IdleSliceMs, cfg.Engine.IdleSliceMs)
	assert.Equal(t, config.Default().Engine.CheapLineLength, cfg.Engine.CheapLineLength)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("engine = {{{"), 0o644))

	cfg, ok, err := config.Load(dir)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, config.Default(), cfg)
}
