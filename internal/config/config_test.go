package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "nested", "quiz.db")
	t.Setenv(EnvDB, db)
	t.Setenv(EnvDebugLog, "  /tmp/trivia.log ")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, db, cfg.DBPath)
	assert.Equal(t, "/tmp/trivia.log", cfg.DebugLogPath)
	assert.DirExists(t, filepath.Dir(db))
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDB, "")
	t.Setenv(EnvDebugLog, "")
	t.Setenv("XDG_DATA_HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "trivia", "trivia.db"), cfg.DBPath)
	assert.Empty(t, cfg.DebugLogPath)
}

func TestLoadOverrideSkipsDefaultDir(t *testing.T) {
	xdg := t.TempDir()
	envDir := filepath.Join(t.TempDir(), "env")
	t.Setenv(EnvDB, filepath.Join(envDir, "env.db"))
	t.Setenv("XDG_DATA_HOME", xdg)
	path := filepath.Join(t.TempDir(), "sub", "override.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.DBPath)
	assert.DirExists(t, filepath.Dir(path))
	assert.NoDirExists(t, envDir)
	assert.NoDirExists(t, filepath.Join(xdg, "trivia"))
}
