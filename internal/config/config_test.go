package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 30*time.Second, cfg.RedisTimeout())
	assert.False(t, cfg.Strict)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codex.json")
	data := `{"content_dir": "world/content", "redis_address": "redis.internal:6380", "strict": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "world/content", cfg.ContentDir)
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddress)
	assert.True(t, cfg.Strict)
	// Unset keys keep their defaults
	assert.Equal(t, 10, cfg.RedisPoolSize)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "content", cfg.ContentDir)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codex.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"content_dir": "from-file"}`), 0o644))

	t.Setenv("CODEX_CONTENT_DIR", "from-env")
	t.Setenv("CODEX_STRICT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ContentDir)
	assert.True(t, cfg.Strict)
}

func TestLoad_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codex.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"redis_address": "not a hostport"}`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codex.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
