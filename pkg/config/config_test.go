package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"content": {"default_parse_mode": "HTML"},
		"answer": {"cache_time": 10, "is_personal": true},
		"output": {"indent": true}
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "HTML", cfg.Content.DefaultParseMode)
	assert.Equal(t, 10, cfg.Answer.CacheTime)
	assert.True(t, cfg.Answer.IsPersonal)
	// absent keys keep their defaults
	assert.True(t, cfg.Answer.RejectEmpty)
	assert.True(t, cfg.Output.Indent)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answer": {"cache_time": 10}}`), 0o600))

	t.Setenv("INLINECONTENT_ANSWER_CACHE_TIME", "60")
	t.Setenv("INLINECONTENT_ANSWER_REJECT_EMPTY", "false")
	t.Setenv("INLINECONTENT_CONTENT_DEFAULT_PARSE_MODE", "MarkdownV2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Answer.CacheTime)
	assert.False(t, cfg.Answer.RejectEmpty)
	assert.Equal(t, "MarkdownV2", cfg.Content.DefaultParseMode)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"answer":`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidEnvValue(t *testing.T) {
	t.Setenv("INLINECONTENT_ANSWER_CACHE_TIME", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"markdown", func(c *Config) { c.Content.DefaultParseMode = "Markdown" }, false},
		{"bad parse mode", func(c *Config) { c.Content.DefaultParseMode = "html" }, true},
		{"negative cache", func(c *Config) { c.Answer.CacheTime = -1 }, true},
		{"cache too long", func(c *Config) { c.Answer.CacheTime = MaxCacheTime + 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.Output.Indent = true
	cfg.Content.DefaultParseMode = "HTML"

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
