package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
)

// ParseModes lists the parse modes accepted for content.default_parse_mode.
// The empty string means no default.
var ParseModes = []string{"", "HTML", "Markdown", "MarkdownV2"}

// MaxCacheTime is the longest cache time the Bot API accepts for inline answers.
const MaxCacheTime = 86400

type Config struct {
	Content ContentConfig `json:"content"`
	Answer  AnswerConfig  `json:"answer"`
	Output  OutputConfig  `json:"output"`
}

type ContentConfig struct {
	// DefaultParseMode is applied to text content built from the CLI when
	// parse_mode is not given.
	DefaultParseMode string `env:"INLINECONTENT_CONTENT_DEFAULT_PARSE_MODE" json:"default_parse_mode,omitempty"`
}

type AnswerConfig struct {
	CacheTime  int  `env:"INLINECONTENT_ANSWER_CACHE_TIME"   json:"cache_time"`
	IsPersonal bool `env:"INLINECONTENT_ANSWER_IS_PERSONAL"  json:"is_personal"`
	// RejectEmpty refuses results whose content has no fields set.
	RejectEmpty bool `env:"INLINECONTENT_ANSWER_REJECT_EMPTY" json:"reject_empty"`
}

type OutputConfig struct {
	Indent bool `env:"INLINECONTENT_OUTPUT_INDENT" json:"indent"`
}

func DefaultConfig() *Config {
	return &Config{
		Answer: AnswerConfig{
			CacheTime:   300,
			RejectEmpty: true,
		},
	}
}

// Validate checks value ranges that JSON and env decoding cannot express.
func (c *Config) Validate() error {
	if !slices.Contains(ParseModes, c.Content.DefaultParseMode) {
		return fmt.Errorf("content.default_parse_mode: unsupported parse mode %q", c.Content.DefaultParseMode)
	}
	if c.Answer.CacheTime < 0 {
		return errors.New("answer.cache_time must not be negative")
	}
	if c.Answer.CacheTime > MaxCacheTime {
		return fmt.Errorf("answer.cache_time must not exceed %d", MaxCacheTime)
	}
	return nil
}

// LoadConfig reads the JSON config at path and applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
