package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// DefaultFileName is the settings file looked up when no path is given.
const DefaultFileName = "ctrlf.toml"

// Environment variables that override file settings.
const (
	EnvPort           = "PORT"
	EnvNotionToken    = "NOTION_TOKEN"
	EnvSlackToken     = "SLACK_BOT_TOKEN"
	EnvAnthropicKey   = "ANTHROPIC_API_KEY"
	EnvAnthropicModel = "ANTHROPIC_MODEL"
)

// LoadSettings reads settings from path, applies environment overrides and
// fills defaults. A missing file is not an error.
func LoadSettings(path string) (*domain.Settings, error) {
	if path == "" {
		path = DefaultFileName
	}

	var settings domain.Settings
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No settings file - environment and defaults only
	case err != nil:
		return nil, fmt.Errorf("read settings: %w", err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}

	applyEnv(&settings)
	settings.ApplyDefaults()
	return &settings, nil
}

// SaveSettings writes settings to path with restricted permissions.
// Credentials are never written; they belong in the environment.
func SaveSettings(path string, settings *domain.Settings) error {
	if path == "" {
		path = DefaultFileName
	}

	out := *settings
	out.Notion.Token = ""
	out.Slack.Token = ""
	out.Anthropic.APIKey = ""

	data, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0600)
}

// applyEnv overlays non-empty environment variables.
func applyEnv(s *domain.Settings) {
	if v := os.Getenv(EnvPort); v != "" {
		s.Server.Addr = ":" + v
	}
	if v := os.Getenv(EnvNotionToken); v != "" {
		s.Notion.Token = v
	}
	if v := os.Getenv(EnvSlackToken); v != "" {
		s.Slack.Token = v
	}
	if v := os.Getenv(EnvAnthropicKey); v != "" {
		s.Anthropic.APIKey = v
	}
	if v := os.Getenv(EnvAnthropicModel); v != "" {
		s.Anthropic.Model = v
	}
}
