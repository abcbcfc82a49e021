package domain

import "time"

// Default settings values.
const (
	DefaultAddr            = ":3000"
	DefaultUpstreamTimeout = 20 // seconds

	DefaultNotionPageSize      = 10
	DefaultNotionContentBudget = 3000
	DefaultNotionMaxDepth      = 2

	DefaultSlackSearchCount  = 20
	DefaultSlackChannelLimit = 10
	DefaultSlackHistoryLimit = 100
	DefaultSlackResultLimit  = 20

	DefaultAnthropicModel     = "claude-sonnet-4-20250514"
	DefaultAnthropicMaxTokens = 1024
)

// Settings is the injected configuration for the proxy.
// Credentials are carried here and never read from ambient state by adapters.
type Settings struct {
	Server    ServerSettings    `toml:"server"`
	Notion    NotionSettings    `toml:"notion"`
	Slack     SlackSettings     `toml:"slack"`
	Drive     DriveSettings     `toml:"drive"`
	Anthropic AnthropicSettings `toml:"anthropic"`
}

// ServerSettings configures the HTTP surface.
type ServerSettings struct {
	Addr string `toml:"addr"`

	// UpstreamTimeoutSeconds bounds every single upstream call.
	UpstreamTimeoutSeconds int `toml:"upstream_timeout_seconds"`
}

// UpstreamTimeout returns the per-call upstream timeout.
func (s ServerSettings) UpstreamTimeout() time.Duration {
	return time.Duration(s.UpstreamTimeoutSeconds) * time.Second
}

// NotionSettings configures the notes adapter.
type NotionSettings struct {
	Token         string `toml:"token"`
	BaseURL       string `toml:"base_url"`
	PageSize      int    `toml:"page_size"`
	ContentBudget int    `toml:"content_budget"`
	MaxDepth      int    `toml:"max_depth"`
}

// IsConfigured returns true if a Notion token is present.
func (s NotionSettings) IsConfigured() bool {
	return s.Token != ""
}

// SlackSettings configures the chat adapter.
type SlackSettings struct {
	Token        string `toml:"token"`
	BaseURL      string `toml:"base_url"`
	SearchCount  int    `toml:"search_count"`
	ChannelLimit int    `toml:"channel_limit"`
	HistoryLimit int    `toml:"history_limit"`
	ResultLimit  int    `toml:"result_limit"`
}

// IsConfigured returns true if a Slack bot token is present.
func (s SlackSettings) IsConfigured() bool {
	return s.Token != ""
}

// DriveSettings configures the file-storage extractor.
// The access token arrives per request, so there is no credential here.
type DriveSettings struct {
	Endpoint string `toml:"endpoint"`
}

// AnthropicSettings configures the answer generator.
type AnthropicSettings struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
}

// IsConfigured returns true if an API key is present.
func (s AnthropicSettings) IsConfigured() bool {
	return s.APIKey != ""
}

// ApplyDefaults fills zero values with defaults.
func (s *Settings) ApplyDefaults() {
	if s.Server.Addr == "" {
		s.Server.Addr = DefaultAddr
	}
	if s.Server.UpstreamTimeoutSeconds <= 0 {
		s.Server.UpstreamTimeoutSeconds = DefaultUpstreamTimeout
	}
	if s.Notion.PageSize <= 0 {
		s.Notion.PageSize = DefaultNotionPageSize
	}
	if s.Notion.ContentBudget <= 0 {
		s.Notion.ContentBudget = DefaultNotionContentBudget
	}
	if s.Notion.MaxDepth <= 0 {
		s.Notion.MaxDepth = DefaultNotionMaxDepth
	}
	if s.Slack.SearchCount <= 0 {
		s.Slack.SearchCount = DefaultSlackSearchCount
	}
	if s.Slack.ChannelLimit <= 0 {
		s.Slack.ChannelLimit = DefaultSlackChannelLimit
	}
	if s.Slack.HistoryLimit <= 0 {
		s.Slack.HistoryLimit = DefaultSlackHistoryLimit
	}
	if s.Slack.ResultLimit <= 0 {
		s.Slack.ResultLimit = DefaultSlackResultLimit
	}
	if s.Anthropic.Model == "" {
		s.Anthropic.Model = DefaultAnthropicModel
	}
	if s.Anthropic.MaxTokens <= 0 {
		s.Anthropic.MaxTokens = DefaultAnthropicMaxTokens
	}
}
