package slack

import (
	"net/http"
	"time"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

const (
	// FallbackTextLimit caps message text on the history scan path.
	FallbackTextLimit = 200

	// ConversationListLimit is the page size for conversations.list.
	ConversationListLimit = 100

	// DefaultTimeout is used when no HTTP client is supplied.
	DefaultTimeout = 20 * time.Second

	// historyWorkers bounds concurrent channel history scans.
	historyWorkers = 4
)

// conversationTypes are scanned on the fallback path.
var conversationTypes = []string{"public_channel", "private_channel"}

// Config holds Slack connector configuration.
type Config struct {
	// Token is the bot token (required).
	Token string

	// BaseURL overrides the Web API base, e.g. "http://localhost:9000/api/".
	BaseURL string

	SearchCount  int
	ChannelLimit int
	HistoryLimit int
	ResultLimit  int

	// HTTPClient is used for all calls (optional).
	HTTPClient *http.Client
}

// ConfigFromSettings builds a connector config from injected settings.
func ConfigFromSettings(s domain.SlackSettings, client *http.Client) *Config {
	return &Config{
		Token:        s.Token,
		BaseURL:      s.BaseURL,
		SearchCount:  s.SearchCount,
		ChannelLimit: s.ChannelLimit,
		HistoryLimit: s.HistoryLimit,
		ResultLimit:  s.ResultLimit,
		HTTPClient:   client,
	}
}

func (c *Config) applyDefaults() {
	if c.SearchCount <= 0 {
		c.SearchCount = domain.DefaultSlackSearchCount
	}
	if c.ChannelLimit <= 0 {
		c.ChannelLimit = domain.DefaultSlackChannelLimit
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = domain.DefaultSlackHistoryLimit
	}
	if c.ResultLimit <= 0 {
		c.ResultLimit = domain.DefaultSlackResultLimit
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
}
