package notion

import (
	"net/http"
	"time"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// Fixed upstream page sizes.
const (
	// ChildrenPageSize is the number of child blocks fetched per page.
	ChildrenPageSize = 100

	// DatabasePageSize is the number of rows fetched per nested database.
	DatabasePageSize = 100

	// DefaultTimeout is used when no HTTP client is supplied.
	DefaultTimeout = 20 * time.Second

	// contentWorkers bounds concurrent per-page content fetches.
	contentWorkers = 4
)

// Config holds Notion connector configuration.
type Config struct {
	// Token is the integration bearer token (required).
	Token string

	// BaseURL overrides the API host, e.g. for a proxy (optional).
	BaseURL string

	// PageSize is the search page size.
	PageSize int

	// ContentBudget is the maximum characters of content per page.
	ContentBudget int

	// MaxDepth bounds nested database/page traversal.
	MaxDepth int

	// HTTPClient is used for all calls (optional).
	HTTPClient *http.Client
}

// ConfigFromSettings builds a connector config from injected settings.
func ConfigFromSettings(s domain.NotionSettings, client *http.Client) *Config {
	return &Config{
		Token:         s.Token,
		BaseURL:       s.BaseURL,
		PageSize:      s.PageSize,
		ContentBudget: s.ContentBudget,
		MaxDepth:      s.MaxDepth,
		HTTPClient:    client,
	}
}

func (c *Config) applyDefaults() {
	if c.PageSize <= 0 {
		c.PageSize = domain.DefaultNotionPageSize
	}
	if c.ContentBudget <= 0 {
		c.ContentBudget = domain.DefaultNotionContentBudget
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = domain.DefaultNotionMaxDepth
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
}
