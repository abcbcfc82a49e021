package mcp

import (
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
)

// SourceStatus reports whether a capability has credentials.
type SourceStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides Notion and Slack search.
	Search driving.SearchService

	// Content extracts Drive file text.
	Content driving.ContentService

	// Answer generates answers over context.
	Answer driving.AnswerService

	// Sources is reported by the sources resource (optional).
	Sources []SourceStatus
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}
