// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the search proxy. It lets AI assistants search Notion and Slack, read
// Drive files and ask for answers over assembled context.
package mcp

import "errors"

// Errors for missing required dependencies.
var (
	ErrMissingSearchService  = errors.New("mcp: search service is required")
	ErrMissingContentService = errors.New("mcp: content service is required")
	ErrMissingAnswerService  = errors.New("mcp: answer service is required")
)
