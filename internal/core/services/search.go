package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService dispatches queries to the configured sources and wraps
// their output in the common result envelopes.
type SearchService struct {
	notes driven.NotesSource
	chat  driven.ChatSource
}

// NewSearchService creates a new search service.
// Either source may be nil when its credential is not configured.
func NewSearchService(notes driven.NotesSource, chat driven.ChatSource) *SearchService {
	return &SearchService{
		notes: notes,
		chat:  chat,
	}
}

// SearchNotes searches the notes source.
// Upstream errors become an error envelope; other failures are returned.
func (s *SearchService) SearchNotes(ctx context.Context, query string) (*domain.PageResults, error) {
	if s.notes == nil {
		return domain.PageResultsError(domain.NotConfiguredMessage(domain.SourceNotion)), nil
	}

	logger.Section("Notion search")
	logger.Debug("query: %q", query)

	pages, err := s.notes.Search(ctx, query)
	if err != nil {
		if uerr, ok := domain.AsUpstreamError(err); ok {
			logger.Warn("notion search rejected: %v", uerr)
			return domain.PageResultsError(uerr.Message), nil
		}
		return nil, fmt.Errorf("search notion: %w", err)
	}

	logger.Debug("notion returned %d pages", len(pages))
	return domain.NewPageResults(pages), nil
}

// SearchMessages searches the chat source.
// Upstream errors become an error envelope; other failures are returned.
func (s *SearchService) SearchMessages(ctx context.Context, query string) (*domain.MessageResults, error) {
	if s.chat == nil {
		return domain.MessageResultsError(domain.NotConfiguredMessage(domain.SourceSlack)), nil
	}

	logger.Section("Slack search")
	logger.Debug("query: %q", query)

	messages, err := s.chat.Search(ctx, query)
	if err != nil {
		if uerr, ok := domain.AsUpstreamError(err); ok {
			logger.Warn("slack search rejected: %v", uerr)
			return domain.MessageResultsError(uerr.Message), nil
		}
		return nil, fmt.Errorf("search slack: %w", err)
	}

	logger.Debug("slack returned %d messages", len(messages))
	return domain.NewMessageResults(messages), nil
}
