package driven

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// NotesSource searches a notes/wiki service.
// A structured upstream failure is returned as *domain.UpstreamError.
type NotesSource interface {
	// Search returns pages matching the query in upstream order.
	Search(ctx context.Context, query string) ([]domain.Page, error)
}

// ChatSource searches a team chat service.
// A structured upstream failure is returned as *domain.UpstreamError.
type ChatSource interface {
	// Search returns messages matching the query.
	Search(ctx context.Context, query string) ([]domain.Message, error)
}
