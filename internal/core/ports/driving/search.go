package driving

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// SearchService provides per-source search to external actors.
type SearchService interface {
	// SearchNotes searches the notes/wiki source.
	SearchNotes(ctx context.Context, query string) (*domain.PageResults, error)

	// SearchMessages searches the chat source.
	SearchMessages(ctx context.Context, query string) (*domain.MessageResults, error)
}
