package driving

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// ContentService extracts text from stored files.
type ContentService interface {
	// GetDriveContent extracts text from a file. Failures are reported in
	// the result, never as an error.
	GetDriveContent(ctx context.Context, req domain.ContentRequest) *domain.ExtractedContent
}
