package notion

import (
	"errors"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// ErrTokenRequired is returned when no integration token is configured.
var ErrTokenRequired = errors.New("notion: token is required")

// wrapError converts a Notion API error object into a domain.UpstreamError.
// Transport and decode failures are returned unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var nerr *notionapi.Error
	if errors.As(err, &nerr) {
		return &domain.UpstreamError{
			Service: "notion",
			Code:    string(nerr.Code),
			Message: nerr.Message,
		}
	}
	return err
}
