package slack

import (
	"errors"

	"github.com/slack-go/slack"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// ErrTokenRequired is returned when no bot token is configured.
var ErrTokenRequired = errors.New("slack: token is required")

// wrapError converts a Slack "ok": false response into a domain.UpstreamError.
// The message is the Slack error string, e.g. "invalid_auth".
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var serr slack.SlackErrorResponse
	if errors.As(err, &serr) {
		return &domain.UpstreamError{Service: "slack", Message: serr.Err}
	}
	return err
}
