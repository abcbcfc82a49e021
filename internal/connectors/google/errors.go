package google

import (
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// Readable messages for common Google API failures.
const (
	msgUnauthorized = "Access token is invalid or expired"
	msgForbidden    = "Access to this file is forbidden"
	msgNotFound     = "File not found"
	msgRateLimited  = "Google API rate limit exceeded"
)

// ErrTokenRequired is returned when a request carries no access token.
var ErrTokenRequired = errors.New("google: access token is required")

// WrapError converts a Google API error into a domain.UpstreamError with a
// readable message. Other errors are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	msg := gerr.Message
	switch gerr.Code {
	case http.StatusUnauthorized:
		msg = msgUnauthorized
	case http.StatusForbidden:
		msg = msgForbidden
	case http.StatusNotFound:
		msg = msgNotFound
	case http.StatusTooManyRequests:
		msg = msgRateLimited
	}
	if msg == "" {
		msg = http.StatusText(gerr.Code)
	}
	return &domain.UpstreamError{
		Service: "drive",
		Code:    strconv.Itoa(gerr.Code),
		Message: msg,
	}
}
