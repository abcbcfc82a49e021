package google

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// NewDriveService creates a Google Drive API service authorised with
// accessToken. Requests go through base, so its transport (timeouts,
// instrumentation) applies. An empty endpoint uses the public API.
func NewDriveService(ctx context.Context, base *http.Client, accessToken, endpoint string) (*drive.Service, error) {
	if base == nil {
		base = http.DefaultClient
	}

	client := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), NewTokenSource(accessToken))
	client.Timeout = base.Timeout

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return drive.NewService(ctx, opts...)
}
