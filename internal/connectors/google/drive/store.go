package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/ctrlf-search/internal/connectors/google"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
)

// MaxExportSize is the maximum size for fetched content (5MB).
const MaxExportSize = 5 * 1024 * 1024

// Ensure Store implements the interface.
var _ driven.FileStore = (*Store)(nil)

// Config holds Drive store configuration.
type Config struct {
	// Endpoint overrides the API base, e.g. "http://localhost:9000/drive/v3/".
	Endpoint string

	// HTTPClient is the base client; the caller's token is layered on top.
	HTTPClient *http.Client
}

// Store fetches file bytes from Google Drive with a per-request token.
type Store struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a Drive store.
func New(cfg *Config) *Store {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Store{endpoint: cfg.Endpoint, httpClient: cfg.HTTPClient}
}

// Export converts a Google Workspace file to exportMime and returns the bytes.
func (s *Store) Export(ctx context.Context, fileID, accessToken, exportMime string) ([]byte, error) {
	svc, err := s.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Files.Export(fileID, exportMime).Context(ctx).Download()
	if err != nil {
		return nil, google.WrapError(err)
	}
	defer resp.Body.Close()

	return readLimited(resp.Body, "export")
}

// Download returns the raw bytes of a stored file.
func (s *Store) Download(ctx context.Context, fileID, accessToken string) ([]byte, error) {
	svc, err := s.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, google.WrapError(err)
	}
	defer resp.Body.Close()

	return readLimited(resp.Body, "download")
}

func (s *Store) service(ctx context.Context, accessToken string) (*drive.Service, error) {
	if accessToken == "" {
		return nil, google.ErrTokenRequired
	}
	svc, err := google.NewDriveService(ctx, s.httpClient, accessToken, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return svc, nil
}

// readLimited reads at most MaxExportSize bytes.
func readLimited(r io.Reader, op string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxExportSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", op, err)
	}
	return data, nil
}
