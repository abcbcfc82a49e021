package driven

import "context"

// FileStore reads file bytes from a cloud file-storage service using a
// caller-supplied bearer token.
type FileStore interface {
	// Export converts a native document to exportMime and returns the bytes.
	Export(ctx context.Context, fileID, accessToken, exportMime string) ([]byte, error)

	// Download returns the raw stored bytes of a file.
	Download(ctx context.Context, fileID, accessToken string) ([]byte, error)
}

// PDFExtractor pulls plain text out of PDF bytes.
type PDFExtractor interface {
	// ExtractText returns the text content of the PDF.
	ExtractText(ctx context.Context, data []byte) (string, error)
}
