package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

func contentRequest(mime string) domain.ContentRequest {
	return domain.ContentRequest{FileID: "file-1", AccessToken: "ya29.token", MimeType: mime}
}

func TestContentService_Document(t *testing.T) {
	store := &mockFileStore{exported: map[string][]byte{domain.ExportMimeText: []byte("Doc body")}}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("application/vnd.google-apps.document"))

	require.NotNil(t, res.Content)
	assert.Equal(t, "Doc body", *res.Content)
	assert.Equal(t, domain.ContentDocument, res.Type)
	assert.Nil(t, res.RowCount)
	assert.Equal(t, []string{domain.ExportMimeText}, store.exportCalls)
	assert.Equal(t, "ya29.token", store.lastToken)
}

func TestContentService_Presentation(t *testing.T) {
	store := &mockFileStore{exported: map[string][]byte{domain.ExportMimeText: []byte("Slide 1")}}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("application/vnd.google-apps.presentation"))

	require.NotNil(t, res.Content)
	assert.Equal(t, "Slide 1", *res.Content)
	assert.Equal(t, domain.ContentPresentation, res.Type)
}

func TestContentService_Spreadsheet(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		rows int
	}{
		{"header only", "name,email\n", 0},
		{"two rows", "name,email\na@x.com\nb@x.com\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockFileStore{exported: map[string][]byte{domain.ExportMimeCSV: []byte(tt.csv)}}
			svc := NewContentService(store, nil)

			res := svc.GetDriveContent(context.Background(), contentRequest("application/vnd.google-apps.spreadsheet"))

			require.NotNil(t, res.Content)
			require.NotNil(t, res.RowCount)
			assert.Equal(t, tt.rows, *res.RowCount)
			assert.Equal(t, domain.ContentSpreadsheet, res.Type)
			assert.Equal(t, []string{domain.ExportMimeCSV}, store.exportCalls)
		})
	}
}

func TestContentService_SpreadsheetCountsBeforeTruncation(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,value\n")
	for i := 0; i < 5000; i++ {
		b.WriteString("row,123\n")
	}
	store := &mockFileStore{exported: map[string][]byte{domain.ExportMimeCSV: []byte(b.String())}}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("application/vnd.google-apps.spreadsheet"))

	require.NotNil(t, res.Content)
	assert.LessOrEqual(t, len(*res.Content), domain.MaxExtractedContentChars)
	assert.Equal(t, 5000, *res.RowCount)
}

func TestContentService_PDF(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := &mockFileStore{downloaded: []byte("%PDF-1.4")}
		pdf := &mockPDFExtractor{text: "Quarterly report"}
		svc := NewContentService(store, pdf)

		res := svc.GetDriveContent(context.Background(), contentRequest("application/pdf"))

		require.NotNil(t, res.Content)
		assert.Equal(t, "Quarterly report", *res.Content)
		assert.Equal(t, domain.ContentPDF, res.Type)
		assert.Equal(t, []byte("%PDF-1.4"), pdf.got)
	})

	t.Run("extraction failure reports error", func(t *testing.T) {
		store := &mockFileStore{downloaded: []byte("not a pdf")}
		pdf := &mockPDFExtractor{err: errors.New("syntax error")}
		svc := NewContentService(store, pdf)

		res := svc.GetDriveContent(context.Background(), contentRequest("application/pdf"))

		assert.Nil(t, res.Content)
		assert.Equal(t, domain.ContentPDF, res.Type)
		assert.Contains(t, res.Error, "Failed to extract PDF text")
	})

	t.Run("no extractor", func(t *testing.T) {
		store := &mockFileStore{downloaded: []byte("%PDF")}
		svc := NewContentService(store, nil)

		res := svc.GetDriveContent(context.Background(), contentRequest("application/pdf"))

		assert.Nil(t, res.Content)
		assert.Equal(t, 0, store.downloadCalls)
		assert.NotEmpty(t, res.Error)
	})
}

func TestContentService_Text(t *testing.T) {
	for _, mime := range []string{"text/plain", "application/json", "application/csv"} {
		t.Run(mime, func(t *testing.T) {
			store := &mockFileStore{downloaded: []byte(`{"a":1}`)}
			svc := NewContentService(store, nil)

			res := svc.GetDriveContent(context.Background(), contentRequest(mime))

			require.NotNil(t, res.Content)
			assert.Equal(t, `{"a":1}`, *res.Content)
			assert.Equal(t, domain.ContentText, res.Type)
			assert.Equal(t, 1, store.downloadCalls)
		})
	}
}

func TestContentService_TruncatesToBudget(t *testing.T) {
	store := &mockFileStore{downloaded: []byte(strings.Repeat("a", 25000))}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("text/plain"))

	require.NotNil(t, res.Content)
	assert.Len(t, *res.Content, domain.MaxExtractedContentChars)
}

func TestContentService_Unsupported(t *testing.T) {
	store := &mockFileStore{}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("image/png"))

	assert.Nil(t, res.Content)
	assert.Equal(t, domain.ContentUnsupported, res.Type)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, store.exportCalls)
	assert.Equal(t, 0, store.downloadCalls)
}

func TestContentService_FetchFailure(t *testing.T) {
	store := &mockFileStore{exportErr: errors.New("drive: file not found")}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("application/vnd.google-apps.document"))

	assert.Nil(t, res.Content)
	assert.Equal(t, domain.ContentError, res.Type)
	assert.Equal(t, "drive: file not found", res.Error)
	assert.Equal(t, "file-1", res.FileID)
}

func TestContentService_FetchFailureUsesUpstreamMessage(t *testing.T) {
	store := &mockFileStore{downloadErr: &domain.UpstreamError{Service: "drive", Code: "404", Message: "File not found"}}
	svc := NewContentService(store, nil)

	res := svc.GetDriveContent(context.Background(), contentRequest("text/plain"))

	assert.Nil(t, res.Content)
	assert.Equal(t, domain.ContentError, res.Type)
	assert.Equal(t, "File not found", res.Error)
}
