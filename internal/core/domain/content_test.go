package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		mime     string
		expected ContentKind
	}{
		{"application/vnd.google-apps.document", ContentDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ContentDocument},
		{"application/vnd.google-apps.spreadsheet", ContentSpreadsheet},
		{"application/vnd.google-apps.presentation", ContentPresentation},
		{"application/pdf", ContentPDF},
		{"text/plain", ContentText},
		{"text/markdown", ContentText},
		{"application/json", ContentText},
		{"application/csv", ContentText},
		{"image/png", ContentUnsupported},
		{"", ContentUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyContent(tt.mime))
		})
	}
}

func TestContentKind_ExportMime(t *testing.T) {
	tests := []struct {
		kind     ContentKind
		mime     string
		exported bool
	}{
		{ContentDocument, ExportMimeText, true},
		{ContentPresentation, ExportMimeText, true},
		{ContentSpreadsheet, ExportMimeCSV, true},
		{ContentPDF, "", false},
		{ContentText, "", false},
		{ContentUnsupported, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			mime, ok := tt.kind.ExportMime()
			assert.Equal(t, tt.exported, ok)
			assert.Equal(t, tt.mime, mime)
		})
	}
}

func TestCountRows(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected int
	}{
		{"header only", "name,email", 0},
		{"header only with newline", "name,email\n", 0},
		{"two rows", "name,email\na@x.com\nb@x.com\n", 2},
		{"two rows without trailing newline", "name,email\na@x.com\nb@x.com", 2},
		{"crlf line endings", "name,email\r\na@x.com\r\nb@x.com\r\n", 2},
		{"trailing newline is not a row", "h\na\nb\n", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountRows(tt.csv))
		})
	}
}

func TestNewExtractedContent_Truncates(t *testing.T) {
	text := strings.Repeat("x", MaxExtractedContentChars+500)

	res := NewExtractedContent("file-1", ContentText, text)
	require.NotNil(t, res.Content)
	assert.Len(t, *res.Content, MaxExtractedContentChars)
	assert.Equal(t, ContentText, res.Type)
	assert.Equal(t, "file-1", res.FileID)
	assert.Empty(t, res.Error)
}

func TestUnsupportedContent(t *testing.T) {
	res := UnsupportedContent("file-2", "image/png")
	assert.Nil(t, res.Content)
	assert.Equal(t, ContentUnsupported, res.Type)
	assert.Contains(t, res.Error, "image/png")
}
