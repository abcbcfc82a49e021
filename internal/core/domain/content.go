package domain

import (
	"fmt"
	"strings"
)

// MaxExtractedContentChars is the character budget for extracted file text.
const MaxExtractedContentChars = 10000

// ContentKind is the closed set of file content strategies.
type ContentKind string

// Content kinds. ContentUnsupported and ContentError never carry content.
const (
	ContentDocument     ContentKind = "document"
	ContentSpreadsheet  ContentKind = "spreadsheet"
	ContentPresentation ContentKind = "presentation"
	ContentPDF          ContentKind = "pdf"
	ContentText         ContentKind = "text"
	ContentUnsupported  ContentKind = "unsupported"
	ContentError        ContentKind = "error"
)

// Export formats requested from the file store.
const (
	ExportMimeText = "text/plain"
	ExportMimeCSV  = "text/csv"
)

// ClassifyContent maps a declared MIME type to a content kind by substring.
// Rules are checked in order; the first match wins.
func ClassifyContent(mimeType string) ContentKind {
	switch {
	case strings.Contains(mimeType, "document"):
		return ContentDocument
	case strings.Contains(mimeType, "spreadsheet"):
		return ContentSpreadsheet
	case strings.Contains(mimeType, "presentation"):
		return ContentPresentation
	case strings.Contains(mimeType, "pdf"):
		return ContentPDF
	case strings.Contains(mimeType, "text/"),
		strings.Contains(mimeType, "json"),
		strings.Contains(mimeType, "csv"):
		return ContentText
	default:
		return ContentUnsupported
	}
}

// ExportMime returns the export format for kinds that are exported rather
// than downloaded. The second value is false for download kinds.
func (k ContentKind) ExportMime() (string, bool) {
	switch k {
	case ContentDocument, ContentPresentation:
		return ExportMimeText, true
	case ContentSpreadsheet:
		return ExportMimeCSV, true
	default:
		return "", false
	}
}

// String returns the string representation.
func (k ContentKind) String() string {
	return string(k)
}

// ContentRequest identifies a file to extract.
type ContentRequest struct {
	FileID      string
	AccessToken string
	MimeType    string
}

// ExtractedContent is the content extractor response.
type ExtractedContent struct {
	// Content is the extracted text, nil when extraction did not happen.
	Content *string `json:"content"`

	// Type is the content kind tag.
	Type ContentKind `json:"type"`

	// RowCount is set for spreadsheets only.
	RowCount *int `json:"rowCount,omitempty"`

	// FileID echoes the requested file.
	FileID string `json:"fileId,omitempty"`

	// Error describes why Content is nil.
	Error string `json:"error,omitempty"`
}

// NewExtractedContent builds a successful result, truncating text to the
// extracted content budget.
func NewExtractedContent(fileID string, kind ContentKind, text string) *ExtractedContent {
	text = Truncate(text, MaxExtractedContentChars)
	return &ExtractedContent{Content: &text, Type: kind, FileID: fileID}
}

// ExtractionFailed builds a result with nil content and an explanation.
func ExtractionFailed(fileID string, kind ContentKind, msg string) *ExtractedContent {
	return &ExtractedContent{Type: kind, FileID: fileID, Error: msg}
}

// UnsupportedContent builds the result for a MIME type with no strategy.
func UnsupportedContent(fileID, mimeType string) *ExtractedContent {
	return ExtractionFailed(fileID, ContentUnsupported, fmt.Sprintf("Unsupported file type: %s", mimeType))
}

// CountRows returns the number of data rows in CSV text, assuming one
// header line. A trailing newline does not count as a row, so "h\na\nb\n"
// has 2 rows rather than a raw line count minus one of 3.
func CountRows(csv string) int {
	csv = strings.TrimRight(csv, "\r\n")
	if csv == "" {
		return 0
	}
	return strings.Count(csv, "\n")
}
