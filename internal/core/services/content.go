package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// extractStrategy extracts one content kind.
type extractStrategy func(ctx context.Context, req domain.ContentRequest, kind domain.ContentKind) *domain.ExtractedContent

// ContentService extracts text from stored files, choosing a strategy
// from the declared MIME type.
type ContentService struct {
	store      driven.FileStore
	pdf        driven.PDFExtractor
	strategies map[domain.ContentKind]extractStrategy
}

// NewContentService creates a new content service.
// The pdf extractor is optional; without it PDF files report an error.
func NewContentService(store driven.FileStore, pdf driven.PDFExtractor) *ContentService {
	s := &ContentService{
		store: store,
		pdf:   pdf,
	}
	s.strategies = map[domain.ContentKind]extractStrategy{
		domain.ContentDocument:     s.exportText,
		domain.ContentSpreadsheet:  s.exportSpreadsheet,
		domain.ContentPresentation: s.exportText,
		domain.ContentPDF:          s.extractPDF,
		domain.ContentText:         s.downloadText,
	}
	return s
}

// GetDriveContent extracts text from a file.
func (s *ContentService) GetDriveContent(ctx context.Context, req domain.ContentRequest) *domain.ExtractedContent {
	kind := domain.ClassifyContent(req.MimeType)
	logger.Debug("drive content: file=%s mime=%q kind=%s", req.FileID, req.MimeType, kind)

	strategy, ok := s.strategies[kind]
	if !ok {
		return domain.UnsupportedContent(req.FileID, req.MimeType)
	}
	return strategy(ctx, req, kind)
}

func (s *ContentService) exportText(ctx context.Context, req domain.ContentRequest, kind domain.ContentKind) *domain.ExtractedContent {
	mime, _ := kind.ExportMime()
	data, err := s.store.Export(ctx, req.FileID, req.AccessToken, mime)
	if err != nil {
		return s.fetchFailed(req, err)
	}
	return domain.NewExtractedContent(req.FileID, kind, string(data))
}

func (s *ContentService) exportSpreadsheet(ctx context.Context, req domain.ContentRequest, kind domain.ContentKind) *domain.ExtractedContent {
	data, err := s.store.Export(ctx, req.FileID, req.AccessToken, domain.ExportMimeCSV)
	if err != nil {
		return s.fetchFailed(req, err)
	}

	// Rows are counted on the full export, before truncation.
	csv := string(data)
	rows := domain.CountRows(csv)

	result := domain.NewExtractedContent(req.FileID, kind, csv)
	result.RowCount = &rows
	return result
}

func (s *ContentService) extractPDF(ctx context.Context, req domain.ContentRequest, kind domain.ContentKind) *domain.ExtractedContent {
	if s.pdf == nil {
		return domain.ExtractionFailed(req.FileID, kind, "PDF extraction not available")
	}

	data, err := s.store.Download(ctx, req.FileID, req.AccessToken)
	if err != nil {
		return s.fetchFailed(req, err)
	}

	text, err := s.pdf.ExtractText(ctx, data)
	if err != nil {
		logger.Warn("pdf extraction failed for %s: %v", req.FileID, err)
		return domain.ExtractionFailed(req.FileID, kind, fmt.Sprintf("Failed to extract PDF text: %v", err))
	}
	return domain.NewExtractedContent(req.FileID, kind, text)
}

func (s *ContentService) downloadText(ctx context.Context, req domain.ContentRequest, kind domain.ContentKind) *domain.ExtractedContent {
	data, err := s.store.Download(ctx, req.FileID, req.AccessToken)
	if err != nil {
		return s.fetchFailed(req, err)
	}
	return domain.NewExtractedContent(req.FileID, kind, string(data))
}

func (s *ContentService) fetchFailed(req domain.ContentRequest, err error) *domain.ExtractedContent {
	logger.Warn("drive fetch failed for %s: %v", req.FileID, err)
	msg := err.Error()
	if upstream, ok := domain.AsUpstreamError(err); ok {
		msg = upstream.Message
	}
	return domain.ExtractionFailed(req.FileID, domain.ContentError, msg)
}
