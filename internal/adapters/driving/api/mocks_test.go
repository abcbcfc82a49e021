package api

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	pages    *domain.PageResults
	messages *domain.MessageResults
	err      error
	panicMsg string

	lastQuery  string
	lastSource domain.Source
}

func (m *mockSearchService) SearchNotes(_ context.Context, query string) (*domain.PageResults, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	m.lastQuery, m.lastSource = query, domain.SourceNotion
	return m.pages, m.err
}

func (m *mockSearchService) SearchMessages(_ context.Context, query string) (*domain.MessageResults, error) {
	m.lastQuery, m.lastSource = query, domain.SourceSlack
	return m.messages, m.err
}

// mockContentService implements driving.ContentService for testing.
type mockContentService struct {
	result  *domain.ExtractedContent
	lastReq *domain.ContentRequest
}

func (m *mockContentService) GetDriveContent(_ context.Context, req domain.ContentRequest) *domain.ExtractedContent {
	m.lastReq = &req
	return m.result
}

// mockAnswerService implements driving.AnswerService for testing.
type mockAnswerService struct {
	result  *domain.AnswerResult
	lastReq *domain.AnswerRequest
}

func (m *mockAnswerService) Answer(_ context.Context, req domain.AnswerRequest) *domain.AnswerResult {
	m.lastReq = &req
	if m.result == nil {
		return domain.NewAnswer("ok", "mock-model")
	}
	return m.result
}
