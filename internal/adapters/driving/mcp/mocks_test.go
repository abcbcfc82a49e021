package mcp

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	pages    *domain.PageResults
	messages *domain.MessageResults
	err      error
	query    string
}

func (m *mockSearchService) SearchNotes(_ context.Context, query string) (*domain.PageResults, error) {
	m.query = query
	return m.pages, m.err
}

func (m *mockSearchService) SearchMessages(_ context.Context, query string) (*domain.MessageResults, error) {
	m.query = query
	return m.messages, m.err
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	result *domain.ExtractedContent
	req    domain.ContentRequest
}

func (m *mockContentService) GetDriveContent(_ context.Context, req domain.ContentRequest) *domain.ExtractedContent {
	m.req = req
	return m.result
}

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	result *domain.AnswerResult
	req    domain.AnswerRequest
}

func (m *mockAnswerService) Answer(_ context.Context, req domain.AnswerRequest) *domain.AnswerResult {
	m.req = req
	return m.result
}

func validPorts() *Ports {
	return &Ports{
		Search:  &mockSearchService{},
		Content: &mockContentService{},
		Answer:  &mockAnswerService{},
	}
}
