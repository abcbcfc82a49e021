package services

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
)

// mockNotesSource implements driven.NotesSource for testing.
type mockNotesSource struct {
	pages []domain.Page
	err   error
	query string
}

func (m *mockNotesSource) Search(_ context.Context, query string) ([]domain.Page, error) {
	m.query = query
	return m.pages, m.err
}

// mockChatSource implements driven.ChatSource for testing.
type mockChatSource struct {
	messages []domain.Message
	err      error
}

func (m *mockChatSource) Search(_ context.Context, _ string) ([]domain.Message, error) {
	return m.messages, m.err
}

// mockFileStore implements driven.FileStore for testing.
type mockFileStore struct {
	exported    map[string][]byte
	downloaded  []byte
	exportErr   error
	downloadErr error

	exportCalls   []string
	downloadCalls int
	lastToken     string
}

func (m *mockFileStore) Export(_ context.Context, _, accessToken, exportMime string) ([]byte, error) {
	m.exportCalls = append(m.exportCalls, exportMime)
	m.lastToken = accessToken
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	return m.exported[exportMime], nil
}

func (m *mockFileStore) Download(_ context.Context, _, accessToken string) ([]byte, error) {
	m.downloadCalls++
	m.lastToken = accessToken
	return m.downloaded, m.downloadErr
}

// mockPDFExtractor implements driven.PDFExtractor for testing.
type mockPDFExtractor struct {
	text string
	err  error
	got  []byte
}

func (m *mockPDFExtractor) ExtractText(_ context.Context, data []byte) (string, error) {
	m.got = data
	return m.text, m.err
}

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	response string
	err      error
	messages []driven.ChatMessage
	opts     driven.ChatOptions
	calls    int
}

func (m *mockLLMService) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.calls++
	m.messages = messages
	m.opts = opts
	return m.response, m.err
}

func (m *mockLLMService) ModelName() string { return "mock-model" }
func (m *mockLLMService) Close() error      { return nil }
