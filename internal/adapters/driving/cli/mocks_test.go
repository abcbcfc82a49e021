package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

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

type mockContentService struct {
	result *domain.ExtractedContent
	req    domain.ContentRequest
}

func (m *mockContentService) GetDriveContent(_ context.Context, req domain.ContentRequest) *domain.ExtractedContent {
	m.req = req
	return m.result
}

type mockAnswerService struct {
	result *domain.AnswerResult
	req    domain.AnswerRequest
}

func (m *mockAnswerService) Answer(_ context.Context, req domain.AnswerRequest) *domain.AnswerResult {
	m.req = req
	return m.result
}

// setupTestServices installs mocks and marks services ready so setup
// does not read the environment.
func setupTestServices(t *testing.T, search *mockSearchService, content *mockContentService, answer *mockAnswerService) {
	t.Helper()

	settings = &domain.Settings{}
	settings.ApplyDefaults()
	searchService = search
	contentService = content
	answerService = answer
	servicesReady = true

	t.Cleanup(func() {
		settings = nil
		appMetrics = nil
		searchService = nil
		contentService = nil
		answerService = nil
		servicesReady = false

		searchSource = string(domain.SourceNotion)
		searchJSON = false
		answerContextFile = ""
		answerJSON = false
		driveToken = ""
		driveMime = ""
	})
}

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return buf.String(), err
}
