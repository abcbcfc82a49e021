package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/metrics"
	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/services"
)

type testServer struct {
	*Server
	search  *mockSearchService
	content *mockContentService
	answer  *mockAnswerService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		search:  &mockSearchService{},
		content: &mockContentService{},
		answer:  &mockAnswerService{},
	}
	srv, err := NewServer(&Ports{Search: ts.search, Content: ts.content, Answer: ts.answer, Metrics: metrics.New()})
	require.NoError(t, err)
	ts.Server = srv
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestNewServer_ValidatesPorts(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)

	_, err = NewServer(&Ports{Search: &mockSearchService{}, Content: &mockContentService{}})
	assert.ErrorIs(t, err, ErrMissingAnswerService)

	_, err = NewServer(&Ports{Search: &mockSearchService{}, Answer: &mockAnswerService{}})
	assert.ErrorIs(t, err, ErrMissingContentService)

	_, err = NewServer(&Ports{Content: &mockContentService{}, Answer: &mockAnswerService{}})
	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestOptions_Preflight(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/search", "/api/search"} {
		rec := ts.do(http.MethodOptions, path+"?source=notion", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assertCORS(t, rec)
	}
	assert.Empty(t, ts.search.lastQuery)
}

func TestSearch_QueryRequired(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/search?source=notion", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Query required"}, decode(t, rec))
	assertCORS(t, rec)
}

func TestSearch_InvalidSource(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/search?source=jira&query=x", "/search?query=x"} {
		rec := ts.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["error"], "Invalid source")
	}
}

func TestSearch_Notion(t *testing.T) {
	ts := newTestServer(t)
	ts.search.pages = domain.NewPageResults([]domain.Page{
		{ID: "p1", Title: "Q3 Roadmap", URL: "https://notion.so/p1", LastEdited: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC), Content: "Ship search"},
	})

	rec := ts.do(http.MethodGet, "/search?source=notion&query=roadmap", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assertCORS(t, rec)
	assert.Equal(t, "roadmap", ts.search.lastQuery)

	body := decode(t, rec)
	assert.EqualValues(t, 1, body["count"])
	pages := body["pages"].([]any)
	require.Len(t, pages, 1)
	page := pages[0].(map[string]any)
	assert.Equal(t, "Q3 Roadmap", page["title"])
	assert.Equal(t, "2024-07-01T10:00:00Z", page["lastEdited"])
	assert.Equal(t, "Ship search", page["content"])
}

func TestSearch_SlackViaAliasAndPost(t *testing.T) {
	ts := newTestServer(t)
	ts.search.messages = domain.NewMessageResults([]domain.Message{{Timestamp: "1.1", Text: "deploy", Channel: "eng", Username: "alice"}})

	rec := ts.do(http.MethodPost, "/api/search?source=slack&query=deploy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SourceSlack, ts.search.lastSource)

	body := decode(t, rec)
	assert.EqualValues(t, 1, body["count"])
	assert.Len(t, body["messages"], 1)
}

func TestSearch_UnhandledErrorIs500(t *testing.T) {
	ts := newTestServer(t)
	ts.search.err = assert.AnError

	rec := ts.do(http.MethodGet, "/search?source=notion&query=x", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, assert.AnError.Error(), decode(t, rec)["error"])
	assertCORS(t, rec)
}

func TestSearch_PanicIs500(t *testing.T) {
	ts := newTestServer(t)
	ts.search.panicMsg = "boom"

	rec := ts.do(http.MethodGet, "/search?source=notion&query=x", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "boom")
}

func TestDriveContent(t *testing.T) {
	ts := newTestServer(t)
	ts.content.result = domain.NewExtractedContent("f1", domain.ContentDocument, "hello")

	rec := ts.do(http.MethodGet, "/search?action=getDriveContent&fileId=f1&accessToken=tok&mimeType=application/vnd.google-apps.document", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, ts.content.lastReq)
	assert.Equal(t, domain.ContentRequest{FileID: "f1", AccessToken: "tok", MimeType: "application/vnd.google-apps.document"}, *ts.content.lastReq)
	assert.Equal(t, "hello", decode(t, rec)["content"])
}

func TestDriveContent_MissingTokenFallsThrough(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/search?action=getDriveContent&fileId=f1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "Invalid source")
	assert.Nil(t, ts.content.lastReq)
}

func TestAnswer_RequestParsing(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		want   domain.AnswerRequest
	}{
		{
			name:   "object body",
			target: "/search?action=answer",
			body:   `{"question":"How many signups?","context":"name,email\na@x.com\n"}`,
			want:   domain.AnswerRequest{Question: "How many signups?", Context: "name,email\na@x.com\n"},
		},
		{
			name:   "string body holding json",
			target: "/search?action=answer",
			body:   `"{\"question\":\"q\",\"context\":\"c\"}"`,
			want:   domain.AnswerRequest{Question: "q", Context: "c"},
		},
		{
			name:   "query parameter json",
			target: `/search?action=answer&query=%7B%22question%22%3A%22q%22%2C%22context%22%3A%22c%22%7D`,
			want:   domain.AnswerRequest{Question: "q", Context: "c"},
		},
		{
			name:   "plain query parameter",
			target: "/search?action=answer&query=what+changed",
			want:   domain.AnswerRequest{Question: "what changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			method := http.MethodGet
			if tt.body != "" {
				method = http.MethodPost
			}

			rec := ts.do(method, tt.target, tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, ts.answer.lastReq)
			assert.Equal(t, tt.want, *ts.answer.lastReq)
			assert.Equal(t, "ok", decode(t, rec)["answer"])
		})
	}
}

func TestAnswer_MalformedBodyIs500(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/search?action=answer", `{"question":`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])
	assert.Nil(t, ts.answer.lastReq)
}

func TestUnconfiguredServices(t *testing.T) {
	srv, err := NewServer(&Ports{
		Search:  services.NewSearchService(nil, nil),
		Content: services.NewContentService(nil, nil),
		Answer:  services.NewAnswerService(nil, 0),
	})
	require.NoError(t, err)
	ts := &testServer{Server: srv}

	rec := ts.do(http.MethodGet, "/search?source=notion&query=roadmap", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": "Notion not configured", "pages": []any{}, "count": float64(0)}, decode(t, rec))

	rec = ts.do(http.MethodGet, "/search?source=slack&query=deploy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"error": "Slack not configured", "messages": []any{}, "count": float64(0)}, decode(t, rec))

	rec = ts.do(http.MethodPost, "/search?action=answer",
		`{"question":"How many signups?","context":"name,email\na@x.com\nb@x.com\n"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Nil(t, body["answer"])
	assert.Contains(t, body, "answer")
	assert.Equal(t, "AI not configured. Set ANTHROPIC_API_KEY to enable answers.", body["error"])
}

func TestHealthzAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	ts.do(http.MethodGet, "/search?source=notion", "")

	rec = ts.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ctrlf_http_requests_total{action="notion",status="400"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])
}
