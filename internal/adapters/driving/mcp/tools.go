package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// QueryInput is the input schema for the search tools.
type QueryInput struct {
	Query string `json:"query" jsonschema:"the free-text search query"`
}

// NotionOutput is the output schema for search_notion.
type NotionOutput struct {
	Pages []PageOutput `json:"pages"`
	Count int          `json:"count"`
	Error string       `json:"error,omitempty"`
}

// PageOutput represents a single Notion page or database.
type PageOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	LastEdited string `json:"last_edited"`
	Type       string `json:"type,omitempty"`
	Content    string `json:"content,omitempty"`
}

// SlackOutput is the output schema for search_slack.
type SlackOutput struct {
	Messages []MessageOutput `json:"messages"`
	Count    int             `json:"count"`
	Error    string          `json:"error,omitempty"`
}

// MessageOutput represents a single Slack message.
type MessageOutput struct {
	Timestamp string `json:"ts"`
	Text      string `json:"text"`
	Channel   string `json:"channel"`
	Username  string `json:"username"`
	Permalink string `json:"permalink,omitempty"`
}

// DriveInput is the input schema for get_drive_content.
type DriveInput struct {
	FileID      string `json:"file_id" jsonschema:"the Google Drive file id"`
	AccessToken string `json:"access_token" jsonschema:"an OAuth access token with drive.readonly scope"`
	MimeType    string `json:"mime_type" jsonschema:"the file MIME type as reported by Drive"`
}

// DriveOutput is the output schema for get_drive_content.
type DriveOutput struct {
	Content  string `json:"content,omitempty"`
	Type     string `json:"type"`
	RowCount int    `json:"row_count,omitempty"`
	Error    string `json:"error,omitempty"`
}

// AnswerInput is the input schema for answer_question.
type AnswerInput struct {
	Question string `json:"question" jsonschema:"the question to answer"`
	Context  string `json:"context,omitempty" jsonschema:"text gathered from earlier searches to answer from"`
}

// AnswerOutput is the output schema for answer_question.
type AnswerOutput struct {
	Answer string `json:"answer,omitempty"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_notion",
		Description: "Search Notion pages and databases, including page content",
	}, s.handleSearchNotion)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_slack",
		Description: "Search Slack messages in channels the bot can read",
	}, s.handleSearchSlack)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_drive_content",
		Description: "Extract text from a Google Drive file (Docs, Sheets, Slides, PDF, text)",
	}, s.handleDriveContent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "answer_question",
		Description: "Answer a question using only the supplied context",
	}, s.handleAnswer)
}

func (s *Server) handleSearchNotion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, NotionOutput, error) {
	res, err := s.ports.Search.SearchNotes(ctx, input.Query)
	if err != nil {
		return nil, NotionOutput{}, err
	}

	output := NotionOutput{
		Pages: make([]PageOutput, len(res.Pages)),
		Count: res.Count,
		Error: res.Error,
	}
	for i, p := range res.Pages {
		output.Pages[i] = PageOutput{
			ID:         p.ID,
			Title:      p.Title,
			URL:        p.URL,
			LastEdited: p.LastEdited.Format(time.RFC3339),
			Type:       p.Type,
			Content:    p.Content,
		}
	}
	return nil, output, nil
}

func (s *Server) handleSearchSlack(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, SlackOutput, error) {
	res, err := s.ports.Search.SearchMessages(ctx, input.Query)
	if err != nil {
		return nil, SlackOutput{}, err
	}

	output := SlackOutput{
		Messages: make([]MessageOutput, len(res.Messages)),
		Count:    res.Count,
		Error:    res.Error,
	}
	for i, m := range res.Messages {
		text := m.Text
		if m.FullText != "" {
			text = m.FullText
		}
		output.Messages[i] = MessageOutput{
			Timestamp: m.Timestamp,
			Text:      text,
			Channel:   m.Channel,
			Username:  m.Username,
		}
		if m.Permalink != nil {
			output.Messages[i].Permalink = *m.Permalink
		}
	}
	return nil, output, nil
}

func (s *Server) handleDriveContent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DriveInput,
) (*mcp.CallToolResult, DriveOutput, error) {
	res := s.ports.Content.GetDriveContent(ctx, domain.ContentRequest{
		FileID:      input.FileID,
		AccessToken: input.AccessToken,
		MimeType:    input.MimeType,
	})

	output := DriveOutput{Type: string(res.Type), Error: res.Error}
	if res.Content != nil {
		output.Content = *res.Content
	}
	if res.RowCount != nil {
		output.RowCount = *res.RowCount
	}
	return nil, output, nil
}

func (s *Server) handleAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	res := s.ports.Answer.Answer(ctx, domain.AnswerRequest{
		Question: input.Question,
		Context:  input.Context,
	})

	output := AnswerOutput{Model: res.Model, Error: res.Error}
	if res.Answer != nil {
		output.Answer = *res.Answer
	}
	return nil, output, nil
}
