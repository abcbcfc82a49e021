package domain

import "time"

// Source identifies an external service that can be searched.
type Source string

// Searchable sources.
const (
	// SourceNotion is the notes/wiki service.
	SourceNotion Source = "notion"

	// SourceSlack is the team chat service.
	SourceSlack Source = "slack"
)

// IsValid returns true if the source is recognised.
func (s Source) IsValid() bool {
	switch s {
	case SourceNotion, SourceSlack:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Source) String() string {
	return string(s)
}

// DisplayName returns the human-readable service name used in messages.
func (s Source) DisplayName() string {
	switch s {
	case SourceNotion:
		return "Notion"
	case SourceSlack:
		return "Slack"
	default:
		return string(s)
	}
}

// Page is a single notes/wiki search hit.
type Page struct {
	// ID is the upstream page or database identifier.
	ID string `json:"id"`

	// Title is resolved through the title rule chain, never empty.
	Title string `json:"title"`

	// URL is the canonical link to the page.
	URL string `json:"url"`

	// LastEdited is the upstream last-modified timestamp.
	LastEdited time.Time `json:"lastEdited"`

	// Type is the upstream object kind ("page" or "database").
	Type string `json:"type,omitempty"`

	// Content is linearised block text, capped at the content budget.
	Content string `json:"content,omitempty"`
}

// Message is a single chat search hit.
type Message struct {
	// Timestamp is the upstream message timestamp token.
	Timestamp string `json:"ts"`

	// Text is the message text, possibly truncated.
	Text string `json:"text"`

	// Channel is the channel display name.
	Channel string `json:"channel"`

	// Username is the author display name.
	Username string `json:"username"`

	// Permalink is the deep link. Nil when found by the channel scan.
	Permalink *string `json:"permalink"`

	// FullText holds the untruncated text when Text was shortened.
	FullText string `json:"fullText,omitempty"`
}

// PageResults is the notes adapter response envelope.
// Count always equals len(Pages); when Error is set Pages is empty.
type PageResults struct {
	Pages []Page `json:"pages"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// NewPageResults builds a populated envelope.
func NewPageResults(pages []Page) *PageResults {
	if pages == nil {
		pages = []Page{}
	}
	return &PageResults{Pages: pages, Count: len(pages)}
}

// PageResultsError builds an error envelope with an empty list.
func PageResultsError(msg string) *PageResults {
	return &PageResults{Pages: []Page{}, Error: msg}
}

// MessageResults is the chat adapter response envelope.
// Count always equals len(Messages); when Error is set Messages is empty.
type MessageResults struct {
	Messages []Message `json:"messages"`
	Count    int       `json:"count"`
	Error    string    `json:"error,omitempty"`
}

// NewMessageResults builds a populated envelope.
func NewMessageResults(messages []Message) *MessageResults {
	if messages == nil {
		messages = []Message{}
	}
	return &MessageResults{Messages: messages, Count: len(messages)}
}

// MessageResultsError builds an error envelope with an empty list.
func MessageResultsError(msg string) *MessageResults {
	return &MessageResults{Messages: []Message{}, Error: msg}
}
