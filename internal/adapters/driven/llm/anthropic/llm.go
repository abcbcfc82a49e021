// Package anthropic provides an LLM service adapter using the Anthropic
// Messages API (via github.com/anthropics/anthropic-sdk-go).
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = domain.DefaultAnthropicModel
	DefaultTimeout = 120 * time.Second
)

// ErrAPIKeyRequired is returned when no API key is configured.
var ErrAPIKeyRequired = errors.New("anthropic: API key is required")

// Config holds configuration for the Anthropic LLM service.
type Config struct {
	// APIKey is the Anthropic API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.anthropic.com).
	BaseURL string

	// Model is the LLM model to use.
	Model string

	// HTTPClient is used for all calls (default: a client with DefaultTimeout).
	HTTPClient *http.Client
}

// LLMService provides LLM operations using Anthropic API.
type LLMService struct {
	client  anthropic.Client
	baseURL string
	model   string
}

// NewLLMService creates a new Anthropic LLM service.
// The SDK's own retries are disabled; a failed call is reported once.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(0),
	)

	return &LLMService{
		client:  client,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}, nil
}

// Chat sends one non-streaming Messages request. System messages are lifted
// into the system field. The first text block of the reply is returned.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	var system []anthropic.TextBlockParam
	params := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case "assistant":
			params = append(params, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	// Anthropic requires max_tokens to be set
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultAnthropicMaxTokens
	}

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(maxTokens),
		System:    system,
		Messages:  params,
	})
	if err != nil {
		return "", wrapError(err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("anthropic: no text content returned")
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

// errorBody is the API error envelope.
type errorBody struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// wrapError converts API error responses to domain.UpstreamError.
// Transport failures are returned wrapped.
func wrapError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("anthropic request: %w", err)
	}

	var body errorBody
	if jerr := json.Unmarshal([]byte(apiErr.RawJSON()), &body); jerr == nil && body.Error.Message != "" {
		return &domain.UpstreamError{
			Service: "anthropic",
			Code:    body.Error.Type,
			Message: body.Error.Message,
		}
	}
	return &domain.UpstreamError{
		Service: "anthropic",
		Code:    strconv.Itoa(apiErr.StatusCode),
		Message: fmt.Sprintf("Anthropic API returned status %d", apiErr.StatusCode),
	}
}
