package cli

import (
	"fmt"
	"time"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/metrics"
	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/transport"
	"github.com/custodia-labs/ctrlf-search/internal/connectors/google/drive"
	"github.com/custodia-labs/ctrlf-search/internal/connectors/notion"
	"github.com/custodia-labs/ctrlf-search/internal/connectors/slack"
	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/core/services"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
	"github.com/custodia-labs/ctrlf-search/internal/normalisers/pdf"
)

// minLLMTimeout keeps answer generation from hitting a short search timeout.
const minLLMTimeout = 60 * time.Second

// application is the wired set of services.
type application struct {
	metrics *metrics.Metrics
	search  *services.SearchService
	content *services.ContentService
	answer  *services.AnswerService
}

// wire builds connectors for every capability that has credentials.
// Capabilities without credentials are left nil and report "not configured".
func wire(s *domain.Settings) (*application, error) {
	m := metrics.New()
	timeout := s.Server.UpstreamTimeout()

	var notes driven.NotesSource
	if s.Notion.IsConfigured() {
		c, err := notion.New(notion.ConfigFromSettings(s.Notion, transport.NewClient(transport.UpstreamNotion, timeout, m)))
		if err != nil {
			return nil, fmt.Errorf("notion: %w", err)
		}
		notes = c
	} else {
		logger.Debug("notion: no token, search disabled")
	}

	var chat driven.ChatSource
	if s.Slack.IsConfigured() {
		c, err := slack.New(slack.ConfigFromSettings(s.Slack, transport.NewClient(transport.UpstreamSlack, timeout, m)))
		if err != nil {
			return nil, fmt.Errorf("slack: %w", err)
		}
		chat = c
	} else {
		logger.Debug("slack: no token, search disabled")
	}

	store := drive.New(&drive.Config{
		Endpoint:   s.Drive.Endpoint,
		HTTPClient: transport.NewClient(transport.UpstreamDrive, timeout, m),
	})

	var extractor driven.PDFExtractor
	if err := pdf.CheckAvailable(); err != nil {
		logger.Debug("pdf extraction disabled: %v\n%s", err, pdf.InstallInstructions())
	} else {
		extractor = pdf.New()
	}

	var llm driven.LLMService
	if s.Anthropic.IsConfigured() {
		svc, err := anthropic.NewLLMService(anthropic.Config{
			APIKey:     s.Anthropic.APIKey,
			BaseURL:    s.Anthropic.BaseURL,
			Model:      s.Anthropic.Model,
			HTTPClient: transport.NewClient(transport.UpstreamAnthropic, max(timeout, minLLMTimeout), m),
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic: %w", err)
		}
		llm = svc
	} else {
		logger.Debug("anthropic: no API key, answers disabled")
	}

	return &application{
		metrics: m,
		search:  services.NewSearchService(notes, chat),
		content: services.NewContentService(store, extractor),
		answer:  services.NewAnswerService(llm, s.Anthropic.MaxTokens),
	}, nil
}
