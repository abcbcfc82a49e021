package api

import (
	"errors"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/metrics"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
)

// Errors for missing required dependencies.
var (
	ErrMissingSearchService  = errors.New("api: search service is required")
	ErrMissingContentService = errors.New("api: content service is required")
	ErrMissingAnswerService  = errors.New("api: answer service is required")
)

// Ports holds the driving ports the HTTP adapter depends on.
type Ports struct {
	Search  driving.SearchService
	Content driving.ContentService
	Answer  driving.AnswerService

	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Validate checks that all required ports are provided.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}
