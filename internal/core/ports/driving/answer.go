package driving

import (
	"context"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

// AnswerService answers questions over caller-assembled context.
type AnswerService interface {
	// Answer generates an answer. Failures are reported in the result,
	// never as an error.
	Answer(ctx context.Context, req domain.AnswerRequest) *domain.AnswerResult
}
