package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driven"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// answerSystemPrompt is the fixed instruction sent with every question.
const answerSystemPrompt = `You are a search assistant for a team's workspace.
Answer the user's question using ONLY the context provided below.
- Cite the source of each fact by name (for example the Notion page title or the Slack channel).
- Be concise and direct.
- When the context contains tables, spreadsheets or lists, count the rows carefully and report exact numbers.
- If the context does not contain the answer, say so plainly instead of guessing.`

// answerUserPrompt embeds the question and the full context.
const answerUserPrompt = `Question: %s

Context:
%s`

// noContext is used when the caller sends an empty context.
const noContext = "(no context provided)"

// AnswerService answers questions with a language model.
type AnswerService struct {
	llm       driven.LLMService
	maxTokens int
}

// NewAnswerService creates a new answer service.
// The llm parameter is optional (can be nil).
func NewAnswerService(llm driven.LLMService, maxTokens int) *AnswerService {
	if maxTokens <= 0 {
		maxTokens = domain.DefaultAnthropicMaxTokens
	}
	return &AnswerService{
		llm:       llm,
		maxTokens: maxTokens,
	}
}

// Answer generates an answer to the question from the given context.
func (s *AnswerService) Answer(ctx context.Context, req domain.AnswerRequest) *domain.AnswerResult {
	if s.llm == nil {
		return domain.AnswerFailed(domain.ErrLLMUnavailable.Error())
	}

	logger.Section("Answer")
	logger.Debug("question: %q, context: %d bytes", req.Question, len(req.Context))

	messages := []driven.ChatMessage{
		{Role: "system", Content: answerSystemPrompt},
		{Role: "user", Content: buildUserPrompt(req)},
	}

	text, err := s.llm.Chat(ctx, messages, driven.ChatOptions{MaxTokens: s.maxTokens})
	if err != nil {
		logger.Warn("answer generation failed: %v", err)
		if uerr, ok := domain.AsUpstreamError(err); ok {
			return domain.AnswerFailed(uerr.Message)
		}
		return domain.AnswerFailed(err.Error())
	}

	return domain.NewAnswer(text, s.llm.ModelName())
}

func buildUserPrompt(req domain.AnswerRequest) string {
	body := req.Context
	if strings.TrimSpace(body) == "" {
		body = noContext
	}
	return fmt.Sprintf(answerUserPrompt, req.Question, body)
}
