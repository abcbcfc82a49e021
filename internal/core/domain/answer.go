package domain

// AnswerRequest is a question over caller-assembled context.
type AnswerRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// AnswerResult is the answer generator response.
type AnswerResult struct {
	// Answer is the generated text, nil on failure.
	Answer *string `json:"answer"`

	// Model is the model identifier that produced the answer.
	Model string `json:"model,omitempty"`

	// Error describes why Answer is nil.
	Error string `json:"error,omitempty"`
}

// NewAnswer builds a successful answer result.
func NewAnswer(text, model string) *AnswerResult {
	return &AnswerResult{Answer: &text, Model: model}
}

// AnswerFailed builds a result with a nil answer.
func AnswerFailed(msg string) *AnswerResult {
	return &AnswerResult{Error: msg}
}
