package service

import (
	"context"
	"fmt"
	"strings"
)

const (
	invalidKeyMessage = "Invalid API key. Please check your GEMINI_API_KEY in .env file."
	quotaMessage      = "API quota exceeded. Please wait and try again."
	safetyMessage     = "Content was blocked for safety reasons. Please try rephrasing your question."
)

// AnswerService turns a user question into a textual answer. Completion
// failures are absorbed into fixed user-facing messages so transient LLM
// issues never break the conversational flow.
type AnswerService struct {
	store    *ContextStore
	composer *PromptComposer
	ai       AIService
}

func NewAnswerService(store *ContextStore, composer *PromptComposer, ai AIService) *AnswerService {
	return &AnswerService{
		store:    store,
		composer: composer,
		ai:       ai,
	}
}

// Answer resolves every failure path to a human-readable string; it never
// returns an error. The question must already be trimmed and non-empty, which
// the request boundary enforces.
func (s *AnswerService) Answer(ctx context.Context, question string) string {
	content := s.store.CurrentText()
	if content == "" {
		return NoDocumentMessage
	}

	prompt := s.composer.Compose(question, content)

	answer, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		return classifyCompletionError(err)
	}
	return answer
}

// classifyCompletionError maps a provider failure to one of the fixed
// user-facing messages by ordered substring checks against the error text.
// Best-effort matching on wording, kept in one place so it can be swapped for
// structured error codes if a provider ever exposes them.
func classifyCompletionError(err error) string {
	var details string
	if err != nil {
		details = err.Error()
	}

	switch {
	case strings.Contains(details, "API_KEY"):
		return invalidKeyMessage
	case strings.Contains(details, "quota"):
		return quotaMessage
	case strings.Contains(details, "SAFETY"):
		return safetyMessage
	default:
		return fmt.Sprintf("Sorry, I encountered an error: %s", details)
	}
}
