package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

type fakeAIService struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeAIService) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestAnswerService(ai AIService) (*AnswerService, *ContextStore) {
	store := NewContextStore()
	return NewAnswerService(store, NewPromptComposer(0), ai), store
}

func TestAnswerNoDocument(t *testing.T) {
	ai := &fakeAIService{response: "should not be used"}
	answers, _ := newTestAnswerService(ai)

	got := answers.Answer(context.Background(), "anything?")

	assert.Equal(t, NoDocumentMessage, got)
	assert.Zero(t, ai.calls, "completion capability must not be called without a document")
}

func TestAnswerVerbatimOnSuccess(t *testing.T) {
	ai := &fakeAIService{response: "The summary is in chapter 2."}
	answers, store := newTestAnswerService(ai)
	store.Store(types.DocumentContext{Text: "some document text", PageCount: 1})

	got := answers.Answer(context.Background(), "where is the summary?")

	assert.Equal(t, "The summary is in chapter 2.", got)
	assert.Equal(t, 1, ai.calls)
}

func TestAnswerGroundedInLatestDocument(t *testing.T) {
	ai := &fakeAIService{response: "ok"}
	answers, store := newTestAnswerService(ai)

	store.Store(types.DocumentContext{Text: "alpha release notes", PageCount: 1})
	answers.Answer(context.Background(), "q1")
	assert.Contains(t, ai.lastPrompt, "alpha release notes")

	store.Store(types.DocumentContext{Text: "beta release notes", PageCount: 1})
	answers.Answer(context.Background(), "q2")
	assert.Contains(t, ai.lastPrompt, "beta release notes")
	assert.NotContains(t, ai.lastPrompt, "alpha release notes")
}

func TestAnswerErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Invalid API key",
			err:  errors.New("GEMINI_API_KEY is not set"),
			want: invalidKeyMessage,
		},
		{
			name: "Quota exceeded",
			err:  errors.New("googleapi: Error 429: quota exceeded for model"),
			want: quotaMessage,
		},
		{
			name: "Safety block",
			err:  errors.New("blocked: finish reason SAFETY"),
			want: safetyMessage,
		},
		{
			name: "Generic failure carries details",
			err:  errors.New("connection refused"),
			want: "Sorry, I encountered an error: connection refused",
		},
		{
			name: "Empty description falls to generic",
			err:  errors.New(""),
			want: "Sorry, I encountered an error: ",
		},
		{
			name: "Key check wins over quota",
			err:  errors.New("API_KEY rejected: quota lookup failed"),
			want: invalidKeyMessage,
		},
		{
			name: "Quota check wins over safety",
			err:  errors.New("quota exhausted while evaluating SAFETY settings"),
			want: quotaMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &fakeAIService{err: tt.err}
			answers, store := newTestAnswerService(ai)
			store.Store(types.DocumentContext{Text: "doc", PageCount: 1})

			got := answers.Answer(context.Background(), "question?")

			assert.Equal(t, tt.want, got)
		})
	}
}
