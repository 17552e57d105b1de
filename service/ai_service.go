package service

import (
	"context"
	"fmt"

	"github.com/Prakash1256/PDF-AI-CHAT/config"
)

// AIService is the completion capability: prompt in, generated text out.
type AIService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewAIService selects a completion provider from the configuration.
func NewAIService(cfg *config.Config) (AIService, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiService(cfg.GeminiAPIKey, cfg.Model), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
}
