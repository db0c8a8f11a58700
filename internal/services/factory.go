package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/config"
)

// NewLLMClientFromConfig wires the configured provider and its ordered model list.
func NewLLMClientFromConfig(ctx context.Context, cfg *config.Config, log *zap.Logger) (LLMClient, error) {
	var completer ChatCompleter

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		gemini, err := NewGeminiService(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.RequestTimeout)
		if err != nil {
			return nil, err
		}
		completer = gemini
	case config.ProviderGroq:
		completer = NewGroqService(cfg.LLM.Groq.BaseURL, cfg.LLM.Groq.APIKey, cfg.LLM.RequestTimeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLM.Provider)
	}

	return NewLLMClient(completer, cfg.Models(), log), nil
}
