package services

import (
	"context"
	"fmt"
	"strings"

	"reviewhub/config"
)

// TextGenerator sends a prompt to a hosted model API and returns the raw
// text reply. Implementations exist for Gemini, OpenAI, and Anthropic.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

func newGenerator(cfg *config.Config) (TextGenerator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return newGeminiGenerator(cfg)
	case config.ProviderOpenAI:
		return newOpenAIGenerator(cfg)
	case config.ProviderAnthropic:
		return newAnthropicGenerator(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}

// cleanModelOutput strips markdown code fences some models wrap replies in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```text")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
