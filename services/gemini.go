package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"reviewhub/config"
)

type geminiGenerator struct {
	model *genai.GenerativeModel
}

func newGeminiGenerator(cfg *config.Config) (*geminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("missing Gemini API key: set GEMINI_API_KEY or GOOGLE_API_KEY")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.LLM.Model)
	model.SetTemperature(cfg.LLM.Temperature)
	model.SetMaxOutputTokens(cfg.LLM.MaxOutputTokens)
	return &geminiGenerator{model: model}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return cleanModelOutput(sb.String()), nil
}
