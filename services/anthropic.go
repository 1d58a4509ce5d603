package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"reviewhub/config"
)

type anthropicGenerator struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func newAnthropicGenerator(cfg *config.Config) (*anthropicGenerator, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, errors.New("missing Anthropic API key: set ANTHROPIC_API_KEY")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	return &anthropicGenerator{
		client:    &client,
		model:     anthropic.Model(cfg.LLM.Model),
		maxTokens: int64(cfg.LLM.MaxOutputTokens),
	}, nil
}

func (g *anthropicGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", errors.New("no response from anthropic")
	}
	return cleanModelOutput(resp.Content[0].Text), nil
}
