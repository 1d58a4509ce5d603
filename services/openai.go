package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"reviewhub/config"
)

type openAIGenerator struct {
	client *openai.Client
	model  openai.ChatModel
}

func newOpenAIGenerator(cfg *config.Config) (*openAIGenerator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("missing OpenAI API key: set OPENAI_API_KEY")
	}

	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))
	return &openAIGenerator{
		client: &client,
		model:  openai.ChatModel(cfg.LLM.Model),
	}, nil
}

func (g *openAIGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from openai")
	}
	return cleanModelOutput(resp.Choices[0].Message.Content), nil
}
