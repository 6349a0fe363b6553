package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/heartmarshall/pebbl-backend/internal/config"
)

// OpenAI completes prompts through langchaingo's OpenAI-compatible client.
// Any server speaking the chat completions API can be targeted via BaseURL.
type OpenAI struct {
	model       llms.Model
	maxTokens   int
	temperature float64
}

// NewOpenAI creates an OpenAI-compatible completer.
func NewOpenAI(cfg config.LLMConfig) (*OpenAI, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return &OpenAI{model: model, maxTokens: cfg.MaxTokens, temperature: cfg.Temperature}, nil
}

// Complete sends prompt as a single human message.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.model.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithMaxTokens(o.maxTokens),
		llms.WithTemperature(o.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", errors.New("openai generate: empty response")
	}
	return resp.Choices[0].Content, nil
}
