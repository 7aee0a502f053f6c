package briefing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an assistant that writes concise, objective military OSINT intelligence briefings."

// OpenAIGenerator adapts the OpenAI chat completion API to the TextGenerator
// contract.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator builds a generator, or nil when no API key is
// configured so the composer stays on the deterministic path.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{client: openai.NewClient(apiKey), model: model}
}

// GenerateText requests a completion for the prompt. Any transport error,
// empty choice list, or blank content is an error for the caller to treat as
// a fallback trigger.
func (g *OpenAIGenerator) GenerateText(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		N:           1,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
