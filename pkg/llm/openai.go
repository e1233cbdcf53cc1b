package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"tripwise/pkg/utils"
)

// OpenAIClient completes prompts through the official OpenAI API.
type OpenAIClient struct {
	client       *openai.Client
	defaultModel string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client:       openai.NewClient(apiKey),
		defaultModel: openai.GPT4oMini,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: defaultTemperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: %w", utils.ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}
