package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripwise/pkg/utils"
)

const geminiDefaultModel = "gemini-1.5-flash"

// GeminiClient completes prompts through Google's Gemini API.
type GeminiClient struct {
	client       *genai.Client
	defaultModel string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiClient{
		client:       client,
		defaultModel: geminiDefaultModel,
	}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	m := c.client.GenerativeModel(model)
	m.SetTemperature(defaultTemperature)
	if maxTokens > 0 {
		m.SetMaxOutputTokens(int32(maxTokens))
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: %w", utils.ErrEmptyCompletion)
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close releases the underlying API connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
