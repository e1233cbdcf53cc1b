package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tripwise/pkg/utils"
)

// SystemPrompt is sent with every completion request so providers return a
// bare JSON document instead of a chatty answer.
const SystemPrompt = "You are a travel planner. Return ONLY valid JSON, no markdown, no explanation. Keep responses concise."

const defaultTemperature = 0.7

// Client is the uniform contract over hosted completion providers. An empty
// model selects the provider's default. Implementations must honour ctx
// cancellation on the underlying call.
type Client interface {
	Complete(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}

// Config selects and credentials a completion provider at application start.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// LoadConfig reads the provider selection from the environment.
func LoadConfig() Config {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "groq"
	}
	return Config{
		Provider: provider,
		APIKey:   os.Getenv("LLM_API_KEY"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
		Model:    os.Getenv("LLM_MODEL"),
	}
}

// NewClient builds the provider implementation named by cfg. A missing API
// key fails here, before any request is attempted.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: LLM_API_KEY is not set", utils.ErrNotConfigured)
	}

	switch strings.ToLower(cfg.Provider) {
	case "groq":
		return NewGroqClient(cfg.APIKey, cfg.BaseURL), nil
	case "openai":
		return NewOpenAIClient(cfg.APIKey), nil
	case "gemini":
		return NewGeminiClient(context.Background(), cfg.APIKey)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
