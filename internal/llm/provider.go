package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/ppiankov/contextboard/internal/model"
	"go.uber.org/zap"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends one system instruction plus one user prompt and returns the raw reply
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for a single completion
type CompletionRequest struct {
	// System is the fixed instruction constraining the reply format
	System string

	// Prompt is the user message
	Prompt string

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the provider's raw reply
type CompletionResponse struct {
	// Text is the reply body, untrimmed of any markdown
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout bounds every API request
	Timeout time.Duration

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string

	// Logger receives availability diagnostics; nil disables them
	Logger *zap.Logger
}

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxTokens = 500
)

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   defaultTimeout,
		MaxTokens: defaultMaxTokens,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:   modelConfig.Provider,
		Model:      modelConfig.Model,
		APIKey:     modelConfig.APIKey,
		BaseURL:    modelConfig.BaseURL,
		Timeout:    modelConfig.Timeout,
		MaxTokens:  modelConfig.MaxTokens,
		HTTPProxy:  modelConfig.HTTPProxy,
		HTTPSProxy: modelConfig.HTTPSProxy,
		NoProxy:    modelConfig.NoProxy,
	}
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// resolve fills model and token limits from the request, then the config
func (c Config) resolve(req CompletionRequest, fallbackModel string) (string, int) {
	m := req.Model
	if m == "" {
		m = c.Model
	}
	if m == "" {
		m = fallbackModel
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return m, maxTokens
}

func validateRequest(req CompletionRequest) error {
	if req.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}
