package model

import "time"

// Config holds all contextboard settings
type Config struct {
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Matcher     MatcherConfig     `yaml:"matcher" mapstructure:"matcher"`
	Catalog     CatalogConfig     `yaml:"catalog" mapstructure:"catalog"`
	Session     SessionConfig     `yaml:"session" mapstructure:"session"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// LLMConfig configures the external interpreter.
// An empty provider disables the external tier.
type LLMConfig struct {
	Provider  string        `yaml:"provider" mapstructure:"provider" validate:"omitempty,oneof=openai anthropic claude ollama"`
	Model     string        `yaml:"model" mapstructure:"model"`
	APIKey    string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens" validate:"gte=0"`

	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`

	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// MatcherConfig tunes the promotion matcher
type MatcherConfig struct {
	Threshold float64 `yaml:"threshold" mapstructure:"threshold" validate:"gte=0,lte=1"`
}

// CatalogConfig points at an optional catalog override file
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" mapstructure:"path"`
}

// SessionConfig controls how long an idle board is kept
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl" validate:"gte=0"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers" validate:"gte=0"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "", // external tier disabled by default
			Timeout:           10 * time.Second,
			MaxTokens:         500,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Matcher: MatcherConfig{
			Threshold: 0.7,
		},
		Session: SessionConfig{
			TTL: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for out-of-range values
func (c *Config) Validate() error {
	return validateStruct(c)
}
