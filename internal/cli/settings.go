package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/contextboard/internal/model"
)

// envPrefix namespaces environment overrides, e.g. CONTEXTBOARD_LLM_PROVIDER
const envPrefix = "CONTEXTBOARD"

// configureViper registers defaults and environment lookups on v
func configureViper(v *viper.Viper) {
	d := model.DefaultConfig()

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.api_key", d.LLM.APIKey)
	v.SetDefault("llm.base_url", d.LLM.BaseURL)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
	v.SetDefault("llm.max_tokens", d.LLM.MaxTokens)
	v.SetDefault("llm.http_proxy", d.LLM.HTTPProxy)
	v.SetDefault("llm.https_proxy", d.LLM.HTTPSProxy)
	v.SetDefault("llm.no_proxy", d.LLM.NoProxy)
	v.SetDefault("llm.requests_per_second", d.LLM.RequestsPerSecond)
	v.SetDefault("llm.burst", d.LLM.Burst)
	v.SetDefault("matcher.threshold", d.Matcher.Threshold)
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("session.ttl", d.Session.TTL)
	v.SetDefault("concurrency.workers", d.Concurrency.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	// Read in environment variables that match CONTEXTBOARD_*
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// loadConfig resolves flags > env > config file > defaults into a Config
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyProviderEnv(&cfg.LLM)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyProviderEnv fills credentials from the providers' conventional
// environment variables when the config leaves them empty
func applyProviderEnv(llm *model.LLMConfig) {
	switch strings.ToLower(llm.Provider) {
	case "openai":
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	case "anthropic", "claude":
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if llm.BaseURL == "" {
			llm.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}
}

// newLogger builds the process logger; verbose forces debug level
func newLogger(cfg model.LogConfig, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		config.Level = level
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
