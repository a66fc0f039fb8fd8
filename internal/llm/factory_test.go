package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/contextboard/internal/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantNil  bool
		wantErr  bool
	}{
		{name: "disabled", config: Config{}, wantNil: true},
		{name: "openai", config: Config{Provider: "OpenAI", APIKey: "k"}, wantName: "openai"},
		{name: "claude alias", config: Config{Provider: "claude", APIKey: "k"}, wantName: "anthropic"},
		{name: "ollama", config: Config{Provider: "ollama"}, wantName: "ollama"},
		{name: "openai without key", config: Config{Provider: "openai"}, wantErr: true},
		{name: "unknown", config: Config{Provider: "gemini"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.wantNil {
				if p != nil {
					t.Errorf("Expected nil provider, got %s", p.Name())
				}
				return
			}
			if p.Name() != tt.wantName {
				t.Errorf("Expected %s, got %s", tt.wantName, p.Name())
			}
		})
	}
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(model.LLMConfig{
		Provider:  "ollama",
		Model:     "llama3.1",
		BaseURL:   "http://gpu-box:11434",
		Timeout:   3 * time.Second,
		MaxTokens: 200,
		NoProxy:   "gpu-box",
	})

	if cfg.Provider != "ollama" || cfg.Model != "llama3.1" || cfg.BaseURL != "http://gpu-box:11434" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 3*time.Second || cfg.MaxTokens != 200 || cfg.NoProxy != "gpu-box" {
		t.Errorf("Unexpected limits: %+v", cfg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "" {
		t.Error("Expected external tier disabled by default")
	}
	if cfg.Timeout <= 0 || cfg.Timeout > 10*time.Second {
		t.Errorf("Expected a bounded timeout of at most 10s, got %v", cfg.Timeout)
	}
}

func TestInterpretationInstruction(t *testing.T) {
	for _, ct := range model.ConceptTypes {
		if !strings.Contains(InterpretationInstruction, string(ct)) {
			t.Errorf("Instruction does not list concept type %s", ct)
		}
	}
	if !strings.Contains(InterpretationInstruction, "JSON") {
		t.Error("Instruction must demand JSON")
	}

	prompt := BuildInterpretationPrompt(`say "hi"`)
	if !strings.Contains(prompt, `"say \"hi\""`) {
		t.Errorf("Expected phrase to be quoted, got %q", prompt)
	}
}
