package llm

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TIMESTABLE_LLM_PROVIDER", "TIMESTABLE_ANTHROPIC_API_KEY", "TIMESTABLE_OPENAI_API_KEY",
		"TIMESTABLE_GEMINI_API_KEY", "TIMESTABLE_OPENROUTER_API_KEY", "TIMESTABLE_OPENAI_BASE_URL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNamesVariable(t *testing.T) {
	err := Config{Provider: "gemini"}.Validate()
	if err == nil || err.Error() != "TIMESTABLE_GEMINI_API_KEY is required for the gemini provider" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("TIMESTABLE_LLM_PROVIDER", "openai")
	t.Setenv("TIMESTABLE_OPENAI_API_KEY", "sk-env")
	t.Setenv("TIMESTABLE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("TIMESTABLE_OPENAI_BASE_URL", "http://localhost:8080/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("unexpected config: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("expected default anthropic model, got %q", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-oai" {
		t.Fatalf("expected openai to win over anthropic, got %q", cfg.Provider)
	}
}

func TestResolveConfig(t *testing.T) {
	t.Run("explicit provider must be valid", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("TIMESTABLE_LLM_PROVIDER", "gemini")
		t.Setenv("GEMINI_API_KEY", "ignored")
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected error for gemini without TIMESTABLE_GEMINI_API_KEY")
		}
	})

	t.Run("default provider with key", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("TIMESTABLE_ANTHROPIC_API_KEY", "sk-ant")
		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "anthropic" {
			t.Fatalf("provider = %q", cfg.Provider)
		}
	})

	t.Run("falls back to discovery", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("GEMINI_API_KEY", "g-key")
		cfg, err := ResolveConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		clearProviderEnv(t)
		if _, err := ResolveConfig(); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock", Retry: retryConfig()}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected retry decorator outermost, got %T", p)
	}
}

func TestNewProvider_RejectsInvalidConfig(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "openai"}, nil, nil); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestNewProvider_OpenRouter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-001" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}
