package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → event logging → SDK.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events, logger)
	return WithRetry(logged, cfg.Retry, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds a provider from it.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *zap.Logger) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, events, logger)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
