package llm

import (
	"context"
	"fmt"

	"github.com/fwr/quizgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware chain: caller → retry → timeout → logging → base.
	// The timeout sits inside retry so each attempt gets a fresh deadline.
	logged := WithLogging(base, eventRepo)
	timed := WithTimeout(logged, cfg.Timeout)
	retried := WithRetry(timed, cfg.Retry)

	return retried, nil
}
