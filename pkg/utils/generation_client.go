package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// GenerationClientInterface is the single text-in/text-out capability the
// itinerary pipeline depends on.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// RetryPolicy bounds the number of generation calls per itinerary request.
// The default is a single attempt: the external capability is quota-limited,
// and burning attempts on retries is worse than failing fast.
type RetryPolicy struct {
	MaxAttempts int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// ClassifyGenerationError folds a raw provider error into the three
// generation-stage sentinels. Providers report quota exhaustion and overload
// through message text rather than typed errors, so matching is on substrings.
func ClassifyGenerationError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource has been exhausted") ||
		strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case strings.Contains(msg, "503") ||
		strings.Contains(msg, "service unavailable") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "unavailable"):
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
}

// IsFatalGenerationError reports whether the classified error should
// short-circuit any remaining attempts instead of retrying.
func IsFatalGenerationError(err error) bool {
	return errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrServiceUnavailable)
}

// NewGenerationClient creates a generation client for the configured
// provider.
func NewGenerationClient(provider, apiKey, model string, policy RetryPolicy) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model, policy), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model, policy)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
