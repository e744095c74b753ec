package utils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerationClient produces itineraries through Google's Gemini models.
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
	policy RetryPolicy
}

func NewGeminiGenerationClient(apiKey, model string, policy RetryPolicy) (GenerationClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
		policy: policy,
	}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrGenerationFailed)
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	var lastErr error
	maxAttempts := c.policy.attempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("Gemini generation attempt %d/%d", attempt, maxAttempts)

		resp, err := m.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = ClassifyGenerationError(err)
			if IsFatalGenerationError(lastErr) {
				return "", lastErr
			}
			continue
		}

		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
			len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("%w: no content generated", ErrGenerationFailed)
			continue
		}

		var b strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}

		content := strings.TrimSpace(b.String())
		if content == "" {
			lastErr = fmt.Errorf("%w: empty candidate text", ErrGenerationFailed)
			continue
		}

		return content, nil
	}

	return "", lastErr
}

// Close closes the underlying Gemini client.
func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
