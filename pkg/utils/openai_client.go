package utils

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerationClient is the alternative generation provider.
type OpenAIGenerationClient struct {
	client *openai.Client
	model  string
	policy RetryPolicy
}

func NewOpenAIGenerationClient(apiKey, model string, policy RetryPolicy) GenerationClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerationClient{
		client: openai.NewClient(apiKey),
		model:  model,
		policy: policy,
	}
}

func (c *OpenAIGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrGenerationFailed)
	}

	var lastErr error
	maxAttempts := c.policy.attempts()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.Printf("OpenAI generation attempt %d/%d", attempt, maxAttempts)

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: 0.2,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			lastErr = ClassifyGenerationError(err)
			if IsFatalGenerationError(lastErr) {
				return "", lastErr
			}
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("%w: no content generated", ErrGenerationFailed)
			continue
		}

		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		if content == "" {
			lastErr = fmt.Errorf("%w: empty completion", ErrGenerationFailed)
			continue
		}

		return content, nil
	}

	return "", lastErr
}
