package generation_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wayfare/pkg/utils"
)

var Module = fx.Provide(ProvideGenerationClient)

// GenerationConfig holds configuration for the generation client.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient builds the configured generation client. A missing
// API key is not fatal at startup: the client is still constructed and every
// generation request fails with a classified error instead.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)
	if config.APIKey == "" {
		log.Printf("Warning: no API key set for provider %s, all generation requests will fail", config.Provider)
	}

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model, utils.DefaultRetryPolicy())
}

func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
