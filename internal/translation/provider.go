package translation

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for machine-translation backends
type Provider interface {
	// Translate translates text from sourceLang into targetLang
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"

	OpenAIKey   string
	OpenAIModel string

	GeminiKey   string
	GeminiModel string
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config.OpenAIKey, config.OpenAIModel), nil

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config.GeminiKey, config.GeminiModel), nil

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// GeneralLang extracts the general language code from a regional one
// ("EN-GB" becomes "EN").
func GeneralLang(lang string) string {
	if i := strings.Index(lang, "-"); i >= 0 {
		return lang[:i]
	}
	return lang
}
