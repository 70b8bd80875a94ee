package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider translates text using the Gemini API
type GeminiProvider struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini translation provider. The client is
// created lazily on the first Translate call because it needs a context.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
	}
}

// Translate translates text from sourceLang into targetLang
func (p *GeminiProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	if p.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		p.client = client
	}

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		sourceLang, targetLang, text)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
