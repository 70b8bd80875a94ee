package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates text using OpenAI chat completions
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI translation provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Translate translates text from sourceLang into targetLang
func (p *OpenAIProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
					sourceLang, targetLang, text),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
