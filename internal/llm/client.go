package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ImageRef optionally attaches a craft image to a generation request, either
// as inline bytes or as a storage URI.
type ImageRef struct {
	MIMEType string
	Data     []byte
	URI      string
}

// Client is the generative text port. The returned text carries no schema
// guarantee: it may contain prose around the requested JSON, or no JSON at
// all. Callers own the fallback branch.
type Client interface {
	// Generate produces raw text from a prompt and an optional image.
	Generate(ctx context.Context, prompt string, image *ImageRef) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate produces raw text from a prompt and an optional image reference.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, image *ImageRef) (string, error) {
	modelName := c.config.GetModel(TierStandard)
	if modelName == "" {
		return "", fmt.Errorf("no model configured")
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output

	parts := []genai.Part{genai.Text(prompt)}
	if image != nil {
		if part, ok := imagePart(image); ok {
			parts = append(parts, part)
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// imagePart converts an ImageRef into a genai request part. Inline bytes win
// over a URI when both are set.
func imagePart(image *ImageRef) (genai.Part, bool) {
	switch {
	case len(image.Data) > 0:
		format := strings.TrimPrefix(image.MIMEType, "image/")
		if format == "" {
			format = "jpeg"
		}
		return genai.ImageData(format, image.Data), true
	case image.URI != "":
		return genai.FileData{MIMEType: image.MIMEType, URI: image.URI}, true
	default:
		return nil, false
	}
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
