// Package gemini holds the generative-AI services behind the admin dashboard:
// inventory insights and campaign email drafts. Both are best-effort advisory
// features: every transport or parse failure is absorbed into a fixed fallback
// and never reaches the caller.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the text model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Generator produces raw JSON text for a prompt. The response text is treated
// as untrusted even though a response schema is requested.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Client is the production Generator backed by the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed generator.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// GenerateJSON sends the prompt requesting a JSON response of the given shape
// and returns the raw response text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return resp.Text(), nil
}
