package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiGenerator is the production textGenerator backed by the Google
// Gemini API.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func newGenaiGenerator(ctx context.Context, apiKey, model string) (*genaiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &genaiGenerator{client: client, model: model}, nil
}

func (g *genaiGenerator) generateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func (g *genaiGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
