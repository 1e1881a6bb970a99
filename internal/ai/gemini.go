// Package ai wraps the Gemini collaborator. It is strictly best-effort: every
// failure degrades to a placeholder summary or an empty result, and a missing
// API key disables the client without affecting anything else.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// FallbackSummary is returned whenever a summary cannot be generated.
const FallbackSummary = "No se pudo generar el resumen inteligente."

type Client struct {
	client *genai.Client
	model  string
}

// New creates the Gemini client. An empty API key returns a nil client, which
// callers treat as "AI disabled".
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Summarize produces a short executive summary of a norm for employees.
func (c *Client) Summarize(ctx context.Context, title, description string) string {
	if c == nil {
		return FallbackSummary
	}

	prompt := fmt.Sprintf(`Eres un consultor de compliance retail en Argentina.
Resume de forma ejecutiva los puntos clave de la siguiente norma interna:
Título: %s
Descripción: %s

El resumen debe ser directo, en bullet points, enfocado en lo que el empleado DEBE saber.`, title, description)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Gemini summary failed")
		return FallbackSummary
	}
	text := resp.Text()
	if text == "" {
		return FallbackSummary
	}
	return text
}

// SmartSearch asks Gemini which of the listed norms are relevant to the
// query. It returns norm ids, or an empty list on any failure.
func (c *Client) SmartSearch(ctx context.Context, query, listing string) []string {
	if c == nil {
		return []string{}
	}

	prompt := fmt.Sprintf(`Basado en el siguiente listado de documentos: %s.
¿Cuáles son los más relevantes para la consulta: "%s"?
Responde SOLO con un array JSON de IDs de documentos.`, listing, query)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Gemini smart search failed")
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(resp.Text()), &ids); err != nil {
		log.Warn().Err(err).Msg("Gemini smart search returned malformed ids")
		return []string{}
	}
	return ids
}
