// Package gemini — тонкий клиент генеративной модели Google для
// получения текстовых рекомендаций по данным зала.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel — модель по умолчанию (бесплатный тариф).
const DefaultModel = "gemini-1.5-flash"

// Client оборачивает genai.Client для генерации свободного текста.
type Client struct {
	client *genai.Client
	model  string
}

// New создает клиента Gemini с указанным ключом и моделью.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Generate отправляет промпт и возвращает первый текстовый кандидат.
// Никаких повторов: один вызов на запрос, ошибки отдаются вызывающему.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close закрывает нижележащий клиент.
func (c *Client) Close() error {
	return c.client.Close()
}
