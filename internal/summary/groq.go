package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"realestate-analyzer/internal/models"

	"github.com/go-resty/resty/v2"
)

// GroqClient rewrites the templated summary through a Groq chat-completions
// call. The numbers are computed locally; the model only rewords them.
type GroqClient struct {
	client *resty.Client
	model  string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewGroqClient builds a client with a bounded request timeout.
func NewGroqClient(baseURL, apiKey, model string, timeout time.Duration) *GroqClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(apiKey)
	client.SetTimeout(timeout)

	return &GroqClient{
		client: client,
		model:  model,
	}
}

func (g *GroqClient) Generate(ctx context.Context, intent models.Intent, stats []models.AreaStats) (string, error) {
	areas := make([]string, 0, len(stats))
	for _, st := range stats {
		areas = append(areas, st.Area)
	}

	prompt := fmt.Sprintf(
		"Rewrite this real estate summary in a cleaner, more professional way. Do NOT modify numbers or add new information.\n\nAreas: %s\nIntent: %s\nOriginal Summary:\n%s",
		strings.Join(areas, ", "), intent, Template(intent, stats),
	)

	body := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: "Rewrite real estate analysis clearly and professionally."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   200,
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("summary service returned HTTP %d", resp.StatusCode())
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("parse summary response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("summary response had no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
