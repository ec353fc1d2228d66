package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/config"
	"github.com/Gabriel-Pasternak/ReqWise/pkg/llmjson"
)

const tagPrompt = `You are an AI assistant that suggests tags for requirements. You will receive the text of a requirement and suggest tags related to project phase, module, and regulatory standards. Return the tags as a JSON array of strings and nothing else.`

// Client suggests tags via an OpenAI-compatible chat-completions API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg config.SuggestConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) SuggestTags(ctx context.Context, text string) ([]string, error) {
	reply, err := c.callAPI(ctx, []chatMessage{
		{Role: "system", Content: tagPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		return nil, err
	}
	return parseTags([]byte(reply))
}

func (c *Client) callAPI(ctx context.Context, messages []chatMessage) (string, error) {
	bodyBytes, _ := json.Marshal(chatRequest{Model: c.model, Messages: messages})

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call suggestion API: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	var result chatResponse
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("decode suggestion response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("suggestion API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("suggestion API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// parseTags reads the model reply, tolerating markdown fences and an
// object wrapper around the array.
func parseTags(reply []byte) ([]string, error) {
	raw := llmjson.Extract(reply)

	var tags []string
	if err := json.Unmarshal(raw, &tags); err == nil {
		return tags, nil
	}

	var wrapped struct {
		SuggestedTags []string `json:"suggestedTags"`
		Tags          []string `json:"tags"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("parse suggested tags: %w", err)
	}
	if wrapped.SuggestedTags != nil {
		return wrapped.SuggestedTags, nil
	}
	return wrapped.Tags, nil
}

var _ Suggester = (*Client)(nil)
