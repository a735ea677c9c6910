package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voiceorder/internal/config"
	"voiceorder/internal/model"
	"voiceorder/internal/utils"

	"github.com/sirupsen/logrus"
)

const sentimentSystemPrompt = `You are a sentiment classifier for a hotel voice assistant.
Classify the guest's message as POSITIVE, NEUTRAL or NEGATIVE.
Respond ONLY with JSON of the form {"label": "POSITIVE", "score": 0.93}
where score is your confidence between 0 and 1.`

// OpenAIClient handles OpenAI-compatible chat completion calls
type OpenAIClient struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI-compatible client
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *OpenAIClient) IsEnabled() bool {
	return c != nil && c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// ChatCompletion performs a chat completion request
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.IsEnabled() {
		return nil, ErrSentimentDisabled
	}

	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(c.config.APIBase, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &result, nil
}

// Analyze implements SentimentAnalyzer by asking the chat model for a label
func (c *OpenAIClient) Analyze(ctx context.Context, text string) (*model.Sentiment, error) {
	resp, err := c.ChatCompletion(ctx, ChatCompletionRequest{
		Messages: []ChatMessage{
			{Role: "system", Content: sentimentSystemPrompt},
			{Role: "user", Content: text},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in sentiment response")
	}

	var raw struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	content := resp.Choices[0].Message.Content
	if err := utils.DecodeModelJSON(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sentiment response: %w", err)
	}
	if raw.Score < 0 || raw.Score > 1 {
		return nil, fmt.Errorf("sentiment score %.3f out of range", raw.Score)
	}

	sentiment := &model.Sentiment{Label: model.ParseSentimentLabel(raw.Label), Score: raw.Score}
	logrus.WithFields(logrus.Fields{
		"model": resp.Model,
		"label": sentiment.Label,
		"score": sentiment.Score,
	}).Debug("Sentiment analyzed")
	return sentiment, nil
}

// Ensure OpenAIClient implements SentimentAnalyzer
var _ SentimentAnalyzer = (*OpenAIClient)(nil)
