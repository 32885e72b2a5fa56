package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mydocmaker/api/internal/logger"
)

const (
	providerGateway = "ai-gateway"
	maxLoggedBody   = 512
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Modalities []string      `json:"modalities,omitempty"`
}

type chatImage struct {
	Type     string `json:"type"`
	ImageURL struct {
		URL string `json:"url"`
	} `json:"image_url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string      `json:"content"`
			Images  []chatImage `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

// AIGatewayFacade talks to an OpenAI-compatible chat completions gateway.
type AIGatewayFacade struct {
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
	client     *http.Client
}

// NewAIGatewayFacade creates a gateway client. baseURL is the API root, e.g. https://ai.gateway.lovable.dev/v1.
func NewAIGatewayFacade(baseURL, apiKey, textModel, imageModel string, timeout time.Duration) *AIGatewayFacade {
	return &AIGatewayFacade{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		textModel:  textModel,
		imageModel: imageModel,
		client:     &http.Client{Timeout: timeout},
	}
}

// GenerateText runs a chat completion and returns the assistant message.
func (f *AIGatewayFacade) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := f.complete(ctx, chatRequest{
		Model: f.textModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// GenerateImage asks the multimodal model for one image and returns it as a data URL.
func (f *AIGatewayFacade) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := f.complete(ctx, chatRequest{
		Model:      f.imageModel,
		Messages:   []chatMessage{{Role: "user", Content: prompt}},
		Modalities: []string{"image", "text"},
	})
	if err != nil {
		return "", err
	}

	for _, img := range resp.Choices[0].Message.Images {
		if img.ImageURL.URL != "" {
			return img.ImageURL.URL, nil
		}
	}
	return "", ErrEmptyResponse
}

func (f *AIGatewayFacade) complete(ctx context.Context, body chatRequest) (*chatResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("ai gateway request failed", "model", body.Model, "error", err)
		return nil, fmt.Errorf("ai gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ai gateway response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		logger.Log.Errorw("ai gateway non-2xx",
			"model", body.Model, "status", resp.StatusCode, "body", truncate(string(raw), maxLoggedBody))
		return nil, &UpstreamError{Provider: providerGateway, StatusCode: resp.StatusCode, Body: truncate(string(raw), maxLoggedBody)}
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode ai gateway response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}
