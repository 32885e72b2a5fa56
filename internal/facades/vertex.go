package facades

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/mydocmaker/api/internal/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const providerVertex = "vertex-gemini"

type vertexModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// VertexTextGenerator produces text with Gemini on Vertex AI.
type VertexTextGenerator struct {
	client   *genai.Client
	newModel func(systemPrompt string) vertexModel
}

// NewVertexTextGenerator creates a Vertex AI client for the given project and region.
func NewVertexTextGenerator(ctx context.Context, projectID, location, modelName string) (*VertexTextGenerator, error) {
	c, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexTextGenerator{
		client: c,
		newModel: func(systemPrompt string) vertexModel {
			m := c.GenerativeModel(modelName)
			m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
			m.ResponseMIMEType = "application/json"
			return m
		},
	}, nil
}

// Close releases the underlying gRPC connection.
func (v *VertexTextGenerator) Close() error {
	if v.client == nil {
		return nil
	}
	return v.client.Close()
}

// GenerateText returns the concatenated text parts of the first candidate.
func (v *VertexTextGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := v.newModel(systemPrompt).GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		logger.Log.Errorw("vertex generate content failed", "error", err)
		return "", vertexError(err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		break
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}

// vertexError translates gRPC status codes into HTTP-like upstream errors.
func vertexError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	code := http.StatusInternalServerError
	switch status.Code(err) {
	case codes.ResourceExhausted:
		code = http.StatusTooManyRequests
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.Unavailable:
		code = http.StatusServiceUnavailable
	}
	return &UpstreamError{Provider: providerVertex, StatusCode: code, Body: truncate(err.Error(), maxLoggedBody)}
}
