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
	providerElevenLabs = "elevenlabs"

	// AudioContentType is the format ElevenLabs returns by default.
	AudioContentType = "audio/mpeg"

	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
)

// VoiceSettings tunes the synthesized voice. Zero-value pointers fall back to defaults.
type VoiceSettings struct {
	Stability       *float64
	SimilarityBoost *float64
}

type ttsRequest struct {
	Text          string `json:"text"`
	ModelID       string `json:"model_id"`
	VoiceSettings struct {
		Stability       float64 `json:"stability"`
		SimilarityBoost float64 `json:"similarity_boost"`
	} `json:"voice_settings"`
}

// ElevenLabsFacade calls the ElevenLabs text-to-speech API.
type ElevenLabsFacade struct {
	baseURL      string
	apiKey       string
	defaultVoice string
	model        string
	client       *http.Client
}

// NewElevenLabsFacade creates a text-to-speech client.
func NewElevenLabsFacade(baseURL, apiKey, defaultVoice, model string, timeout time.Duration) *ElevenLabsFacade {
	return &ElevenLabsFacade{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		defaultVoice: defaultVoice,
		model:        model,
		client:       &http.Client{Timeout: timeout},
	}
}

// Synthesize turns text into MPEG audio. An empty voiceID uses the configured default voice.
func (f *ElevenLabsFacade) Synthesize(ctx context.Context, text, voiceID string, settings VoiceSettings) ([]byte, error) {
	if voiceID == "" {
		voiceID = f.defaultVoice
	}

	body := ttsRequest{Text: text, ModelID: f.model}
	body.VoiceSettings.Stability = defaultStability
	body.VoiceSettings.SimilarityBoost = defaultSimilarityBoost
	if settings.Stability != nil {
		body.VoiceSettings.Stability = *settings.Stability
	}
	if settings.SimilarityBoost != nil {
		body.VoiceSettings.SimilarityBoost = *settings.SimilarityBoost
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", f.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", f.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", AudioContentType)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("elevenlabs request failed", "voice", voiceID, "error", err)
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read elevenlabs response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		logger.Log.Errorw("elevenlabs non-2xx",
			"voice", voiceID, "status", resp.StatusCode, "body", truncate(string(audio), maxLoggedBody))
		return nil, &UpstreamError{Provider: providerElevenLabs, StatusCode: resp.StatusCode, Body: truncate(string(audio), maxLoggedBody)}
	}
	if len(audio) == 0 {
		return nil, ErrEmptyResponse
	}
	return audio, nil
}
