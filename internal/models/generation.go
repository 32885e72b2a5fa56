package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document types accepted by generate-document-json
const (
	DocumentTypeDocument     = "document"
	DocumentTypePresentation = "presentation"
	DocumentTypeSpreadsheet  = "spreadsheet"
	DocumentTypePDF          = "pdf"
)

// Media types stored in generated_media
const (
	MediaTypeImage     = "image"
	MediaTypeVideo     = "video"
	MediaTypeVoiceover = "voiceover"
)

// FileHistoryDB represents a file_history row
type FileHistoryDB struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Title     string          `json:"title" db:"title"`
	Content   json.RawMessage `json:"content" db:"content"`
	FileType  string          `json:"file_type" db:"file_type"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// GeneratedMediaDB represents a generated_media row
type GeneratedMediaDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	MediaType string    `json:"media_type" db:"media_type"`
	URL       string    `json:"url" db:"url"`
	Prompt    string    `json:"prompt" db:"prompt"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DocumentRequest represents the JSON body of generate-document-json
// swagger:model DocumentRequest
type DocumentRequest struct {
	// What the document is about
	// required: true
	// example: Quarterly marketing plan for a coffee shop
	Prompt string `json:"prompt"`

	// document, presentation, spreadsheet or pdf
	// example: presentation
	DocumentType string `json:"documentType"`

	// Optional title override
	Title string `json:"title,omitempty"`

	// Optional writing tone
	// example: professional
	Tone string `json:"tone,omitempty"`

	// Optional length hint: short, medium or long
	// example: medium
	Length string `json:"length,omitempty"`

	// Store the result in file history
	Save bool `json:"save,omitempty"`
}

// DocumentResponse represents a generated document schema
// swagger:model DocumentResponse
type DocumentResponse struct {
	// Document schema produced by the model
	Document json.RawMessage `json:"document" swaggertype:"object"`

	// file_history id when the document was saved
	FileID *uuid.UUID `json:"fileId,omitempty"`
}

// ImageRequest represents the JSON body of generate-image
// swagger:model ImageRequest
type ImageRequest struct {
	// Image description
	// required: true
	// example: A watercolor fox reading a newspaper
	Prompt string `json:"prompt"`

	// Number of images, 1 to 4
	// example: 1
	Count int `json:"count,omitempty"`

	// Optional style hint
	// example: watercolor
	Style string `json:"style,omitempty"`

	// Store the images in the gallery
	SaveToGallery bool `json:"saveToGallery,omitempty"`
}

// ImageResponse represents generated images
// swagger:model ImageResponse
type ImageResponse struct {
	// Image URLs, either public storage URLs or base64 data URLs
	Images []string `json:"images"`
}

// VideoRequest represents the JSON body of generate-video
// swagger:model VideoRequest
type VideoRequest struct {
	// Video idea
	// required: true
	// example: A 30 second teaser for a mobile puzzle game
	Prompt string `json:"prompt"`

	// Number of storyboard scenes, 1 to 6
	// example: 4
	Scenes int `json:"scenes,omitempty"`

	// Store the keyframes in the gallery
	SaveToGallery bool `json:"saveToGallery,omitempty"`
}

// VideoScene is a single storyboard scene
// swagger:model VideoScene
type VideoScene struct {
	Description     string `json:"description"`
	Narration       string `json:"narration"`
	DurationSeconds int    `json:"durationSeconds"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// VideoResponse represents a generated video preview
// swagger:model VideoResponse
type VideoResponse struct {
	Title  string       `json:"title"`
	Scenes []VideoScene `json:"scenes"`
}

// VoiceoverRequest represents the JSON body of generate-voiceover
// swagger:model VoiceoverRequest
type VoiceoverRequest struct {
	// Text to speak
	// required: true
	// example: Welcome to MyDocMaker.
	Text string `json:"text"`

	// ElevenLabs voice id
	VoiceID string `json:"voiceId,omitempty"`

	// Voice stability, 0 to 1
	Stability *float64 `json:"stability,omitempty"`

	// Voice similarity boost, 0 to 1
	SimilarityBoost *float64 `json:"similarityBoost,omitempty"`

	// Store the audio in the gallery
	SaveToGallery bool `json:"saveToGallery,omitempty"`
}

// VoiceoverResponse represents generated speech
// swagger:model VoiceoverResponse
type VoiceoverResponse struct {
	// Audio URL, either a public storage URL or a base64 data URL
	AudioURL string `json:"audioUrl"`

	// MIME type of the audio
	// example: audio/mpeg
	ContentType string `json:"contentType"`
}
