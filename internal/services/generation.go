package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mydocmaker/api/internal/facades"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/storage"
)

//go:generate mockgen -source=generation.go -destination=generation_mock_test.go -package=services

// QuotaManager consumes and refunds daily credits.
type QuotaManager interface {
	Consume(ctx context.Context, user *models.AuthUser, counter models.Counter, n int) (models.Consumption, error)
	Refund(ctx context.Context, userID string, c models.Consumption) error
}

// TextGenerator produces a chat completion.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageGenerator produces one image as a data URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// SpeechSynthesizer turns text into audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string, settings facades.VoiceSettings) ([]byte, error)
}

// MediaSaver stores generated media and returns the URL handed to the client.
type MediaSaver interface {
	Save(ctx context.Context, userID string, data []byte, contentType string) (string, error)
	SaveDataURL(ctx context.Context, userID, dataURL string) (string, error)
}

// FileHistoryWriter stores generated documents.
type FileHistoryWriter interface {
	Save(ctx context.Context, userID, title, fileType string, content json.RawMessage) (uuid.UUID, error)
}

// MediaWriter stores gallery entries.
type MediaWriter interface {
	Save(ctx context.Context, userID, mediaType, url, prompt string) (uuid.UUID, error)
}

// EventPublisher publishes generation events.
type EventPublisher interface {
	PublishGeneration(ctx context.Context, ev models.GenerationEvent)
}

var (
	// ErrInvalidInput marks a request body that failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidModelOutput is returned when the model answered with something unusable.
	ErrInvalidModelOutput = errors.New("model returned invalid output")
)

const (
	minPromptLen       = 3
	maxPromptLen       = 5000
	maxImagePromptLen  = 2000
	maxTitleLen        = 200
	maxImageCount      = 4
	defaultSceneCount  = 4
	maxSceneCount      = 6
	maxVoiceoverLength = 5000
	untitled           = "Untitled"
)

var documentSchemas = map[string]string{
	models.DocumentTypeDocument:     `{"title": string, "sections": [{"heading": string, "content": string}]}`,
	models.DocumentTypePDF:          `{"title": string, "sections": [{"heading": string, "content": string}]}`,
	models.DocumentTypePresentation: `{"title": string, "slides": [{"title": string, "bullets": [string], "notes": string}]}`,
	models.DocumentTypeSpreadsheet:  `{"title": string, "sheets": [{"name": string, "columns": [string], "rows": [[string or number]]}]}`,
}

var documentLengths = map[string]string{
	"":       "",
	"short":  "Keep it short: about 3 sections, slides or sheets.",
	"medium": "Aim for a medium length: about 6 sections, slides or sheets.",
	"long":   "Be thorough: about 10 sections, slides or sheets.",
}

const storyboardSchema = `{"title": string, "scenes": [{"description": string, "narration": string, "durationSeconds": number}]}`

// GenerationService runs paid generations: quota, provider call, persistence and events.
type GenerationService struct {
	quota   QuotaManager
	text    TextGenerator
	images  ImageGenerator
	speech  SpeechSynthesizer
	media   MediaSaver
	files   FileHistoryWriter
	gallery MediaWriter
	events  EventPublisher
	now     func() time.Time
}

// NewGenerationService creates a new GenerationService. events may be nil.
func NewGenerationService(
	quota QuotaManager,
	text TextGenerator,
	images ImageGenerator,
	speech SpeechSynthesizer,
	media MediaSaver,
	files FileHistoryWriter,
	gallery MediaWriter,
	events EventPublisher,
) *GenerationService {
	return &GenerationService{
		quota:   quota,
		text:    text,
		images:  images,
		speech:  speech,
		media:   media,
		files:   files,
		gallery: gallery,
		events:  events,
		now:     time.Now,
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min || n > max {
		return invalidInput("%s must be between %d and %d characters", field, min, max)
	}
	return nil
}

func checkUnit(field string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return invalidInput("%s must be between 0 and 1", field)
	}
	return nil
}

// refund returns credits after a failed generation. It survives client cancellation.
func (svc *GenerationService) refund(ctx context.Context, user *models.AuthUser, c models.Consumption) {
	if c.N <= 0 {
		return
	}
	_ = svc.quota.Refund(context.WithoutCancel(ctx), user.UserID, c)
}

func (svc *GenerationService) publish(ctx context.Context, user *models.AuthUser, counter models.Counter, amount int, kind string) {
	if svc.events == nil {
		return
	}
	svc.events.PublishGeneration(ctx, models.GenerationEvent{
		EventID:   uuid.NewString(),
		Timestamp: svc.now().Unix(),
		UserID:    user.UserID,
		Tier:      user.Tier,
		Counter:   counter,
		Amount:    amount,
		Kind:      kind,
	})
}

func (svc *GenerationService) saveToGallery(ctx context.Context, userID, mediaType, url, prompt string) {
	if _, err := svc.gallery.Save(ctx, userID, mediaType, url, prompt); err != nil {
		logger.Log.Errorw("failed to save media to gallery", "userID", userID, "mediaType", mediaType, "error", err)
	}
}

// GenerateDocument produces a document schema for the requested file type.
func (svc *GenerationService) GenerateDocument(ctx context.Context, user *models.AuthUser, req models.DocumentRequest) (*models.DocumentResponse, error) {
	if req.DocumentType == "" {
		req.DocumentType = models.DocumentTypeDocument
	}
	schema, ok := documentSchemas[req.DocumentType]
	if !ok {
		return nil, invalidInput("documentType must be one of document, presentation, spreadsheet, pdf")
	}
	lengthHint, ok := documentLengths[req.Length]
	if !ok {
		return nil, invalidInput("length must be one of short, medium, long")
	}
	if err := checkLength("prompt", req.Prompt, minPromptLen, maxPromptLen); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLen {
		return nil, invalidInput("title must be at most %d characters", maxTitleLen)
	}

	consumed, err := svc.quota.Consume(ctx, user, models.CounterDocuments, 1)
	if err != nil {
		return nil, err
	}

	system := fmt.Sprintf(
		"You are a document generator. Write a %s and answer with a single JSON object of the form %s. "+
			"Answer with JSON only, without markdown or commentary. %s",
		req.DocumentType, schema, lengthHint,
	)

	var prompt strings.Builder
	prompt.WriteString(strings.TrimSpace(req.Prompt))
	if req.Title != "" {
		fmt.Fprintf(&prompt, "\nTitle: %s", req.Title)
	}
	if req.Tone != "" {
		fmt.Fprintf(&prompt, "\nTone: %s", req.Tone)
	}

	out, err := svc.text.GenerateText(ctx, system, prompt.String())
	if err != nil {
		svc.refund(ctx, user, consumed)
		return nil, err
	}

	doc, err := parseJSONObject(out)
	if err != nil {
		logger.Log.Warnw("document generation returned invalid JSON", "userID", user.UserID, "error", err)
		svc.refund(ctx, user, consumed)
		return nil, err
	}

	resp := &models.DocumentResponse{Document: doc}

	if req.Save {
		title := req.Title
		if title == "" {
			title = documentTitle(doc)
		}
		id, err := svc.files.Save(ctx, user.UserID, title, req.DocumentType, doc)
		if err != nil {
			logger.Log.Errorw("failed to save document to file history", "userID", user.UserID, "error", err)
		} else {
			resp.FileID = &id
		}
	}

	svc.publish(ctx, user, models.CounterDocuments, 1, req.DocumentType)
	return resp, nil
}

// GenerateImages produces up to four images. Failed images are refunded;
// the call fails only when no image could be produced.
func (svc *GenerationService) GenerateImages(ctx context.Context, user *models.AuthUser, req models.ImageRequest) (*models.ImageResponse, error) {
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 1 || req.Count > maxImageCount {
		return nil, invalidInput("count must be between 1 and %d", maxImageCount)
	}
	if err := checkLength("prompt", req.Prompt, minPromptLen, maxImagePromptLen); err != nil {
		return nil, err
	}

	consumed, err := svc.quota.Consume(ctx, user, models.CounterImages, req.Count)
	if err != nil {
		return nil, err
	}

	prompt := strings.TrimSpace(req.Prompt)
	if req.Style != "" {
		prompt = fmt.Sprintf("%s, in %s style", prompt, req.Style)
	}

	images := make([]string, 0, req.Count)
	var lastErr error
	for i := 0; i < req.Count; i++ {
		dataURL, err := svc.images.GenerateImage(ctx, prompt)
		if err != nil {
			logger.Log.Warnw("image generation failed", "userID", user.UserID, "index", i, "error", err)
			lastErr = err
			continue
		}
		images = append(images, svc.store(ctx, user.UserID, dataURL))
	}

	svc.refund(ctx, user, consumed.Portion(req.Count-len(images)))
	if len(images) == 0 {
		return nil, lastErr
	}

	if req.SaveToGallery {
		for _, url := range images {
			svc.saveToGallery(ctx, user.UserID, models.MediaTypeImage, url, req.Prompt)
		}
	}

	svc.publish(ctx, user, models.CounterImages, len(images), models.MediaTypeImage)
	return &models.ImageResponse{Images: images}, nil
}

// store uploads a model data URL, keeping the inline data URL when the upload fails.
func (svc *GenerationService) store(ctx context.Context, userID, dataURL string) string {
	url, err := svc.media.SaveDataURL(ctx, userID, dataURL)
	if err != nil {
		logger.Log.Warnw("falling back to inline media", "userID", userID, "error", err)
		return dataURL
	}
	return url
}

type storyboard struct {
	Title  string              `json:"title"`
	Scenes []models.VideoScene `json:"scenes"`
}

// GenerateVideo produces a storyboard preview with one keyframe per scene.
func (svc *GenerationService) GenerateVideo(ctx context.Context, user *models.AuthUser, req models.VideoRequest) (*models.VideoResponse, error) {
	if req.Scenes == 0 {
		req.Scenes = defaultSceneCount
	}
	if req.Scenes < 1 || req.Scenes > maxSceneCount {
		return nil, invalidInput("scenes must be between 1 and %d", maxSceneCount)
	}
	if err := checkLength("prompt", req.Prompt, minPromptLen, maxImagePromptLen); err != nil {
		return nil, err
	}

	consumed, err := svc.quota.Consume(ctx, user, models.CounterVideos, 1)
	if err != nil {
		return nil, err
	}

	system := fmt.Sprintf(
		"You are a video storyboard writer. Split the idea into exactly %d scenes and answer with a single JSON object "+
			"of the form %s. Answer with JSON only, without markdown or commentary.",
		req.Scenes, storyboardSchema,
	)

	out, err := svc.text.GenerateText(ctx, system, strings.TrimSpace(req.Prompt))
	if err != nil {
		svc.refund(ctx, user, consumed)
		return nil, err
	}

	var board storyboard
	raw, err := parseJSONObject(out)
	if err == nil {
		err = json.Unmarshal(raw, &board)
	}
	if err != nil || len(board.Scenes) == 0 {
		logger.Log.Warnw("storyboard generation returned invalid JSON", "userID", user.UserID, "error", err)
		svc.refund(ctx, user, consumed)
		return nil, fmt.Errorf("%w: storyboard has no scenes", ErrInvalidModelOutput)
	}
	if len(board.Scenes) > req.Scenes {
		board.Scenes = board.Scenes[:req.Scenes]
	}

	for i := range board.Scenes {
		scene := &board.Scenes[i]
		dataURL, err := svc.images.GenerateImage(ctx, "Cinematic video keyframe: "+scene.Description)
		if err != nil {
			logger.Log.Warnw("keyframe generation failed", "userID", user.UserID, "scene", i, "error", err)
			svc.refund(ctx, user, consumed)
			return nil, err
		}
		scene.ImageURL = svc.store(ctx, user.UserID, dataURL)
	}

	if req.SaveToGallery {
		for _, scene := range board.Scenes {
			svc.saveToGallery(ctx, user.UserID, models.MediaTypeVideo, scene.ImageURL, req.Prompt)
		}
	}

	svc.publish(ctx, user, models.CounterVideos, 1, models.MediaTypeVideo)

	if board.Title == "" {
		board.Title = untitled
	}
	return &models.VideoResponse{Title: board.Title, Scenes: board.Scenes}, nil
}

// GenerateVoiceover synthesizes speech for the given text.
func (svc *GenerationService) GenerateVoiceover(ctx context.Context, user *models.AuthUser, req models.VoiceoverRequest) (*models.VoiceoverResponse, error) {
	if err := checkLength("text", req.Text, 1, maxVoiceoverLength); err != nil {
		return nil, err
	}
	if err := checkUnit("stability", req.Stability); err != nil {
		return nil, err
	}
	if err := checkUnit("similarityBoost", req.SimilarityBoost); err != nil {
		return nil, err
	}

	consumed, err := svc.quota.Consume(ctx, user, models.CounterVoiceovers, 1)
	if err != nil {
		return nil, err
	}

	audio, err := svc.speech.Synthesize(ctx, strings.TrimSpace(req.Text), req.VoiceID, facades.VoiceSettings{
		Stability:       req.Stability,
		SimilarityBoost: req.SimilarityBoost,
	})
	if err != nil {
		svc.refund(ctx, user, consumed)
		return nil, err
	}

	url, err := svc.media.Save(ctx, user.UserID, audio, facades.AudioContentType)
	if err != nil {
		logger.Log.Warnw("falling back to inline audio", "userID", user.UserID, "error", err)
		url = storage.DataURL(facades.AudioContentType, audio)
	}

	if req.SaveToGallery {
		svc.saveToGallery(ctx, user.UserID, models.MediaTypeVoiceover, url, req.Text)
	}

	svc.publish(ctx, user, models.CounterVoiceovers, 1, models.MediaTypeVoiceover)
	return &models.VoiceoverResponse{AudioURL: url, ContentType: facades.AudioContentType}, nil
}

// parseJSONObject strips markdown code fences and requires a JSON object.
func parseJSONObject(out string) (json.RawMessage, error) {
	s := stripCodeFences(out)
	if !strings.HasPrefix(s, "{") || !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidModelOutput)
	}
	return json.RawMessage(s), nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func documentTitle(doc json.RawMessage) string {
	var head struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(doc, &head); err != nil || strings.TrimSpace(head.Title) == "" {
		return untitled
	}
	title := strings.TrimSpace(head.Title)
	if utf8.RuneCountInString(title) > maxTitleLen {
		title = string([]rune(title)[:maxTitleLen])
	}
	return title
}
