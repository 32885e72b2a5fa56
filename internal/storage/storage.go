package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mydocmaker/api/internal/logger"
)

var ErrInvalidDataURL = errors.New("invalid data url")

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// PublicURL returns the URL an object is served from. PublicURL("") is the common prefix.
	PublicURL(key string) string
	Bucket() string
}

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"audio/mpeg": ".mp3",
	"audio/wav":  ".wav",
}

// MediaStore persists generated media. Without a backend, media is returned inline as a data URL.
type MediaStore struct {
	backend ObjectStorage
}

// NewMediaStore wraps an optional backend; nil means inline data URLs.
func NewMediaStore(backend ObjectStorage) *MediaStore {
	return &MediaStore{backend: backend}
}

// Enabled reports whether media is uploaded to object storage.
func (s *MediaStore) Enabled() bool {
	return s.backend != nil
}

// Save stores raw bytes under the user's prefix and returns the URL to hand to the client.
func (s *MediaStore) Save(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	if s.backend == nil {
		return DataURL(contentType, data), nil
	}

	key := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), extensions[contentType])
	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		logger.Log.Errorw("failed to upload media", "bucket", s.backend.Bucket(), "key", key, "error", err)
		return "", fmt.Errorf("failed to upload media: %w", err)
	}
	return s.backend.PublicURL(key), nil
}

// SaveDataURL uploads a data URL produced by a model. It is returned unchanged when storage is off.
func (s *MediaStore) SaveDataURL(ctx context.Context, userID, dataURL string) (string, error) {
	if s.backend == nil {
		return dataURL, nil
	}
	contentType, data, err := ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}
	return s.Save(ctx, userID, data, contentType)
}

// Delete removes an object previously returned by Save. URLs this store did not issue are ignored.
func (s *MediaStore) Delete(ctx context.Context, url string) error {
	if s.backend == nil {
		return nil
	}
	prefix := s.backend.PublicURL("")
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	return s.backend.Delete(ctx, strings.TrimPrefix(url, prefix))
}

// DataURL encodes data as a base64 data URL.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL decodes a base64 data URL.
func ParseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok || contentType == "" {
		return "", nil, ErrInvalidDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return contentType, data, nil
}
