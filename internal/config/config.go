package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend selectors
const (
	VerifierLookup = "lookup"
	VerifierAdmin  = "admin"

	LLMGateway = "gateway"
	LLMVertex  = "vertex"

	StorageNone  = "none"
	StorageMinio = "minio"
	StorageGCS   = "gcs"
)

// Config holds all configuration for the service.
type Config struct {
	// Application
	AppHost     string `mapstructure:"APP_HOST"`
	AppPort     string `mapstructure:"APP_PORT"`
	LogLevel    string `mapstructure:"APP_LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// PostgreSQL
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	PgMaxOpenConns int    `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PgMaxIdleConns int    `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`

	// Redis role cache, disabled when RedisAddr is empty
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisDB             int    `mapstructure:"REDIS_DB"`
	RoleCacheTTLSeconds int    `mapstructure:"ROLE_CACHE_TTL_SECONDS"`

	// Kafka generation events, disabled when KafkaBrokers is empty
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`

	// Media storage
	StorageBackend     string `mapstructure:"STORAGE_BACKEND"`
	MinioEndpoint      string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey     string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey     string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket        string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL        bool   `mapstructure:"MINIO_USE_SSL"`
	MinioPublicURL     string `mapstructure:"MINIO_PUBLIC_URL"`
	GCSBucket          string `mapstructure:"GCS_BUCKET"`
	GCSProjectID       string `mapstructure:"GCS_PROJECT_ID"`
	GCSCredentialsFile string `mapstructure:"GCS_CREDENTIALS_FILE"`

	// Firebase
	FirebaseVerifier             string `mapstructure:"FIREBASE_VERIFIER"`
	FirebaseAPIKey               string `mapstructure:"FIREBASE_API_KEY"`
	FirebaseProjectID            string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`

	// AI providers
	LLMProvider       string `mapstructure:"LLM_PROVIDER"`
	AIGatewayURL      string `mapstructure:"AI_GATEWAY_URL"`
	LovableAPIKey     string `mapstructure:"LOVABLE_API_KEY"`
	AITextModel       string `mapstructure:"AI_TEXT_MODEL"`
	AIImageModel      string `mapstructure:"AI_IMAGE_MODEL"`
	VertexProjectID   string `mapstructure:"VERTEX_PROJECT_ID"`
	VertexLocation    string `mapstructure:"VERTEX_LOCATION"`
	VertexModel       string `mapstructure:"VERTEX_MODEL"`
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsURL     string `mapstructure:"ELEVENLABS_URL"`
	ElevenLabsVoiceID string `mapstructure:"ELEVENLABS_VOICE_ID"`
	ElevenLabsModel   string `mapstructure:"ELEVENLABS_MODEL"`
	UpstreamTimeout   int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Billing
	StripeSecretKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret       string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	LemonSqueezyWebhookSecret string `mapstructure:"LEMONSQUEEZY_WEBHOOK_SECRET"`
}

var defaults = map[string]any{
	"APP_HOST":                       "localhost",
	"APP_PORT":                       "8080",
	"APP_LOG_LEVEL":                  "info",
	"CORS_ORIGINS":                   "http://localhost:5173",
	"DATABASE_URL":                   "",
	"POSTGRES_MAX_OPEN_CONNS":        16,
	"POSTGRES_MAX_IDLE_CONNS":        8,
	"REDIS_ADDR":                     "",
	"REDIS_PASSWORD":                 "",
	"REDIS_DB":                       0,
	"ROLE_CACHE_TTL_SECONDS":         60,
	"KAFKA_BROKERS":                  "",
	"KAFKA_TOPIC":                    "generation-events",
	"STORAGE_BACKEND":                StorageNone,
	"MINIO_ENDPOINT":                 "",
	"MINIO_ACCESS_KEY":               "",
	"MINIO_SECRET_KEY":               "",
	"MINIO_BUCKET":                   "generated-media",
	"MINIO_USE_SSL":                  false,
	"MINIO_PUBLIC_URL":               "",
	"GCS_BUCKET":                     "",
	"GCS_PROJECT_ID":                 "",
	"GCS_CREDENTIALS_FILE":           "",
	"FIREBASE_VERIFIER":              VerifierLookup,
	"FIREBASE_API_KEY":               "",
	"FIREBASE_PROJECT_ID":            "",
	"GOOGLE_APPLICATION_CREDENTIALS": "",
	"LLM_PROVIDER":                   LLMGateway,
	"AI_GATEWAY_URL":                 "https://ai.gateway.lovable.dev/v1",
	"LOVABLE_API_KEY":                "",
	"AI_TEXT_MODEL":                  "google/gemini-2.5-flash",
	"AI_IMAGE_MODEL":                 "google/gemini-2.5-flash-image-preview",
	"VERTEX_PROJECT_ID":              "",
	"VERTEX_LOCATION":                "us-central1",
	"VERTEX_MODEL":                   "gemini-2.5-flash",
	"ELEVENLABS_API_KEY":             "",
	"ELEVENLABS_URL":                 "https://api.elevenlabs.io/v1",
	"ELEVENLABS_VOICE_ID":            "EXAVITQu4vr4xnSDxMaL",
	"ELEVENLABS_MODEL":               "eleven_multilingual_v2",
	"UPSTREAM_TIMEOUT_SECONDS":       120,
	"STRIPE_SECRET_KEY":              "",
	"STRIPE_WEBHOOK_SECRET":          "",
	"LEMONSQUEEZY_WEBHOOK_SECRET":    "",
}

// Load reads the optional env file at path and then the process environment.
// Values already present in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every key required by the selected backends is present.
func (c *Config) Validate() error {
	var errs []error
	require := func(key, val string) {
		if strings.TrimSpace(val) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	require("DATABASE_URL", c.DatabaseURL)
	require("LOVABLE_API_KEY", c.LovableAPIKey)
	require("ELEVENLABS_API_KEY", c.ElevenLabsAPIKey)

	switch c.FirebaseVerifier {
	case VerifierLookup:
		require("FIREBASE_API_KEY", c.FirebaseAPIKey)
	case VerifierAdmin:
		require("FIREBASE_PROJECT_ID", c.FirebaseProjectID)
	default:
		errs = append(errs, fmt.Errorf("unknown FIREBASE_VERIFIER %q", c.FirebaseVerifier))
	}

	switch c.LLMProvider {
	case LLMGateway:
	case LLMVertex:
		require("VERTEX_PROJECT_ID", c.VertexProjectID)
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider))
	}

	switch c.StorageBackend {
	case StorageNone, "":
	case StorageMinio:
		require("MINIO_ENDPOINT", c.MinioEndpoint)
		require("MINIO_ACCESS_KEY", c.MinioAccessKey)
		require("MINIO_SECRET_KEY", c.MinioSecretKey)
		require("MINIO_BUCKET", c.MinioBucket)
	case StorageGCS:
		require("GCS_BUCKET", c.GCSBucket)
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}

	return errors.Join(errs...)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// CORSOriginList splits CORS_ORIGINS on commas.
func (c *Config) CORSOriginList() []string {
	return splitList(c.CORSOrigins, func(s string) string { return strings.TrimRight(s, "/") })
}

// KafkaBrokerList splits KAFKA_BROKERS on commas.
func (c *Config) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers, nil)
}

// RoleCacheTTL returns the role cache expiration.
func (c *Config) RoleCacheTTL() time.Duration {
	return time.Duration(c.RoleCacheTTLSeconds) * time.Second
}

// UpstreamTimeoutDuration returns the timeout applied to AI provider calls.
func (c *Config) UpstreamTimeoutDuration() time.Duration {
	return time.Duration(c.UpstreamTimeout) * time.Second
}

func splitList(raw string, normalize func(string) string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if normalize != nil {
			p = normalize(p)
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
