package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/subscription"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mydocmaker/api/docs"
	"github.com/mydocmaker/api/internal/config"
	"github.com/mydocmaker/api/internal/db"
	"github.com/mydocmaker/api/internal/events"
	"github.com/mydocmaker/api/internal/facades"
	"github.com/mydocmaker/api/internal/firebase"
	"github.com/mydocmaker/api/internal/handlers"
	"github.com/mydocmaker/api/internal/logger"
	"github.com/mydocmaker/api/internal/middlewares"
	"github.com/mydocmaker/api/internal/models"
	"github.com/mydocmaker/api/internal/repositories"
	"github.com/mydocmaker/api/internal/services"
	"github.com/mydocmaker/api/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo(cmd.OutOrStdout())

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
}

// routes groups the handlers mounted by newRouter.
type routes struct {
	health              http.HandlerFunc
	generateDocument    http.HandlerFunc
	generateImage       http.HandlerFunc
	generateVideo       http.HandlerFunc
	generateVoiceover   http.HandlerFunc
	usage               http.HandlerFunc
	databaseProxy       http.HandlerFunc
	deleteAccount       http.HandlerFunc
	stripeWebhook       http.HandlerFunc
	lemonSqueezyWebhook http.HandlerFunc
}

// newRouter mounts every route. Webhooks and account deletion run in a request transaction.
func newRouter(conn *sqlx.DB, authn middlewares.Authenticator, corsOrigins string, h routes) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	handlers.RegisterHealthHandler(r, h.health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/functions/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(conn))
			handlers.RegisterBillingWebhookHandlers(r, h.stripeWebhook, h.lemonSqueezyWebhook)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(authn))
			handlers.RegisterGenerateDocumentHandler(r, h.generateDocument)
			handlers.RegisterGenerateImageHandler(r, h.generateImage)
			handlers.RegisterGenerateVideoHandler(r, h.generateVideo)
			handlers.RegisterGenerateVoiceoverHandler(r, h.generateVoiceover)
			handlers.RegisterUsageHandler(r, h.usage)
			handlers.RegisterDatabaseProxyHandler(r, h.databaseProxy)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(conn))
				handlers.RegisterDeleteAccountHandler(r, h.deleteAccount)
			})
		})
	})

	return r
}

// run wires the backends, starts the HTTP server and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.PgMaxOpenConns, cfg.PgMaxIdleConns)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer conn.Close()
	if err := db.MigrateUp(cfg.DatabaseURL); err != nil {
		return err
	}

	// Redis role cache
	var roleCache services.RoleCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		roleCache = repositories.NewRoleCacheRepository(rdb, cfg.RoleCacheTTL())
		log.Infow("Role cache enabled", "addr", cfg.RedisAddr)
	}

	// Kafka generation events
	var kafkaWriter events.KafkaWriter
	if brokers := cfg.KafkaBrokerList(); len(brokers) > 0 {
		kafkaWriter = events.NewKafkaWriter(brokers, cfg.KafkaTopic)
		log.Infow("Generation events enabled", "brokers", brokers, "topic", cfg.KafkaTopic)
	}
	publisher := events.NewKafkaPublisher(kafkaWriter)
	defer publisher.Close()

	// Object storage
	backend, closeStorage, err := newObjectStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()
	mediaStore := storage.NewMediaStore(backend)

	// Firebase
	var (
		verifier   services.TokenVerifier
		identities services.IdentityDeleter
	)
	switch cfg.FirebaseVerifier {
	case config.VerifierAdmin:
		client, err := firebase.NewAdminClient(ctx, cfg.FirebaseProjectID, cfg.GoogleApplicationCredentials)
		if err != nil {
			return err
		}
		verifier = firebase.NewAdminVerifier(client, cfg.FirebaseProjectID)
		identities = client
	default:
		lookup, err := firebase.NewLookupVerifier(ctx, cfg.FirebaseAPIKey, cfg.FirebaseProjectID)
		if err != nil {
			return err
		}
		verifier = lookup
	}

	// AI providers
	gateway := facades.NewAIGatewayFacade(cfg.AIGatewayURL, cfg.LovableAPIKey, cfg.AITextModel, cfg.AIImageModel, cfg.UpstreamTimeoutDuration())
	var textGen services.TextGenerator = gateway
	if cfg.LLMProvider == config.LLMVertex {
		vertex, err := facades.NewVertexTextGenerator(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.VertexModel)
		if err != nil {
			return err
		}
		defer vertex.Close()
		textGen = vertex
	}
	speech := facades.NewElevenLabsFacade(cfg.ElevenLabsURL, cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, cfg.ElevenLabsModel, cfg.UpstreamTimeoutDuration())

	// Repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	roleReadRepo := repositories.NewRoleReadRepository(conn)
	roleWriteRepo := repositories.NewRoleWriteRepository(conn, txGetter)
	usageWriteRepo := repositories.NewUsageWriteRepository(conn, txGetter)
	usageReadRepo := repositories.NewUsageReadRepository(conn)
	fileHistoryRepo := repositories.NewFileHistoryWriteRepository(conn, txGetter)
	mediaWriteRepo := repositories.NewMediaWriteRepository(conn, txGetter)
	subscriptionRepo := repositories.NewSubscriptionWriteRepository(conn, txGetter)
	accountRepo := repositories.NewAccountWriteRepository(conn, txGetter)
	proxyRepo := repositories.NewProxyRepository(conn, txGetter)

	// Services
	afterCommit := services.CommitHook(middlewares.AfterCommit)
	authService := services.NewAuthService(verifier, roleReadRepo, roleCache)
	usageService := services.NewUsageService(usageWriteRepo, usageReadRepo, models.DefaultLimits)
	generationService := services.NewGenerationService(usageService, textGen, gateway, speech, mediaStore, fileHistoryRepo, mediaWriteRepo, publisher)
	proxyService := services.NewProxyService(proxyRepo)
	billingService := services.NewBillingService(subscriptionRepo, roleWriteRepo, roleCache, afterCommit, cfg.StripeWebhookSecret, cfg.LemonSqueezyWebhookSecret)
	if subs := newStripeSubscriptions(cfg.StripeSecretKey); subs != nil {
		billingService.WithStripeSubscriptions(subs)
	} else if cfg.StripeWebhookSecret != "" {
		log.Warn("STRIPE_SECRET_KEY is not set, checkout.session.completed events will be ignored")
	}
	accountService := services.NewAccountService(accountRepo, mediaStore, identities, roleCache, afterCommit)

	r := newRouter(conn, authService, cfg.CORSOrigins, routes{
		health:              handlers.NewHealthHandler(conn),
		generateDocument:    handlers.NewGenerateDocumentHandler(generationService),
		generateImage:       handlers.NewGenerateImageHandler(generationService),
		generateVideo:       handlers.NewGenerateVideoHandler(generationService),
		generateVoiceover:   handlers.NewGenerateVoiceoverHandler(generationService),
		usage:               handlers.NewUsageHandler(usageService),
		databaseProxy:       handlers.NewDatabaseProxyHandler(proxyService),
		deleteAccount:       handlers.NewDeleteAccountHandler(accountService),
		stripeWebhook:       handlers.NewStripeWebhookHandler(billingService),
		lemonSqueezyWebhook: handlers.NewLemonSqueezyWebhookHandler(billingService),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newObjectStorage returns the configured media backend, or nil for inline data URLs.
func newObjectStorage(ctx context.Context, cfg *config.Config) (storage.ObjectStorage, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.StorageMinio:
		client, err := storage.NewMinioClient(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("MinIO client error: %w", err)
		}
		if err := client.EnsureBucket(ctx); err != nil {
			return nil, noop, fmt.Errorf("MinIO bucket error: %w", err)
		}
		return client, noop, nil
	case config.StorageGCS:
		client, err := storage.NewGCSClient(ctx, cfg.GCSBucket, cfg.GCSProjectID, cfg.GCSCredentialsFile)
		if err != nil {
			return nil, noop, fmt.Errorf("GCS client error: %w", err)
		}
		if err := client.EnsureBucket(ctx); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("GCS bucket error: %w", err)
		}
		return client, func() { _ = client.Close() }, nil
	default:
		return nil, noop, nil
	}
}

// newStripeSubscriptions returns a Stripe API client for subscriptions, or nil without a secret key.
func newStripeSubscriptions(secretKey string) *subscription.Client {
	if secretKey == "" {
		return nil
	}
	return &subscription.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey}
}
