package firebase

import (
	"context"
	"fmt"
	"time"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/mydocmaker/api/internal/models"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=admin.go -destination=admin_mock_test.go -package=firebase

// IDTokenVerifier is the subset of *auth.Client used for verification.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AdminVerifier validates ID tokens with the Admin SDK, checking the signature
// against Google's public keys.
type AdminVerifier struct {
	client    IDTokenVerifier
	projectID string
	now       func() time.Time
}

// NewAdminClient initializes the Admin SDK auth client. An empty credentials
// file falls back to Application Default Credentials.
func NewAdminClient(ctx context.Context, projectID, credentialsFile string) (*auth.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return client, nil
}

// NewAdminVerifier wraps an Admin SDK client.
func NewAdminVerifier(client IDTokenVerifier, projectID string) *AdminVerifier {
	return &AdminVerifier{client: client, projectID: projectID, now: time.Now}
}

// Verify checks the token locally and then verifies its signature.
func (v *AdminVerifier) Verify(ctx context.Context, token string) (*models.AuthUser, error) {
	if err := Precheck(token, v.projectID, v.now()); err != nil {
		return nil, err
	}

	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}

	user := &models.AuthUser{UserID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		user.DisplayName = name
	}
	return user, nil
}
