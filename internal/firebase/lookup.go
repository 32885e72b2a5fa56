package firebase

import (
	"context"
	"fmt"
	"time"

	"github.com/mydocmaker/api/internal/models"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// LookupVerifier validates ID tokens by asking the Identity Toolkit account
// lookup endpoint who owns them. Only the web API key is required.
type LookupVerifier struct {
	svc       *identitytoolkit.Service
	projectID string
	now       func() time.Time
}

// NewLookupVerifier creates a verifier authenticated with the Firebase web API key.
// Extra options are appended after the key, so tests can point it at a fake endpoint.
func NewLookupVerifier(ctx context.Context, apiKey, projectID string, opts ...option.ClientOption) (*LookupVerifier, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity toolkit client: %w", err)
	}
	return &LookupVerifier{svc: svc, projectID: projectID, now: time.Now}, nil
}

// Verify checks the token locally and then resolves it to its account.
func (v *LookupVerifier) Verify(ctx context.Context, token string) (*models.AuthUser, error) {
	if err := Precheck(token, v.projectID, v.now()); err != nil {
		return nil, err
	}

	resp, err := v.svc.Relyingparty.GetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartyGetAccountInfoRequest{
		IdToken: token,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}
	if len(resp.Users) == 0 || resp.Users[0].LocalId == "" {
		return nil, ErrTokenRejected
	}

	u := resp.Users[0]
	return &models.AuthUser{
		UserID:      u.LocalId,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}, nil
}
