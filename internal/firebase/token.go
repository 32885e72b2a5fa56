package firebase

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Header names a Firebase ID token may arrive in, in order of precedence.
const (
	HeaderFirebaseToken = "x-firebase-token"
	HeaderClientInfo    = "x-client-info"
	HeaderAuthorization = "Authorization"

	clientInfoPrefix = "firebase:"
	issuerPrefix     = "https://securetoken.google.com/"
	clockSkew        = 30 * time.Second
)

var (
	ErrTokenMissing   = errors.New("firebase token missing")
	ErrTokenMalformed = errors.New("firebase token malformed")
	ErrTokenExpired   = errors.New("firebase token expired")
	ErrTokenAudience  = errors.New("firebase token issued for another project")
	ErrTokenRejected  = errors.New("firebase token rejected")
)

// TokenFromRequest extracts the Firebase ID token from the request headers.
// x-firebase-token wins, then a firebase:-prefixed x-client-info, then a Bearer Authorization header.
func TokenFromRequest(r *http.Request) (string, error) {
	if tok := bearerValue(r.Header.Get(HeaderFirebaseToken), true); tok != "" {
		return tok, nil
	}

	if info := strings.TrimSpace(r.Header.Get(HeaderClientInfo)); strings.HasPrefix(info, clientInfoPrefix) {
		if tok := strings.TrimSpace(strings.TrimPrefix(info, clientInfoPrefix)); tok != "" {
			return tok, nil
		}
	}

	if tok := bearerValue(r.Header.Get(HeaderAuthorization), false); tok != "" {
		return tok, nil
	}

	return "", ErrTokenMissing
}

// bearerValue strips an optional "Bearer " scheme. When the scheme is mandatory,
// values without it are ignored.
func bearerValue(header string, schemeOptional bool) string {
	parts := strings.Fields(header)
	switch {
	case len(parts) == 2 && strings.EqualFold(parts[0], "bearer"):
		return parts[1]
	case len(parts) == 1 && schemeOptional:
		return parts[0]
	}
	return ""
}

// Precheck rejects tokens that cannot possibly verify, without a network call.
// The signature is NOT checked here; a passing token still needs remote verification.
func Precheck(tokenString, projectID string, now time.Time) error {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Add(clockSkew)) {
		return ErrTokenExpired
	}

	if projectID != "" {
		if !slices.Contains(claims.Audience, projectID) || claims.Issuer != issuerPrefix+projectID {
			return ErrTokenAudience
		}
	}

	return nil
}
