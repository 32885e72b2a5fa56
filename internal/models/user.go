package models

import "time"

// AuthUser is the identity resolved from a verified Firebase ID token.
type AuthUser struct {
	UserID      string `json:"userId"`      // Firebase uid
	Email       string `json:"email"`       // Account email, may be empty
	DisplayName string `json:"displayName"` // Account display name, may be empty
	Tier        Tier   `json:"tier"`        // Quota tier resolved from user_roles
}

// UserRoleDB represents a user_roles row
type UserRoleDB struct {
	UserID    string    `json:"user_id" db:"user_id"`       // Firebase uid
	Role      string    `json:"role" db:"role"`             // free, standard or premium
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// ProfileDB represents a profiles row
type ProfileDB struct {
	UserID      string    `json:"user_id" db:"user_id"`
	Email       *string   `json:"email" db:"email"`
	DisplayName *string   `json:"display_name" db:"display_name"`
	AvatarURL   *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ErrorResponse is the uniform error body returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Authentication required. Please sign in to continue.
	Error string `json:"error"`
}

// DeleteAccountResponse reports the rows removed per table
// swagger:model DeleteAccountResponse
type DeleteAccountResponse struct {
	// example: true
	Success bool `json:"success"`

	// Deleted rows per table
	Deleted map[string]int64 `json:"deleted"`
}

// HealthResponse is returned by the health check
// swagger:model HealthResponse
type HealthResponse struct {
	// example: true
	OK bool `json:"ok"`
}
