// Package auth provides authentication and authorization primitives.
//
// Subpackages:
//   - session: Server-side session management
//   - mfa, webauthn: MFA support (TOTP with recovery codes, WebAuthn)
//   - cloud/adapters: Sign-up and sign-in through Cognito, Entra ID and Firebase
//
// Features:
//   - Unified Claims structure for identity
//   - Token verification interface
//
// Usage:
//
//	verifier := auth.NewInstrumentedVerifier(next)
//	claims, err := verifier.Verify(ctx, token)
package auth

import (
	"context"
)

// Claims represents the standard identity claims
type Claims struct {
	Subject   string   `json:"sub"`
	Issuer    string   `json:"iss"`
	Audience  []string `json:"aud"`
	ExpiresAt int64    `json:"exp"`
	IssuedAt  int64    `json:"iat"`

	// Extended
	Email    string                 `json:"email,omitempty"`
	Role     string                 `json:"role,omitempty"` // Standardize on "role" or "groups"
	Metadata map[string]interface{} `json:"-"`              // Catch-all?
}

// Verifier is responsible for validating an access token / ID token
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// IdentityProvider exchanges user credentials for identity claims
type IdentityProvider interface {
	Login(ctx context.Context, username, password string) (*Claims, error)
}
