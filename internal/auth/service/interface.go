// Package service provides technical services for authentication operations.
//
// This package implements the token codec (signed, time-bound identity
// tokens) and password hashing used by the login and registration flows.
package service

import "time"

// TokenCodec produces and consumes signed bearer tokens.
//
// Tokens are stateless: nothing is stored server-side, and a token expires
// intrinsically at its expiration timestamp. The signature must verify
// against the single process-wide secret before any field is trusted.
type TokenCodec interface {
	// Issue creates a signed token for the subject with an empty claims set.
	Issue(subject string) (string, error)

	// IssueWithClaims creates a signed token for the subject carrying custom
	// claims. Reserved claims (sub, iat, exp) always win over custom entries.
	IssueWithClaims(subject string, claims map[string]any) (string, error)

	// DecodeClaims parses the token and verifies its signature, returning the
	// embedded claims. It does NOT reject expired tokens: expiry is checked
	// by IsValid so callers can still inspect claims of an expired token.
	// Returns domain.ErrInvalidToken for malformed or tampered tokens.
	DecodeClaims(token string) (Claims, error)

	// Subject extracts the subject claim, failing like DecodeClaims.
	Subject(token string) (string, error)

	// ExpiresAt extracts the expiration timestamp, failing like DecodeClaims.
	ExpiresAt(token string) (time.Time, error)

	// IsValid reports whether the token's signature verifies, its subject
	// equals expectedSubject, and the current time is strictly before its
	// expiration timestamp.
	IsValid(token string, expectedSubject string) bool
}

// Claims is the decoded payload of a token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Custom    map[string]any
}

// PasswordService defines operations for password hashing and verification.
// Implementations must use an industry-standard hashing algorithm (argon2).
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (string, error)

	// Compare compares a plain text password against a stored hash.
	// Returns true on match, false otherwise. This is constant-time to
	// prevent timing attacks.
	Compare(plainPassword string, hashedPassword string) bool
}
