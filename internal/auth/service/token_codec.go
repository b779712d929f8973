package service

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/recipes/internal/auth/domain"
	apperrors "github.com/allisson/recipes/internal/errors"
)

// reserved claim names controlled by the codec, never by callers.
var reservedClaims = map[string]struct{}{
	"sub": {},
	"iat": {},
	"exp": {},
}

// tokenCodec implements TokenCodec using HMAC-SHA256 signing.
type tokenCodec struct {
	key      []byte
	validity time.Duration
	parser   *jwt.Parser
}

// NewTokenCodec creates a TokenCodec from the base64-encoded secret key and
// the token validity window. The key is decoded once at startup; an empty or
// undecodable key is a configuration error.
func NewTokenCodec(base64Key string, validity time.Duration) (TokenCodec, error) {
	if base64Key == "" {
		return nil, apperrors.New("auth secret key is required")
	}

	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode auth secret key")
	}

	// Expiry is deliberately not validated at parse time: DecodeClaims only
	// answers "is this token authentic", IsValid answers "is it still good".
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	return &tokenCodec{
		key:      key,
		validity: validity,
		parser:   parser,
	}, nil
}

// Issue creates a signed token for the subject with an empty claims set.
func (t *tokenCodec) Issue(subject string) (string, error) {
	return t.IssueWithClaims(subject, nil)
}

// IssueWithClaims creates a signed token carrying custom claims.
func (t *tokenCodec) IssueWithClaims(subject string, claims map[string]any) (string, error) {
	now := time.Now().UTC()

	mapClaims := jwt.MapClaims{}
	for name, value := range claims {
		if _, reserved := reservedClaims[name]; reserved {
			continue
		}
		mapClaims[name] = value
	}
	mapClaims["sub"] = subject
	mapClaims["iat"] = jwt.NewNumericDate(now)
	mapClaims["exp"] = jwt.NewNumericDate(now.Add(t.validity))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// DecodeClaims parses and verifies the token signature, returning its claims.
func (t *tokenCodec) DecodeClaims(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}

	parsed, err := t.parser.ParseWithClaims(token, &mapClaims, func(*jwt.Token) (any, error) {
		return t.key, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, authDomain.ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return Claims{}, authDomain.ErrInvalidToken
	}

	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return Claims{}, authDomain.ErrInvalidToken
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return Claims{}, authDomain.ErrInvalidToken
	}

	custom := make(map[string]any)
	for name, value := range mapClaims {
		if _, reserved := reservedClaims[name]; reserved {
			continue
		}
		custom[name] = value
	}

	return Claims{
		Subject:   subject,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
		Custom:    custom,
	}, nil
}

// Subject extracts the subject claim from a verified token.
func (t *tokenCodec) Subject(token string) (string, error) {
	claims, err := t.DecodeClaims(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExpiresAt extracts the expiration timestamp from a verified token.
func (t *tokenCodec) ExpiresAt(token string) (time.Time, error) {
	claims, err := t.DecodeClaims(token)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt, nil
}

// IsValid reports whether the token is authentic, matches the expected
// subject, and has not yet expired (now strictly before exp).
func (t *tokenCodec) IsValid(token string, expectedSubject string) bool {
	claims, err := t.DecodeClaims(token)
	if err != nil {
		return false
	}

	if claims.Subject != expectedSubject {
		return false
	}

	return time.Now().UTC().Before(claims.ExpiresAt)
}
