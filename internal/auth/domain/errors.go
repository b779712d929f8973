package domain

import (
	"github.com/allisson/recipes/internal/errors"
)

var (
	// ErrInvalidToken indicates a malformed, unsigned, tampered or expired
	// token. Surfaces as 401.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrUnknownPrincipal indicates a verified token whose subject does not
	// resolve to any stored account. Surfaces as 403, not 401: downstream
	// clients depend on this mapping, so it is kept even though most systems
	// treat an unknown subject as unauthenticated.
	ErrUnknownPrincipal = errors.Wrap(errors.ErrForbidden, "unknown principal")

	// ErrInvalidCredentials indicates a failed username/password login.
	// Returned for both unknown usernames and wrong passwords to prevent
	// account enumeration. Surfaces as 401.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrNotOwner indicates the authenticated principal does not own the
	// target resource. Surfaces as 403.
	ErrNotOwner = errors.Wrap(errors.ErrForbidden, "principal does not own resource")
)
