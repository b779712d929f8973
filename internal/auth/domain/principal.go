// Package domain defines the core authentication domain entities and errors.
package domain

// Principal is the authenticated identity resolved for a request.
//
// It is a narrow projection of the stored account carrying only the fields
// authorization logic needs. It is constructed once at authentication time
// (from a verified token or a verified username/password pair), lives in the
// request context, and is never persisted.
type Principal struct {
	AccountID int64
	Username  string
}
