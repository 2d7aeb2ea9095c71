package session

import "errors"

// ErrNotConfigured indicates no admin secret is configured. It is distinct
// from a wrong-password failure so the operator can tell a deployment problem
// apart from a typo.
var ErrNotConfigured = errors.New("admin password is not configured")

// ErrInvalidCredentials indicates the submitted password does not match the
// configured secret.
var ErrInvalidCredentials = errors.New("invalid password")
