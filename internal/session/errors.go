package session

import "errors"

var (
	// ErrInvalidCredentialToken means the token decoded but is missing the
	// claims a login requires. The session is left untouched.
	ErrInvalidCredentialToken = errors.New("token missing required claims")

	// ErrExpiredOrInvalidToken means the backend rejected the stored token,
	// or the validation round trip failed outright. Either way the session
	// has been cleared: authentication fails closed.
	ErrExpiredOrInvalidToken = errors.New("expired or invalid token")

	// ErrNoSession means no token is stored at all.
	ErrNoSession = errors.New("no active session")
)
