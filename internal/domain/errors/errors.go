package errors

import "errors"

var (
	// ErrUserNotFound indicates that no user matched the given identifier
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound indicates that the user has no profile record
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoActiveSubscription indicates that the user has no active subscription
	ErrNoActiveSubscription = errors.New("no active subscription found")

	// ErrInvalidRequest indicates that a required input was missing or malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownProvider indicates that the provider key is not registered
	ErrUnknownProvider = errors.New("unknown integration provider")

	// ErrMissingUserIdentifier indicates that a webhook payload carried no
	// resolvable end-user identifier
	ErrMissingUserIdentifier = errors.New("missing user identifier in webhook payload")

	// ErrUpstream indicates that a call to an external service failed.
	// The operation is terminal for the request; no compensating local
	// writes are attempted.
	ErrUpstream = errors.New("upstream service error")
)
