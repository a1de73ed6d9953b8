package repository

import (
	"context"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

// ProfileRepository is the connection store adapter. It reads and writes
// the per-provider connection-id fields on the profiles table.
type ProfileRepository interface {
	// GetByUserID returns the user's profile, or ErrProfileNotFound.
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)

	// SetConnectionID stores connectionID in the provider's column for the
	// given user. Unregistered providers are rejected with ErrUnknownProvider.
	SetConnectionID(ctx context.Context, userID, provider, connectionID string) error

	// ClearConnectionID clears the provider's column on whichever profile
	// currently holds connectionID. The match is by connection-id value, not
	// by user id, because deletion requests do not carry one. Returns the
	// number of rows cleared; zero is not an error.
	ClearConnectionID(ctx context.Context, connectionID, provider string) (int64, error)
}
