package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/integration"
)

// ConnectionEvent is a Nango webhook notification about a connection
// lifecycle event.
type ConnectionEvent struct {
	Type      string `json:"type"`
	Operation string `json:"operation"`
	Success   bool   `json:"success"`

	Provider     string `json:"provider"`
	ConnectionID string `json:"connectionId"`

	// The end-user identifier is the id supplied to Nango when the
	// connection flow was initiated. Depending on the Nango version it
	// arrives flat or nested under endUser.
	EndUserID  string `json:"endUserId"`
	ExternalID string `json:"externalId"`
	EndUser    struct {
		EndUserID string `json:"endUserId"`
	} `json:"endUser"`
}

// IsAuthCreationSuccess reports whether the event is a successful new-auth
// notification, the only kind this service processes.
func (e *ConnectionEvent) IsAuthCreationSuccess() bool {
	return e.Type == "auth" && e.Operation == "creation" && e.Success
}

// UserIdentifier resolves the end-user id from the payload. The connection
// id is deliberately never used as a fallback: it identifies the
// connection, not the user.
func (e *ConnectionEvent) UserIdentifier() string {
	if e.EndUserID != "" {
		return e.EndUserID
	}
	if e.EndUser.EndUserID != "" {
		return e.EndUser.EndUserID
	}
	return e.ExternalID
}

// HandleConnectionEvent persists the connection id carried by a successful
// auth-creation event. Non-matching events are ignored without side
// effects; unknown providers are acknowledged but not persisted so new
// providers can be enabled upstream before the registry learns about them.
func (s *ConnectionService) HandleConnectionEvent(ctx context.Context, event *ConnectionEvent) error {
	if !event.IsAuthCreationSuccess() {
		s.logger.Debug("Ignoring webhook event",
			zap.String("type", event.Type),
			zap.String("operation", event.Operation),
			zap.Bool("success", event.Success))
		return nil
	}

	userID := event.UserIdentifier()
	if userID == "" {
		s.logger.Error("Webhook payload carried no end-user identifier",
			zap.String("provider", event.Provider),
			zap.String("connection_id", event.ConnectionID))
		return fmt.Errorf("%w: provider %s", domainErrors.ErrMissingUserIdentifier, event.Provider)
	}

	if !integration.IsRegistered(event.Provider) {
		s.logger.Warn("Webhook for unregistered provider, not persisting",
			zap.String("provider", event.Provider),
			zap.String("connection_id", event.ConnectionID))
		return nil
	}

	if err := s.profileRepo.SetConnectionID(ctx, userID, event.Provider, event.ConnectionID); err != nil {
		return err
	}

	s.logger.Info("Connection persisted",
		zap.String("user_id", userID),
		zap.String("provider", event.Provider),
		zap.String("connection_id", event.ConnectionID))

	return nil
}
