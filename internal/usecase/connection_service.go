package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/integration"
	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

// Connection is a transient (provider, connectionId) pair materialized from
// the non-empty profile fields. It is never stored in this form.
type Connection struct {
	Provider     string `json:"provider"`
	ConnectionID string `json:"connectionId"`
}

// ConnectionRevoker revokes a connection at the external
// connection-management service.
type ConnectionRevoker interface {
	DeleteConnection(ctx context.Context, connectionID, providerConfigKey string) error
}

// ConnectionService implements connection listing, deletion and webhook
// ingestion over the profile store and the Nango API.
type ConnectionService struct {
	profileRepo repository.ProfileRepository
	revoker     ConnectionRevoker
	logger      *zap.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(
	profileRepo repository.ProfileRepository,
	revoker ConnectionRevoker,
	logger *zap.Logger,
) *ConnectionService {
	return &ConnectionService{
		profileRepo: profileRepo,
		revoker:     revoker,
		logger:      logger,
	}
}

// ListConnections returns the user's active connections in registry order.
// A user without a profile has no connections; that is not an error.
func (s *ConnectionService) ListConnections(ctx context.Context, userID string) ([]Connection, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrProfileNotFound) {
			return []Connection{}, nil
		}
		return nil, err
	}

	connections := []Connection{}
	for _, provider := range integration.Providers() {
		column, ok := integration.ColumnFor(string(provider))
		if !ok {
			continue
		}
		if id, set := profile.ConnectionID(column); set {
			connections = append(connections, Connection{
				Provider:     string(provider),
				ConnectionID: id,
			})
		}
	}

	return connections, nil
}

// DeleteConnection revokes a connection remotely, then clears the local
// field. Ordering matters: the external service is the source of truth for
// connection validity, so a remote failure aborts the operation with local
// state untouched, while local cleanup problems after a successful revoke
// are downgraded to warnings.
func (s *ConnectionService) DeleteConnection(ctx context.Context, providerConfigKey, connectionID string) error {
	if providerConfigKey == "" || connectionID == "" {
		return fmt.Errorf("%w: providerConfigKey and connectionId are required", domainErrors.ErrInvalidRequest)
	}

	if err := s.revoker.DeleteConnection(ctx, connectionID, providerConfigKey); err != nil {
		s.logger.Error("Remote connection revoke failed",
			zap.String("provider_config_key", providerConfigKey),
			zap.String("connection_id", connectionID),
			zap.Error(err))
		return err
	}

	if !integration.IsRegistered(providerConfigKey) {
		s.logger.Warn("Connection revoked remotely for unregistered provider, skipping local cleanup",
			zap.String("provider_config_key", providerConfigKey),
			zap.String("connection_id", connectionID))
		return nil
	}

	rows, err := s.profileRepo.ClearConnectionID(ctx, connectionID, providerConfigKey)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.logger.Info("No local profile referenced the deleted connection",
			zap.String("provider_config_key", providerConfigKey),
			zap.String("connection_id", connectionID))
	}

	return nil
}
