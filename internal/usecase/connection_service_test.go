package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	"github.com/Apurva130401/syncflo-backend/internal/usecase"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) SetConnectionID(ctx context.Context, userID, provider, connectionID string) error {
	args := m.Called(ctx, userID, provider, connectionID)
	return args.Error(0)
}

func (m *MockProfileRepository) ClearConnectionID(ctx context.Context, connectionID, provider string) (int64, error) {
	args := m.Called(ctx, connectionID, provider)
	return args.Get(0).(int64), args.Error(1)
}

// MockRevoker is a mock implementation of ConnectionRevoker
type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) DeleteConnection(ctx context.Context, connectionID, providerConfigKey string) error {
	args := m.Called(ctx, connectionID, providerConfigKey)
	return args.Error(0)
}

func TestConnectionService_ListConnections(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("single connection emits the stored value", func(t *testing.T) {
		notion := "abc"
		profile := &model.Profile{UserID: "u1", NotionConnectionID: &notion}

		mockRepo := new(MockProfileRepository)
		mockRepo.On("GetByUserID", ctx, "u1").Return(profile, nil)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		conns, err := svc.ListConnections(ctx, "u1")

		assert.NoError(t, err)
		assert.Equal(t, []usecase.Connection{{Provider: "notion", ConnectionID: "abc"}}, conns)
		mockRepo.AssertExpectations(t)
	})

	t.Run("connections come back in registry order", func(t *testing.T) {
		slack := "conn_slack"
		gcal := "conn_gcal"
		stripe := "conn_stripe"
		profile := &model.Profile{
			UserID:                     "u1",
			SlackConnectionID:          &slack,
			GoogleCalendarConnectionID: &gcal,
			StripeConnectionID:         &stripe,
		}

		mockRepo := new(MockProfileRepository)
		mockRepo.On("GetByUserID", ctx, "u1").Return(profile, nil)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		conns, err := svc.ListConnections(ctx, "u1")

		assert.NoError(t, err)
		assert.Equal(t, []usecase.Connection{
			{Provider: "google-calendar", ConnectionID: "conn_gcal"},
			{Provider: "stripe", ConnectionID: "conn_stripe"},
			{Provider: "slack", ConnectionID: "conn_slack"},
		}, conns)
	})

	t.Run("missing profile yields empty list, not an error", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("GetByUserID", ctx, "nobody").Return(nil, domainErrors.ErrProfileNotFound)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		conns, err := svc.ListConnections(ctx, "nobody")

		assert.NoError(t, err)
		assert.Empty(t, conns)
		assert.NotNil(t, conns)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("GetByUserID", ctx, "u1").Return(nil, errors.New("connection refused"))

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		_, err := svc.ListConnections(ctx, "u1")

		assert.Error(t, err)
	})
}

func TestConnectionService_DeleteConnection(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("missing inputs are rejected before any side effect", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRevoker := new(MockRevoker)

		svc := usecase.NewConnectionService(mockRepo, mockRevoker, logger)

		err := svc.DeleteConnection(ctx, "", "conn_123")
		assert.True(t, errors.Is(err, domainErrors.ErrInvalidRequest))

		err = svc.DeleteConnection(ctx, "stripe", "")
		assert.True(t, errors.Is(err, domainErrors.ErrInvalidRequest))

		mockRevoker.AssertNotCalled(t, "DeleteConnection")
		mockRepo.AssertNotCalled(t, "ClearConnectionID")
	})

	t.Run("remote failure aborts with local state untouched", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRevoker := new(MockRevoker)
		mockRevoker.On("DeleteConnection", ctx, "conn_123", "stripe").
			Return(fmt.Errorf("%w: nango returned 500", domainErrors.ErrUpstream))

		svc := usecase.NewConnectionService(mockRepo, mockRevoker, logger)
		err := svc.DeleteConnection(ctx, "stripe", "conn_123")

		assert.True(t, errors.Is(err, domainErrors.ErrUpstream))
		mockRepo.AssertNotCalled(t, "ClearConnectionID")
	})

	t.Run("remote success with no matching local row still succeeds", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("ClearConnectionID", ctx, "conn_123", "stripe").Return(int64(0), nil)
		mockRevoker := new(MockRevoker)
		mockRevoker.On("DeleteConnection", ctx, "conn_123", "stripe").Return(nil)

		svc := usecase.NewConnectionService(mockRepo, mockRevoker, logger)
		err := svc.DeleteConnection(ctx, "stripe", "conn_123")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockRevoker.AssertExpectations(t)
	})

	t.Run("remote success clears the matching local field", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("ClearConnectionID", ctx, "conn_abc", "notion").Return(int64(1), nil)
		mockRevoker := new(MockRevoker)
		mockRevoker.On("DeleteConnection", ctx, "conn_abc", "notion").Return(nil)

		svc := usecase.NewConnectionService(mockRepo, mockRevoker, logger)
		err := svc.DeleteConnection(ctx, "notion", "conn_abc")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unregistered provider after remote success is non-fatal", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRevoker := new(MockRevoker)
		mockRevoker.On("DeleteConnection", ctx, "conn_123", "jira").Return(nil)

		svc := usecase.NewConnectionService(mockRepo, mockRevoker, logger)
		err := svc.DeleteConnection(ctx, "jira", "conn_123")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "ClearConnectionID")
	})
}

func TestConnectionService_HandleConnectionEvent(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	authCreation := func(provider, connectionID, endUserID string) *usecase.ConnectionEvent {
		return &usecase.ConnectionEvent{
			Type:         "auth",
			Operation:    "creation",
			Success:      true,
			Provider:     provider,
			ConnectionID: connectionID,
			EndUserID:    endUserID,
		}
	}

	t.Run("successful auth creation persists the connection", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("SetConnectionID", ctx, "u42", "slack", "c1").Return(nil)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, authCreation("slack", "c1", "u42"))

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("replayed event overwrites with the same value", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("SetConnectionID", ctx, "u42", "slack", "c1").Return(nil).Twice()

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		assert.NoError(t, svc.HandleConnectionEvent(ctx, authCreation("slack", "c1", "u42")))
		assert.NoError(t, svc.HandleConnectionEvent(ctx, authCreation("slack", "c1", "u42")))

		mockRepo.AssertExpectations(t)
	})

	t.Run("missing user identifier fails closed", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, authCreation("slack", "c1", ""))

		assert.True(t, errors.Is(err, domainErrors.ErrMissingUserIdentifier))
		mockRepo.AssertNotCalled(t, "SetConnectionID")
	})

	t.Run("externalId is accepted as the user identifier", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("SetConnectionID", ctx, "u42", "slack", "c1").Return(nil)

		event := authCreation("slack", "c1", "")
		event.ExternalID = "u42"

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, event)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("nested endUser.endUserId is accepted", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("SetConnectionID", ctx, "u7", "notion", "c9").Return(nil)

		event := authCreation("notion", "c9", "")
		event.EndUser.EndUserID = "u7"

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, event)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-matching event type is ignored without store calls", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, &usecase.ConnectionEvent{
			Type: "sync", Operation: "creation", Success: true,
			Provider: "slack", ConnectionID: "c1", EndUserID: "u42",
		})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "SetConnectionID")
	})

	t.Run("failed auth creation is ignored", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, &usecase.ConnectionEvent{
			Type: "auth", Operation: "creation", Success: false,
			Provider: "slack", ConnectionID: "c1", EndUserID: "u42",
		})

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "SetConnectionID")
	})

	t.Run("unregistered provider is acknowledged but not persisted", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, authCreation("jira", "c1", "u42"))

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "SetConnectionID")
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		mockRepo.On("SetConnectionID", ctx, "u42", "slack", "c1").
			Return(errors.New("write failed"))

		svc := usecase.NewConnectionService(mockRepo, new(MockRevoker), logger)
		err := svc.HandleConnectionEvent(ctx, authCreation("slack", "c1", "u42"))

		assert.Error(t, err)
	})
}
