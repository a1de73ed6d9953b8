package nango

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
)

const defaultBaseURL = "https://api.nango.dev"

// Client talks to the Nango connection-management API.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    *zap.Logger
}

// NewClient creates a new Nango API client
func NewClient(baseURL, secretKey string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// DeleteConnection revokes a connection at Nango.
// DELETE /connection/{connectionId}?provider_config_key={key}
//
// A 404/410 response means the connection is already gone on the Nango side
// and is treated as success, so repeated deletes stay idempotent.
func (c *Client) DeleteConnection(ctx context.Context, connectionID, providerConfigKey string) error {
	endpoint := fmt.Sprintf("%s/connection/%s?provider_config_key=%s",
		c.baseURL, url.PathEscape(connectionID), url.QueryEscape(providerConfigKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", domainErrors.ErrUpstream, err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("Nango: connection delete request failed",
			zap.String("connection_id", connectionID),
			zap.String("provider_config_key", providerConfigKey),
			zap.Error(err))
		return fmt.Errorf("%w: %v", domainErrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		c.logger.Info("Nango: connection already gone",
			zap.String("connection_id", connectionID),
			zap.Int("status_code", resp.StatusCode))
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)

		var errResp map[string]interface{}
		json.Unmarshal(respBody, &errResp)
		message, _ := errResp["message"].(string)

		c.logger.Error("Nango: connection delete failed",
			zap.String("connection_id", connectionID),
			zap.String("provider_config_key", providerConfigKey),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))

		if message != "" {
			return fmt.Errorf("%w: nango returned %d: %s", domainErrors.ErrUpstream, resp.StatusCode, message)
		}
		return fmt.Errorf("%w: nango returned %d", domainErrors.ErrUpstream, resp.StatusCode)
	}

	c.logger.Info("Nango: connection deleted",
		zap.String("connection_id", connectionID),
		zap.String("provider_config_key", providerConfigKey))

	return nil
}
