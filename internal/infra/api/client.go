// Package api implements the remote storefront gateway contracts over HTTP.
// All divergent wire shapes are normalized here, at the boundary; nothing
// beyond this package ever sees a raw server payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Client talks to the remote storefront API. One Client backs every
// gateway interface; per-interface constructors below exist for wiring.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates the API client from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.API.Timeout},
		logger:  logger,
	}
}

// Gateway constructors for dependency injection. The single client
// satisfies every contract.
func NewAuthGateway(c *Client) service.AuthGateway         { return c }
func NewCatalogGateway(c *Client) service.CatalogGateway   { return c }
func NewCartGateway(c *Client) service.CartGateway         { return c }
func NewAddressGateway(c *Client) service.AddressGateway   { return c }
func NewCheckoutGateway(c *Client) service.CheckoutGateway { return c }
func NewOrderGateway(c *Client) service.OrderGateway       { return c }

// statusError carries a non-2xx response for callers that need to
// distinguish rejection classes (e.g. login's 401 is "bad credentials",
// not "session expired").
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

// do runs one API request. A 401 on an authenticated call maps to the
// typed session-expired error so the top-level handler can apply the global
// logout policy; every other failure becomes a transport error.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return domainerrors.NewTransportError(err, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Debug("api request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			return domainerrors.ErrSessionExpired
		}

		return domainerrors.NewTransportError(&statusError{code: resp.StatusCode, body: strings.TrimSpace(string(raw))}, "")
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewTransportError(err, "the storefront service returned an unreadable response")
	}

	return nil
}
