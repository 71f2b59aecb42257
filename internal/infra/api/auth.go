package api

import (
	"context"
	"net/http"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges a username and password for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}

	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return "", asCredentialError(err)
	}
	if out.Token == "" {
		return "", domainerrors.NewTransportError(errors.New("login response carried no token"), "")
	}

	return out.Token, nil
}

// Register creates an account and returns its bearer token; the server
// logs the new account in as part of registration.
func (c *Client) Register(ctx context.Context, input service.RegisterInput) (string, error) {
	body := map[string]string{
		"name":     input.Name,
		"username": input.Username,
		"password": input.Password,
	}

	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", domainerrors.NewTransportError(errors.New("register response carried no token"), "")
	}

	return out.Token, nil
}

// asCredentialError converts a rejected login into the typed bad-credentials
// error. An unauthenticated 401 means wrong username or password, not an
// expired session.
func asCredentialError(err error) error {
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		switch statusErr.code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return domainerrors.ErrInvalidCredentials
		}
	}

	return err
}
