package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mediapp/client-go/internal/client/models"
)

// Auth groups the authentication endpoints.
type Auth struct {
	c *Client
}

func (c *Client) Auth() *Auth {
	return &Auth{c: c}
}

// Login exchanges credentials for a token pair. Token persistence is the
// caller's concern; see the session package.
func (a *Auth) Login(ctx context.Context, credentials models.LoginCredentials) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", credentials, nil, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if resp.AccessToken == "" {
		return models.AuthResponse{}, fmt.Errorf("login response did not include an access token")
	}
	return resp, nil
}

// Refresh exchanges a refresh token for a new access token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/refresh", body, nil, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Validate asks the gateway whether a token is still good.
func (a *Auth) Validate(ctx context.Context, token string) (bool, error) {
	body := map[string]string{"token": token}
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/validate", body, nil, &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}
