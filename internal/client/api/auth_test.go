package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediapp/client-go/internal/client/models"
)

func TestLogin_ReturnsTokenPair(t *testing.T) {
	c, captured := newTestClient(t, "", jsonOK(`{"accessToken":"A1","refreshToken":"R1","userId":7}`))

	resp, err := c.Auth().Login(context.Background(), models.LoginCredentials{
		Email:    "patient@mediapp.com",
		Password: "Patient123",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/auth/login", captured.path)
	assert.JSONEq(t, `{"email":"patient@mediapp.com","password":"Patient123"}`, string(captured.body))
	assert.Equal(t, "A1", resp.AccessToken)
	assert.Equal(t, "R1", resp.RefreshToken)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestLogin_MissingAccessTokenIsAnError(t *testing.T) {
	c, _ := newTestClient(t, "", jsonOK(`{"refreshToken":"R1"}`))

	_, err := c.Auth().Login(context.Background(), models.LoginCredentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token")
}

func TestRefresh_SendsRefreshToken(t *testing.T) {
	c, captured := newTestClient(t, "", jsonOK(`{"accessToken":"A2"}`))

	access, err := c.Auth().Refresh(context.Background(), "R1")
	require.NoError(t, err)

	assert.Equal(t, "/auth/refresh", captured.path)
	assert.JSONEq(t, `{"refreshToken":"R1"}`, string(captured.body))
	assert.Equal(t, "A2", access)
}

func TestValidate(t *testing.T) {
	c, captured := newTestClient(t, "", jsonOK(`{"valid":true}`))

	valid, err := c.Auth().Validate(context.Background(), "A1")
	require.NoError(t, err)

	assert.Equal(t, "/auth/validate", captured.path)
	assert.JSONEq(t, `{"token":"A1"}`, string(captured.body))
	assert.True(t, valid)
}
