package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	router, deps := setupTestRouter(t)
	deps.auth.On("Login", anyCtx, "hunter2").Return("signed-token", time.Now().Add(time.Hour), nil)
	deps.auth.On("Login", anyCtx, "wrong").Return("", time.Time{}, service.ErrInvalidCredentials)

	w := PerformRequest(router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{Password: "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	decode(t, w, &resp)
	assert.Equal(t, "signed-token", resp.Token)
	assert.InDelta(t, 3600, resp.ExpiresIn, 5)

	w = PerformRequest(router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequest(router, http.MethodPost, "/api/v1/auth/login", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWithRealService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth, err := service.NewAuthService("hunter2", "test-secret")
	require.NoError(t, err)
	router := gin.New()
	RegisterRoutes(router, Dependencies{Auth: auth})

	w := PerformRequest(router, http.MethodPost, "/api/v1/auth/login", types.LoginRequest{Password: "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.LoginResponse
	decode(t, w, &resp)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := gin.New()
	RegisterRoutes(healthy, Dependencies{HealthCheck: func(ctx context.Context) error { return nil }})
	w := PerformRequest(healthy, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down := gin.New()
	RegisterRoutes(down, Dependencies{HealthCheck: func(ctx context.Context) error { return errors.New("no db") }})
	w = PerformRequest(down, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
