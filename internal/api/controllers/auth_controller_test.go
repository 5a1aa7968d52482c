package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"darkshield/internal/services"
)

func setupAuthRouter() (*gin.Engine, services.TokenServiceInterface) {
	tokens := services.NewTokenService("supersecretkeysupersecretkey1234")
	auth := services.NewAuthService(tokens, "ABC", "1234")

	r := gin.New()
	r.POST("/auth/login", NewAuthController(auth).Login)
	return r, tokens
}

func TestLoginReturnsValidToken(t *testing.T) {
	r, tokens := setupAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ABC","password":"1234"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	require.True(t, tokens.Validate(token))
	require.Equal(t, "ABC", tokens.ExtractSubject(token))
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	r, _ := setupAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ABC","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.Equal(t, "Invalid credentials", resp.Message)
	require.Nil(t, resp.Data)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r, _ := setupAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"ABC"`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
