package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/config"
	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret-not-for-production",
		TokenTTL:  60,
		Issuer:    "fabrication-api",
	}
}

func testUser() *domain.User {
	return &domain.User{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Username:    "meena",
		DisplayName: "Meena R",
		Role:        RoleStaff,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testAuthConfig())
	require.NoError(t, err)

	user := testUser()
	token, expiresAt, err := issuer.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	userCtx, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.UserID)
	assert.Equal(t, "meena", userCtx.Username)
	assert.Equal(t, RoleStaff, userCtx.Role)
	assert.False(t, userCtx.IsAdmin())
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewTokenIssuer(testAuthConfig())
	require.NoError(t, err)
	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	other, err := NewTokenIssuer(&config.AuthConfig{
		JWTSecret: "a-different-secret",
		TokenTTL:  60,
		Issuer:    "fabrication-api",
	})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer, err := NewTokenIssuer(&config.AuthConfig{
		JWTSecret: "test-secret-not-for-production",
		TokenTTL:  -1,
		Issuer:    "fabrication-api",
	})
	require.NoError(t, err)

	token, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer(&config.AuthConfig{})
	assert.Error(t, err)
}

func TestMiddleware_Authenticate(t *testing.T) {
	issuer, err := NewTokenIssuer(testAuthConfig())
	require.NoError(t, err)

	cfg := &config.Config{ApiKey: config.ApiKeyConfig{Value: "valid-api-key"}}
	mw := NewMiddleware(issuer, cfg, zap.NewNop())

	var gotUser *UserContext
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("api key grants system admin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/orders", nil)
		req.Header.Set("x-api-key", "valid-api-key")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotUser)
		assert.True(t, gotUser.IsAdmin())
	})

	t.Run("invalid api key rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/orders", nil)
		req.Header.Set("x-api-key", "nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		token, _, err := issuer.Issue(testUser())
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotUser)
		assert.Equal(t, "meena", gotUser.Username)
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/orders", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	issuer, err := NewTokenIssuer(testAuthConfig())
	require.NoError(t, err)
	mw := NewMiddleware(issuer, &config.Config{}, zap.NewNop())

	handler := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("DELETE", "/api/v1/orders/x", nil)
	staff := &UserContext{UserID: uuid.New(), Username: "meena", Role: RoleStaff}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(WithUserContext(req.Context(), staff)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := &UserContext{UserID: uuid.New(), Username: "boss", Role: RoleAdmin}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(WithUserContext(req.Context(), admin)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
