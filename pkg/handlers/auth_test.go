package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/utils"
)

func newAuthFixture(t *testing.T, password string) (*AuthHandler, *utils.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	db := &fakeStore{
		getAdminFn: func(email string) (*models.AdminUser, error) {
			if email != "admin@example.com" {
				return nil, fmt.Errorf("admin user not found")
			}
			return &models.AdminUser{
				ID:       "u1",
				Email:    email,
				Password: string(hash),
			}, nil
		},
	}

	jwtService := utils.NewJWTService("test-secret")
	return NewAuthHandler(db, jwtService), jwtService
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials return a token pair", func(t *testing.T) {
		h, jwtService := newAuthFixture(t, "hunter2")

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body struct {
			Data models.LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data.AccessToken)
		assert.NotEmpty(t, body.Data.RefreshToken)
		assert.Equal(t, "admin@example.com", body.Data.User.Email)

		claims, err := jwtService.ValidateToken(body.Data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "access", claims.Type)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		h, _ := newAuthFixture(t, "hunter2")

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email is 401 with the same message", func(t *testing.T) {
		h, _ := newAuthFixture(t, "hunter2")

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"hunter2"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
	})

	t.Run("hash never leaks in the response", func(t *testing.T) {
		h, _ := newAuthFixture(t, "hunter2")

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$")
	})
}

func TestRefresh(t *testing.T) {
	t.Run("refresh token yields a new access token", func(t *testing.T) {
		h, jwtService := newAuthFixture(t, "hunter2")

		_, refreshToken, _, err := jwtService.GenerateTokenPair("u1", "admin@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
			strings.NewReader(fmt.Sprintf(`{"refresh_token":%q}`, refreshToken)))
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body struct {
			Data struct {
				AccessToken string `json:"access_token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		claims, err := jwtService.ValidateToken(body.Data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "access", claims.Type)
	})

	t.Run("access token is rejected as refresh token", func(t *testing.T) {
		h, jwtService := newAuthFixture(t, "hunter2")

		accessToken, _, _, err := jwtService.GenerateTokenPair("u1", "admin@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
			strings.NewReader(fmt.Sprintf(`{"refresh_token":%q}`, accessToken)))
		rec := httptest.NewRecorder()
		h.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
