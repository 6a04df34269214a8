package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
	"campaign-site-backend/pkg/utils"
)

// AuthHandler serves admin login and token refresh.
type AuthHandler struct {
	db         database.DatabaseInterface
	jwtService *utils.JWTService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(db database.DatabaseInterface, jwtService *utils.JWTService) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtService: jwtService,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		utils.WriteValidationErrorResponse(w, "Email and password are required", "")
		return
	}

	admin, err := h.db.GetAdminByEmail(req.Email)
	if err != nil {
		// Same message for unknown email and wrong password
		utils.WriteUnauthorizedResponse(w, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.WriteUnauthorizedResponse(w, "Invalid email or password")
		return
	}

	accessToken, refreshToken, expiresIn, err := h.jwtService.GenerateTokenPair(admin.ID, admin.Email)
	if err != nil {
		utils.WriteInternalServerErrorResponse(w, "Failed to create session")
		return
	}

	utils.WriteSuccessResponse(w, models.LoginResponse{
		User:         *admin,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	})
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshTokenRequest
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.WriteBadRequestResponse(w, "Invalid request body")
		return
	}

	if req.RefreshToken == "" {
		utils.WriteValidationErrorResponse(w, "refresh_token is required", "")
		return
	}

	accessToken, expiresIn, err := h.jwtService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		utils.WriteUnauthorizedResponse(w, "Invalid refresh token")
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"access_token": accessToken,
		"expires_in":   expiresIn,
	})
}
