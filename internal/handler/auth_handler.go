package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/session"
)

// AuthAPI defines the backend auth operations used by AuthHandler.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req owner.RegisterRequest) (string, error)
}

// AuthHandler exchanges credentials with the backend and hands the issued
// token to the session manager.
type AuthHandler struct {
	api      AuthAPI
	sessions *session.Manager
}

func NewAuthHandler(api AuthAPI, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Phone    string `json:"phone" validate:"omitempty,phonedigits"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  *owner.UserProfile `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.api.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.establish(c, token)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.api.Register(c.Request.Context(), owner.RegisterRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		respondMutationError(c, err, "Registration failed")
		return
	}

	h.establish(c, token)
}

// establish runs the local login step on a freshly issued token. A token
// the backend minted without the required claims is a gateway-level fault,
// not a user error.
func (h *AuthHandler) establish(c *gin.Context, token string) {
	user, err := h.sessions.Login(token)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentialToken) {
			middleware.RespondWithError(c, http.StatusBadGateway, "Backend issued an unusable token")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to establish session")
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login"})
}

// Me returns the validated profile the session guard resolved.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RefreshMe bypasses the validation memo and re-fetches the profile, used
// after mutations that change balance or contact fields.
func (h *AuthHandler) RefreshMe(c *gin.Context) {
	user, err := h.sessions.FetchUser(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
