package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/session"
)

// AccountAPI defines the profile-mutation operations used by AccountHandler.
type AccountAPI interface {
	UpdateName(ctx context.Context, token, firstName, lastName string) error
	UpdateEmail(ctx context.Context, token, email string) error
	UpdatePhone(ctx context.Context, token, phone string) error
	UpdatePassword(ctx context.Context, token, password, confirm string) error
}

type AccountHandler struct {
	api      AccountAPI
	sessions *session.Manager
}

func NewAccountHandler(api AccountAPI, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{api: api, sessions: sessions}
}

type UpdateNameRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdatePhoneRequest struct {
	CallingCode string `json:"calling_code" validate:"required"`
	Phone       string `json:"phone" validate:"required,phonedigits"`
}

type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// UpdateName changes the display name. Like every mutation here, the local
// profile is never patched: the backend applies the change and FetchUser
// reloads the authoritative profile afterwards.
func (h *AccountHandler) UpdateName(c *gin.Context) {
	var req UpdateNameRequest
	if !h.bind(c, &req) {
		return
	}
	token, _ := h.sessions.Token()
	if err := h.api.UpdateName(c.Request.Context(), token, req.FirstName, req.LastName); err != nil {
		respondMutationError(c, err, "Failed to update name")
		return
	}
	h.refreshed(c, "Name updated")
}

func (h *AccountHandler) UpdateEmail(c *gin.Context) {
	var req UpdateEmailRequest
	if !h.bind(c, &req) {
		return
	}
	token, _ := h.sessions.Token()
	if err := h.api.UpdateEmail(c.Request.Context(), token, req.Email); err != nil {
		respondMutationError(c, err, "Failed to update email")
		return
	}
	h.refreshed(c, "Email updated")
}

func (h *AccountHandler) UpdatePhone(c *gin.Context) {
	var req UpdatePhoneRequest
	if !h.bind(c, &req) {
		return
	}
	token, _ := h.sessions.Token()
	if err := h.api.UpdatePhone(c.Request.Context(), token, req.CallingCode+req.Phone); err != nil {
		respondMutationError(c, err, "Failed to update phone")
		return
	}
	h.refreshed(c, "Phone updated")
}

func (h *AccountHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Password != req.ConfirmPassword {
		middleware.RespondWithError(c, http.StatusBadRequest, "Passwords do not match")
		return
	}
	token, _ := h.sessions.Token()
	if err := h.api.UpdatePassword(c.Request.Context(), token, req.Password, req.ConfirmPassword); err != nil {
		respondMutationError(c, err, "Failed to update password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *AccountHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return false
	}
	return true
}

// refreshed reloads the profile after a successful mutation and returns it.
// A failed refresh means the session died mid-request; report that instead
// of pretending the stale profile is current.
func (h *AccountHandler) refreshed(c *gin.Context, message string) {
	user, err := h.sessions.FetchUser(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Session expired")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}
