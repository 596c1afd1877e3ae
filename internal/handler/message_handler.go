package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/views"
)

// MessageAPI defines the backend messaging operations used by MessageHandler.
type MessageAPI interface {
	Conversations(ctx context.Context, userID string) ([]owner.Message, error)
	SendMessage(ctx context.Context, req owner.SendMessageRequest) error
}

type MessageHandler struct {
	api MessageAPI
}

func NewMessageHandler(api MessageAPI) *MessageHandler {
	return &MessageHandler{api: api}
}

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Message     string `json:"message" validate:"required"`
	PropertyID  string `json:"property_id"`
}

// List rebuilds the conversation list from the flat message dump, one
// thread per counterpart, messages oldest first.
func (h *MessageHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	messages, err := h.api.Conversations(c.Request.Context(), user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load conversations")
		return
	}

	conversations := views.GroupConversations(user.UserID, messages)
	for i := range conversations {
		views.SortMessagesByTime(conversations[i].Messages)
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// Send delivers a message to a guest, with the session user as sender.
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, _ := middleware.CurrentUser(c)
	err := h.api.SendMessage(c.Request.Context(), owner.SendMessageRequest{
		SenderID:    user.UserID,
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Message:     req.Message,
		PropertyID:  req.PropertyID,
	})
	if err != nil {
		respondMutationError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
