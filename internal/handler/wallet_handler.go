package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/events"
	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/session"
	"github.com/south-ventures/tikang-front-owner/internal/utils"
)

// WalletAPI defines the backend wallet operations used by WalletHandler.
type WalletAPI interface {
	SubmitWalletTransaction(ctx context.Context, token string, sub owner.WalletSubmission) error
	AdminGcashQR(ctx context.Context, token string) (string, error)
	UploadGcashQR(ctx context.Context, token string, qr owner.FilePart) error
}

type WalletHandler struct {
	api      WalletAPI
	sessions *session.Manager
	// publisher may be nil when Redis is not configured; submissions still
	// work, replicas just won't hear about them.
	publisher *events.Publisher
}

func NewWalletHandler(api WalletAPI, sessions *session.Manager, publisher *events.Publisher) *WalletHandler {
	return &WalletHandler{api: api, sessions: sessions, publisher: publisher}
}

// Get refreshes the profile and returns the settled balance and payout QR.
// The balance is never computed locally; pending submissions don't move it.
func (h *WalletHandler) Get(c *gin.Context) {
	user, err := h.sessions.FetchUser(c.Request.Context())
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Session expired")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tikang_cash": user.TikangCash,
		"gcash_qr":    user.GcashQR,
	})
}

// Submit files a deposit or withdrawal for admin review. Deposits must carry
// a GCash receipt image; withdrawals are paid out against the QR on file.
func (h *WalletHandler) Submit(c *gin.Context) {
	txType := c.PostForm("type")
	if txType != owner.WalletDeposit && txType != owner.WalletWithdraw {
		middleware.RespondWithError(c, http.StatusBadRequest, "Type must be deposit or withdraw")
		return
	}
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	user, _ := middleware.CurrentUser(c)

	if txType == owner.WalletWithdraw && amount > user.TikangCash {
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount exceeds available balance")
		return
	}

	var receipt *owner.FilePart
	if txType == owner.WalletDeposit {
		header, err := c.FormFile("receipt")
		if err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "Deposit requires a receipt image")
			return
		}
		file, err := header.Open()
		if err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "Failed to read receipt image")
			return
		}
		defer file.Close()
		receipt = &owner.FilePart{Field: "receipt", Filename: header.Filename, Content: file}
	}

	token, _ := h.sessions.Token()
	sub := owner.WalletSubmission{
		UserID:    user.UserID,
		Type:      txType,
		Amount:    amount,
		Reference: utils.GenerateID("wtx"),
		Receipt:   receipt,
	}
	if err := h.api.SubmitWalletTransaction(c.Request.Context(), token, sub); err != nil {
		respondMutationError(c, err, "Failed to submit wallet transaction")
		return
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(c.Request.Context(), events.WalletSubmitted, events.WalletSubmittedEvent{
			OwnerID:   user.UserID,
			Type:      txType,
			Amount:    amount,
			Reference: sub.Reference,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Transaction submitted for review",
		"reference": sub.Reference,
	})
}

// AdminQR returns the platform's deposit QR so the owner knows where to
// send money.
func (h *WalletHandler) AdminQR(c *gin.Context) {
	token, _ := h.sessions.Token()
	qr, err := h.api.AdminGcashQR(c.Request.Context(), token)
	if err != nil {
		respondMutationError(c, err, "Failed to load deposit QR")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gcash_qr": qr})
}

// UploadQR stores the owner's own payout QR image.
func (h *WalletHandler) UploadQR(c *gin.Context) {
	header, err := c.FormFile("gcash_qr")
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "QR image is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Failed to read QR image")
		return
	}
	defer file.Close()

	token, _ := h.sessions.Token()
	part := owner.FilePart{Field: "gcash_qr", Filename: header.Filename, Content: file}
	if err := h.api.UploadGcashQR(c.Request.Context(), token, part); err != nil {
		respondMutationError(c, err, "Failed to upload QR")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "QR uploaded"})
}
