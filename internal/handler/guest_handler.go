package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/views"
)

// GuestAPI defines the backend guest operations used by GuestHandler.
type GuestAPI interface {
	FullBookingInfo(ctx context.Context, lessorID string) ([]owner.GuestBooking, error)
}

type GuestHandler struct {
	api GuestAPI
	now func() time.Time
}

func NewGuestHandler(api GuestAPI) *GuestHandler {
	return &GuestHandler{api: api, now: time.Now}
}

// List returns the guest overview: current, completed and cancelled guests,
// one row per guest (latest check-in wins), with full per-guest booking
// history alongside. ?q= filters by guest name or email.
func (h *GuestHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	rows, err := h.api.FullBookingInfo(c.Request.Context(), user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load guests")
		return
	}
	overview := views.BuildGuestOverview(rows, h.now(), c.Query("q"))
	c.JSON(http.StatusOK, overview)
}
