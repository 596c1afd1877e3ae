package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	"github.com/south-ventures/tikang-front-owner/internal/redis"
	"github.com/south-ventures/tikang-front-owner/internal/views"
)

// DashboardAPI defines the backend operation used by DashboardHandler.
type DashboardAPI interface {
	Dashboard(ctx context.Context, userID string) (*owner.DashboardData, error)
}

type DashboardHandler struct {
	api DashboardAPI
	// cache may be nil; the summary is then recomputed on every request.
	cache *redis.ViewCache[views.DashboardSummary]
	now   func() time.Time
}

func NewDashboardHandler(api DashboardAPI, cache *redis.ViewCache[views.DashboardSummary]) *DashboardHandler {
	return &DashboardHandler{api: api, cache: cache, now: time.Now}
}

// Get returns the dashboard summary, served from cache when fresh. A cache
// miss falls through to the backend and writes the recomputed view back.
func (h *DashboardHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request.Context()
	key := redis.DashboardKey(user.UserID)

	if h.cache != nil {
		if summary, ok := h.cache.Get(ctx, key); ok {
			c.JSON(http.StatusOK, summary)
			return
		}
	}

	data, err := h.api.Dashboard(ctx, user.UserID)
	if err != nil {
		respondMutationError(c, err, "Failed to load dashboard")
		return
	}
	summary := views.BuildDashboardSummary(*data, h.now())

	if h.cache != nil {
		h.cache.Set(ctx, key, &summary)
	}
	c.JSON(http.StatusOK, summary)
}

// Invalidate drops the cached summary for one owner. Called when the poller
// or the events stream reports booking activity.
func (h *DashboardHandler) Invalidate(ctx context.Context, userID string) {
	if h.cache != nil {
		h.cache.Delete(ctx, redis.DashboardKey(userID))
	}
}
