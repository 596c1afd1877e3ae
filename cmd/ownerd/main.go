package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/config"
	"github.com/south-ventures/tikang-front-owner/internal/events"
	"github.com/south-ventures/tikang-front-owner/internal/handler"
	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
	redisClient "github.com/south-ventures/tikang-front-owner/internal/redis"
	"github.com/south-ventures/tikang-front-owner/internal/session"
	"github.com/south-ventures/tikang-front-owner/internal/views"
	"github.com/south-ventures/tikang-front-owner/internal/watch"
)

func main() {
	cfg := config.Load()

	api := owner.NewClient(cfg.OwnerAPIURL, cfg.GuestAPIURL, cfg.MessageAPIURL, cfg.RequestTimeout)

	// Redis is required for the "redis" session backend, otherwise optional:
	// without it there is no view cache and no cross-replica event stream.
	if cfg.SessionBackend == "redis" && cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	var redis *redisClient.Client
	if cfg.RedisAddr != "" {
		var err error
		redis, err = redisClient.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			if cfg.SessionBackend == "redis" {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			log.Printf("Redis unavailable, running without cache: %v", err)
			redis = nil
		}
	}
	if redis != nil {
		defer redis.Close()
	}

	var store session.Store
	switch cfg.SessionBackend {
	case "redis":
		store = session.NewRedisStore(redis.Client)
	default:
		store = session.NewFileStore(cfg.TokenFile)
	}
	sessions := session.NewManager(store, api, cfg.RequestTimeout)

	// A persisted session is revalidated lazily by the guard; at boot just
	// check the token once so a dead session shows up in the logs immediately.
	if token, ok := sessions.Token(); ok {
		checkCtx, cancelCheck := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		if err := api.ValidateToken(checkCtx, token); err != nil {
			log.Printf("Persisted session token failed validation: %v", err)
		}
		cancelCheck()
	}

	var publisher *events.Publisher
	var dashboardCache *redisClient.ViewCache[views.DashboardSummary]
	if redis != nil {
		publisher = events.NewPublisher(redis.Client)
		dashboardCache = redisClient.NewViewCache[views.DashboardSummary](redis.Client, 0)

		// Tell the other replicas when the backend rejects the shared token,
		// so their validation memos don't outlive the session.
		sessions.OnRevoked(func(ownerID string) {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
			defer cancel()
			if err := publisher.Publish(ctx, events.SessionRevoked, events.SessionRevokedEvent{OwnerID: ownerID}); err != nil {
				log.Printf("Failed to publish session revocation: %v", err)
			}
		})
	}

	authHandler := handler.NewAuthHandler(api, sessions)
	bookingHandler := handler.NewBookingHandler(api)
	guestHandler := handler.NewGuestHandler(api)
	propertyHandler := handler.NewPropertyHandler(api, sessions)
	messageHandler := handler.NewMessageHandler(api)
	walletHandler := handler.NewWalletHandler(api, sessions, publisher)
	accountHandler := handler.NewAccountHandler(api, sessions)
	dashboardHandler := handler.NewDashboardHandler(api, dashboardCache)

	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes: no session guard.
	router.POST("/v1/auth/login", authHandler.Login)
	router.POST("/v1/auth/register", authHandler.Register)

	v1 := router.Group("/v1", middleware.RequireSession(sessions))
	{
		v1.POST("/auth/logout", authHandler.Logout)
		v1.GET("/auth/me", authHandler.Me)
		v1.POST("/auth/refresh", authHandler.RefreshMe)

		v1.GET("/dashboard", dashboardHandler.Get)

		v1.GET("/bookings", bookingHandler.List)
		v1.GET("/bookings/calendar", bookingHandler.Calendar)
		v1.POST("/bookings/:bookingId/accept", bookingHandler.Accept)
		v1.POST("/bookings/:bookingId/cancel", bookingHandler.Cancel)
		v1.POST("/bookings/:bookingId/reschedule", bookingHandler.Reschedule)

		v1.GET("/guests", guestHandler.List)

		v1.GET("/properties", propertyHandler.List)
		v1.POST("/properties", propertyHandler.Create)
		v1.PATCH("/properties/:propertyId", propertyHandler.Update)
		v1.DELETE("/properties/:propertyId", propertyHandler.Delete)
		v1.POST("/properties/:propertyId/switch-status", propertyHandler.SwitchStatus)
		v1.POST("/properties/:propertyId/rooms", propertyHandler.CreateRoom)
		v1.PATCH("/rooms/:roomId", propertyHandler.UpdateRoom)
		v1.DELETE("/rooms/:roomId", propertyHandler.DeleteRoom)
		v1.POST("/rooms/:roomId/switch-status", propertyHandler.SwitchRoomStatus)

		v1.GET("/messages", messageHandler.List)
		v1.POST("/messages", messageHandler.Send)

		v1.GET("/wallet", walletHandler.Get)
		v1.POST("/wallet/transactions", walletHandler.Submit)
		v1.GET("/wallet/admin-qr", walletHandler.AdminQR)
		v1.POST("/wallet/qr", walletHandler.UploadQR)

		v1.PATCH("/account/name", accountHandler.UpdateName)
		v1.PATCH("/account/email", accountHandler.UpdateEmail)
		v1.PATCH("/account/phone", accountHandler.UpdatePhone)
		v1.PATCH("/account/password", accountHandler.UpdatePassword)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// New-entry poller: on detected booking activity, drop the cached
	// dashboard and tell the other replicas.
	go func() {
		watcher := watch.New(api, cfg.PollInterval, func(ctx context.Context) {
			user, ok := sessions.Current()
			if !ok {
				return
			}
			dashboardHandler.Invalidate(ctx, user.UserID)
			if publisher != nil {
				_ = publisher.Publish(ctx, events.BookingsChanged, events.BookingsChangedEvent{
					OwnerID: user.UserID,
				})
			}
		})
		watcher.Run(ctx)
	}()

	if redis != nil {
		go func() {
			consumer, _ := os.Hostname()
			subscriber := events.NewSubscriber(redis.Client, "ownerd-group", consumer,
				func(ctx context.Context, event events.Event) error {
					switch event.Type {
					case events.BookingsChanged, events.WalletSubmitted:
						if user, ok := sessions.Current(); ok {
							dashboardHandler.Invalidate(ctx, user.UserID)
						}
					case events.SessionRevoked:
						sessions.Expire()
					}
					return nil
				})
			if err := subscriber.Start(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Subscriber stopped: %v", err)
			}
		}()
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Owner centre starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
