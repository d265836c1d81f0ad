package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvforge/internal/api/middleware"
	"cvforge/internal/auth"
	"cvforge/internal/config"
	"cvforge/internal/entitlement"
	"cvforge/internal/payment"
	"cvforge/internal/purchase"
	"cvforge/internal/storage"
)

const (
	loginRateLimitPerHour = 10
	maxSavedResumes       = 20
)

// RegisterRoutes 注册 API 路由。
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	provider payment.Provider,
	storageClient *storage.Client,
	logger *slog.Logger,
) {
	entitlements := entitlement.NewResolver(db, cfg.Payment.TemplatePriceCents)
	recorder := purchase.NewRecorder(db)

	authHandler := NewAuthHandler(db, authService, redisClient, logger, loginRateLimitPerHour, cfg.Auth.CookieDomain)
	resumeHandler := NewResumeHandler(db, asynqClient, storageClient, maxSavedResumes)
	templateHandler := NewTemplateHandler(entitlements)
	checkoutHandler := NewCheckoutHandler(db, provider, recorder, entitlements, logger, cfg.Payment.WebhookSecret, cfg.Frontend.BaseURL)
	purchaseHandler := NewPurchaseHandler(recorder)
	wsHandler := NewWsHandler(redisClient, authService, logger, []string{cfg.Frontend.BaseURL})

	authRequired := middleware.AuthMiddleware(authService)
	authOptional := middleware.OptionalAuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authRequired, authHandler.Logout)
		}

		templateGroup := v1.Group("/templates")
		templateGroup.Use(authOptional)
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.GET("/owned", templateHandler.ListOwnedTemplates)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.GET("/:id/access", templateHandler.CheckTemplateAccess)
		}

		resumeGroup := v1.Group("/resumes")
		resumeGroup.Use(authRequired)
		{
			resumeGroup.POST("", resumeHandler.CreateResume)
			resumeGroup.GET("", resumeHandler.ListResumes)
			resumeGroup.GET("/:id", resumeHandler.GetResume)
			resumeGroup.PUT("/:id", resumeHandler.UpdateResume)
			resumeGroup.DELETE("/:id", resumeHandler.DeleteResume)
			resumeGroup.GET("/:id/download", resumeHandler.DownloadResume)
			resumeGroup.GET("/:id/download-link", resumeHandler.GetDownloadLink)
		}

		checkoutGroup := v1.Group("/checkout")
		checkoutGroup.Use(authRequired)
		{
			checkoutGroup.POST("/session", checkoutHandler.CreateSession)
			checkoutGroup.GET("/verify", checkoutHandler.VerifyOrder)
		}

		v1.POST("/payment/webhook", checkoutHandler.HandleWebhook)
		v1.GET("/purchases", authRequired, purchaseHandler.ListPurchases)
	}

	internalGroup := router.Group("/internal/v1")
	internalGroup.Use(middleware.InternalSecretMiddleware(cfg.API.InternalSecret))
	{
		internalGroup.POST("/grants", purchaseHandler.GrantTemplate)
	}
}
