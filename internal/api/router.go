package api

import (
	"time"

	"github.com/Kaleidos/Vendora-API/internal/api/handlers"
	"github.com/Kaleidos/Vendora-API/internal/api/middleware"
	"github.com/Kaleidos/Vendora-API/internal/config"
	"github.com/Kaleidos/Vendora-API/internal/events"
	"github.com/Kaleidos/Vendora-API/internal/stats"
	"github.com/Kaleidos/Vendora-API/internal/token"
	"github.com/Kaleidos/Vendora-API/internal/vendor"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 创建 Gin 引擎
	router := gin.Default()

	// CORS 中间件（管理端前端跨域访问）
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	// 操作计数中间件
	operationCounter := stats.NewOperationCounter(60 * time.Second)
	router.Use(middleware.OperationCounterMiddleware(operationCounter))

	// 健康检查端点
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Vendora-API",
		})
	})

	// 公共依赖
	eventService := events.NewService(db)
	tokenRepo := token.NewRepository(db)
	tokenService := token.NewService(tokenRepo)

	// API 路由组
	apiGroup := router.Group("/api")
	{
		setupVendorRoutes(apiGroup, db, cfg, eventService, tokenService)
		setupTokenRoutes(apiGroup, tokenService)

		// 统计信息
		statsHandler := handlers.NewStatsHandler(db, operationCounter, eventService)
		apiGroup.GET("/stats", statsHandler.GetStats)
	}

	return router
}

// setupVendorRoutes 配置供应商路由
func setupVendorRoutes(group *gin.RouterGroup, db *gorm.DB, cfg *config.Config, eventService *events.Service, tokenService *token.Service) {
	// 创建依赖
	repo := vendor.NewRepository(db)
	service := vendor.NewServiceWithEvents(repo, eventService)
	service.SetProfileImageEnabled(cfg.Platform.VendorProfileImage)

	handler := handlers.NewVendorHandler(service)

	// 读路由
	vendors := group.Group("/vendors")
	{
		vendors.GET("", handler.ListVendors)
		vendors.GET("/:id", handler.GetVendor)
		vendors.GET("/slug/:slug", handler.GetVendorBySlug)
	}

	// 写路由，按配置启用管理端 Token 验证
	mutating := group.Group("/vendors")
	if cfg.Server.AdminAuth {
		mutating.Use(middleware.AdminAuthMiddleware(tokenService))
	}
	{
		mutating.POST("", handler.CreateVendor)
		mutating.PUT("/:id/name", handler.RenameVendor)
		mutating.PUT("/:id/notification-email", handler.UpdateNotificationEmail)
		mutating.PUT("/:id/priority", handler.ReorderVendor)
		mutating.PUT("/:id/profile-image", handler.SetProfileImage)
		mutating.POST("/:id/activate", handler.ActivateVendor)
		mutating.POST("/:id/block", handler.BlockVendor)
		mutating.DELETE("/:id", handler.DeleteVendor)
	}
}

// setupTokenRoutes 配置管理端 Token 路由
func setupTokenRoutes(group *gin.RouterGroup, tokenService *token.Service) {
	handler := handlers.NewTokenHandler(tokenService)

	tokens := group.Group("/tokens")
	{
		tokens.POST("", handler.CreateToken)
		tokens.GET("", handler.ListTokens)
		tokens.POST("/:id/disable", handler.DisableToken)
		tokens.DELETE("/:id", handler.DeleteToken)
	}
}
