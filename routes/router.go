package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/videoforge/backend/config"
	"github.com/videoforge/backend/controllers"
	"github.com/videoforge/backend/middleware"
	"github.com/videoforge/backend/utils"
)

// SetupRouter builds the gin engine with middleware and all route groups.
func SetupRouter(gdpr *controllers.GDPRController, feedback *controllers.FeedbackController) *gin.Engine {
	cfg := config.Get()

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	accessLog, err := utils.NewRollingFileLogger(
		cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress,
	)
	if err != nil {
		accessLog = utils.Logger
	}
	router.Use(utils.Ginzap(accessLog, time.RFC3339, true))
	router.Use(utils.RecoveryWithZap(accessLog, true))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().Unix()})
	})

	gdprGroup := router.Group("/gdpr")
	{
		gdprGroup.GET("/privacy-policy", gdpr.PrivacyPolicy)

		protected := gdprGroup.Group("")
		protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
		{
			protected.GET("/export-data", gdpr.ExportData)
			protected.DELETE("/delete-data", gdpr.DeleteData)
			protected.GET("/data-summary", gdpr.DataSummary)
		}
	}

	router.POST("/feedback-minimal", middleware.RateLimitMiddleware(), feedback.SubmitMinimal)

	router.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40401, "resource not found")
	})

	return router
}
