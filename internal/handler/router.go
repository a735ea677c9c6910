package handler

import (
	"net/http"
	"slices"

	"voiceorder/internal/config"
	"voiceorder/internal/logger"
	"voiceorder/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// BuildInfo is reported by the health and version endpoints
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRouter registers every HTTP route on a fresh gin engine
func NewRouter(cfg config.ServerConfig, assistant *service.Assistant, info BuildInfo) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	origins := config.SplitList(cfg.AllowedOrigins)
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	if methods := config.SplitList(cfg.AllowedMethods); len(methods) > 0 {
		corsConfig.AllowMethods = methods
	}
	if headers := config.SplitList(cfg.AllowedHeaders); len(headers) > 0 {
		corsConfig.AllowHeaders = headers
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "voice-order-assistant",
			"version":    info.Version,
			"build_time": info.BuildTime,
			"git_commit": info.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    info.Version,
			"build_time": info.BuildTime,
			"git_commit": info.GitCommit,
		})
	})

	voiceOrderHandler := NewVoiceOrderHandler(assistant)
	feedbackHandler := NewFeedbackHandler(assistant)

	// Unversioned paths are what the web client posts to
	api := router.Group("/api")
	{
		api.POST("/voice-order", voiceOrderHandler.Handle)
		api.POST("/feedback", feedbackHandler.Submit)
	}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/voice-order", voiceOrderHandler.Handle)
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	return router
}
