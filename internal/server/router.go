// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"net/http"

	"shopchat/internal/cache"
	"shopchat/internal/config"
	"shopchat/internal/handler"
	"shopchat/internal/logger"
	"shopchat/internal/middleware"
	"shopchat/internal/model"
	"shopchat/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Deps holds everything the router needs
type Deps struct {
	Config   *config.Config
	Build    BuildInfo
	Log      zerolog.Logger
	Auth     *service.AuthService
	Tokens   *service.TokenService
	Products *service.ProductService
	Chat     *service.ChatService
	History  *service.HistoryService
	// Counter backs rate limiting; nil disables it
	Counter cache.Counter
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(d.Log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = d.Config.Server.AllowedOrigins
	corsConfig.AllowMethods = d.Config.Server.AllowedMethods
	corsConfig.AllowHeaders = d.Config.Server.AllowedHeaders
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	if d.Config.RateLimit.Enabled && d.Counter != nil {
		router.Use(middleware.RateLimiter(d.Counter, d.Config.RateLimit.Requests, d.Config.RateLimit.Window, d.Log))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    logger.ServiceName,
			"version":    d.Build.Version,
			"build_time": d.Build.BuildTime,
			"git_commit": d.Build.GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    d.Build.Version,
			"build_time": d.Build.BuildTime,
			"git_commit": d.Build.GitCommit,
		})
	})

	authHandler := handler.NewAuthHandler(d.Auth, d.Log)
	productHandler := handler.NewProductHandler(d.Products, d.Log)
	chatHandler := handler.NewChatHandler(d.Chat, d.Log)
	historyHandler := handler.NewHistoryHandler(d.History, d.Log)

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	router.GET("/products", productHandler.List)
	router.GET("/products/:id", productHandler.Get)

	router.POST("/chat", middleware.OptionalAuth(d.Tokens), chatHandler.Chat)

	history := router.Group("/chat/history")
	{
		history.POST("", historyHandler.Save)
		history.GET("", historyHandler.List)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.Error("Endpoint not found."))
	})

	return router
}
