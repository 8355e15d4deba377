package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/craftpine/storefront/internal/server/http/handlers"
	"github.com/craftpine/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	stockHandler := handlers.NewStockHandler(facade, logger)

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	orders := authed.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.DELETE("/:id", orderHandler.Delete)

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired())
	admin.GET("/orders/all-users", orderHandler.ListAll)
	admin.PUT("/orders/:id/complete", orderHandler.Complete)
	admin.PUT("/orders/:id/cancel", orderHandler.Cancel)
	admin.GET("/stocks/:id", stockHandler.Get)
	admin.PUT("/stocks/:id", stockHandler.Update)

	return engine
}
