// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/config"
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SupplierHandler *handler.SupplierHandler
	ProductHandler  *handler.ProductHandler
	ImageHandler    *handler.ImageHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	supplierHandler *handler.SupplierHandler
	productHandler  *handler.ProductHandler
	imageHandler    *handler.ImageHandler
	authMiddleware  *middleware.AuthMiddleware
	publicBasePath  string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		supplierHandler: params.SupplierHandler,
		productHandler:  params.ProductHandler,
		imageHandler:    params.ImageHandler,
		authMiddleware:  params.AuthMiddleware,
		publicBasePath:  params.Config.Storage.PublicBasePath,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify-password", r.authHandler.VerifyPassword, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	supplierGroup := api.Group("/suppliers", r.authMiddleware.Authenticate)
	{
		supplierGroup.GET("", r.supplierHandler.List)
		supplierGroup.POST("", r.supplierHandler.Create)
		supplierGroup.GET("/:id", r.supplierHandler.Get)
		supplierGroup.PUT("/:id", r.supplierHandler.Update)
		supplierGroup.DELETE("/:id", r.supplierHandler.Delete)
	}

	productGroup := api.Group("/products", r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.POST("/upload", r.imageHandler.Upload)
		productGroup.DELETE("/images/:imageId", r.imageHandler.Delete)
		productGroup.PUT("/images/:imageId/primary", r.imageHandler.SetPrimary)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Stored images are public so their URLs can be embedded directly.
	e.GET(r.publicBasePath+"/*", r.imageHandler.Serve)
}
