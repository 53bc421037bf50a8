// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"kurvalgom/config"
	"kurvalgom/internal/delivery/api/middleware"
	"kurvalgom/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	PostHandler       *handler.PostHandler
	HistoryHandler    *handler.HistoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsHandler    http.Handler `name:"metrics" optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	postHandler       *handler.PostHandler
	historyHandler    *handler.HistoryHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsHandler    http.Handler
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		postHandler:       params.PostHandler,
		historyHandler:    params.HistoryHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsHandler:    params.MetricsHandler,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Discovery works anonymously; a token only adds history recording.
	restaurantsGroup := apiV1.Group("/restaurants", r.authMiddleware.OptionalAuthenticate)
	{
		restaurantsGroup.GET("/nearby", r.restaurantHandler.Nearby)
		restaurantsGroup.POST("/pick", r.restaurantHandler.Pick)
	}

	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListPosts, r.authMiddleware.OptionalAuthenticate)
		postsGroup.GET("/:id", r.postHandler.GetPost)
		postsGroup.POST("", r.postHandler.CreatePost, r.authMiddleware.Authenticate)
		postsGroup.PATCH("/:id", r.postHandler.UpdatePost, r.authMiddleware.Authenticate)
		postsGroup.DELETE("/:id", r.postHandler.DeletePost, r.authMiddleware.Authenticate)
	}

	historyGroup := apiV1.Group("/history", r.authMiddleware.Authenticate)
	{
		historyGroup.GET("", r.historyHandler.ListHistory)
		historyGroup.POST("", r.historyHandler.AddHistory)
	}
}
