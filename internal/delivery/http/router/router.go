// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	LibraryHandler    *handler.LibraryHandler
	CatalogHandler    *handler.CatalogHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	libraryHandler    *handler.LibraryHandler
	catalogHandler    *handler.CatalogHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		libraryHandler:    params.LibraryHandler,
		catalogHandler:    params.CatalogHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Library routes require a signed-in identity
	libraryGroup := e.Group("/library")
	libraryGroup.Use(r.sessionMiddleware.RequireSession)
	{
		libraryGroup.GET("/favorites", r.libraryHandler.Favorites)
		libraryGroup.POST("/favorites/toggle", r.libraryHandler.ToggleFavorite)
		libraryGroup.GET("/watchlist", r.libraryHandler.Watchlist)
		libraryGroup.POST("/watchlist/toggle", r.libraryHandler.ToggleWatchlist)

		libraryGroup.GET("/reviews", r.libraryHandler.Reviews)
		libraryGroup.POST("/reviews", r.libraryHandler.AddReview)
		libraryGroup.PUT("/reviews/:id", r.libraryHandler.UpdateReview)
		libraryGroup.DELETE("/reviews/:id", r.libraryHandler.DeleteReview)
		libraryGroup.GET("/reviews/movie/:id", r.libraryHandler.MovieReviews)
		libraryGroup.GET("/reviews/movie/:id/mine", r.libraryHandler.UserReview)
	}

	// Catalog routes are public reads
	moviesGroup := e.Group("/movies")
	{
		moviesGroup.GET("/trending", r.catalogHandler.Trending)
		moviesGroup.GET("/popular", r.catalogHandler.Popular)
		moviesGroup.GET("/top-rated", r.catalogHandler.TopRated)
		moviesGroup.GET("/search", r.catalogHandler.Search)
		moviesGroup.GET("/genres", r.catalogHandler.Genres)
		moviesGroup.GET("/:id", r.catalogHandler.Details)
		moviesGroup.GET("/:id/reviews", r.catalogHandler.Reviews)
	}
}
