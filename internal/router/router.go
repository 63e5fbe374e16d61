// Package router defines how HTTP routes are registered for the directory.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fanfare-live/fanfare/internal/handler"
)

// Register wires every route of the booking directory onto the provided
// Echo instance. Static segments like /venues/create are matched before
// the :id parameter, so the form routes never shadow detail lookups.
func Register(e *echo.Echo, home *handler.HomeHandler, venues *handler.VenueHandler, artists *handler.ArtistHandler, shows *handler.ShowHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/", home.Index)

	v := e.Group("/venues")
	v.GET("", venues.List)
	v.POST("/search", venues.Search)
	v.GET("/create", venues.CreateForm)
	v.POST("/create", venues.Create)
	v.GET("/:id", venues.Get)
	v.DELETE("/:id", venues.Delete)
	v.GET("/:id/edit", venues.EditForm)
	v.POST("/:id/edit", venues.Edit)

	a := e.Group("/artists")
	a.GET("", artists.List)
	a.POST("/search", artists.Search)
	a.GET("/create", artists.CreateForm)
	a.POST("/create", artists.Create)
	a.GET("/:id", artists.Get)
	a.GET("/:id/edit", artists.EditForm)
	a.POST("/:id/edit", artists.Edit)

	s := e.Group("/shows")
	s.GET("", shows.List)
	s.GET("/create", shows.CreateForm)
	s.POST("/create", shows.Create)
}
