package router // package router defines how HTTP routes are registered for the application

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/heightconv/internal/handler"
)

// RegisterRoutes registers the landing page and the health probes on the
// provided Echo instance.  Probes bypass rate limiting and caching.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Hello)
	e.GET("/healthz", handler.Health)
	e.GET("/actuator/health", handler.ActuatorHealth)
}

// RegisterHeight registers the conversion form and the JSON API.
// limit is applied to every route in this group; cache only wraps the
// read-only conversion endpoint.  Events are published outside the cache
// so every successful conversion is reported, hit or miss.
func RegisterHeight(e *echo.Echo, h *handler.HeightHandler, limit, cache echo.MiddlewareFunc) {
	e.GET("/height", h.ShowForm, limit)
	e.POST("/height", h.SubmitForm, limit)

	v1 := e.Group("/v1", limit)
	v1.GET("/convert", h.Convert, h.PublishConverted, cache)
	v1.GET("/arith/:op", handler.Arithmetic)
}
