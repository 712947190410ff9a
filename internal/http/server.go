// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollwise/internal/http/handlers"
	"tollwise/internal/http/middleware"
	"tollwise/internal/modules/trip"
	"tollwise/internal/rules"
)

type ServerDeps struct {
	Trips *trip.Service
	Table *rules.Table
	Log   *zap.Logger
	Env   string
}

func NewRouter(deps ServerDeps) http.Handler {
	if deps.Env != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(deps.Log))
	r.Use(gin.Recovery())

	tripHandler := handlers.NewTripHandler(deps.Trips)
	r.POST("/api/routes/preview", tripHandler.PreviewRoute)
	r.POST("/api/tolls/detect", tripHandler.DetectTolls)
	r.POST("/api/trips/calculate", tripHandler.Calculate)

	countryHandler := handlers.NewCountryHandler(deps.Table)
	r.GET("/api/countries", countryHandler.List)
	r.GET("/api/countries/:code", countryHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
