// README: Trip handlers (route preview, toll detection, cost calculation).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tollwise/internal/modules/trip"
	"tollwise/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(trips *trip.Service) *TripHandler {
	return &TripHandler{trips: trips}
}

type previewRouteReq struct {
	StartAddress      string   `json:"startAddress"`
	EndAddress        string   `json:"endAddress"`
	WaypointAddresses []string `json:"waypointAddresses"`
}

// PreviewRoute handles POST /api/routes/preview.
func (h *TripHandler) PreviewRoute(c *gin.Context) {
	var req previewRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.StartAddress = strings.TrimSpace(req.StartAddress)
	req.EndAddress = strings.TrimSpace(req.EndAddress)
	if req.StartAddress == "" || req.EndAddress == "" {
		writeError(c, http.StatusBadRequest, "missing start or end address")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	data := trip.NewTripData()
	data = trip.Apply(data,
		trip.SetStartAddress{Value: req.StartAddress},
		trip.SetEndAddress{Value: req.EndAddress},
		trip.SetWaypoints{Value: req.WaypointAddresses})

	rd, err := h.trips.ResolveRoute(ctx, data)
	if err != nil {
		writeRouteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rd)
}

// DetectTolls handles POST /api/tolls/detect. The body is the trip state
// with its resolved route data attached.
func (h *TripHandler) DetectTolls(c *gin.Context) {
	var data trip.TripData
	if err := c.ShouldBindJSON(&data); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if data.RouteData == nil {
		writeError(c, http.StatusBadRequest, "missing route data")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	tolls, fingerprint, err := h.trips.DetectSpecialTolls(ctx, data)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if tolls == nil {
		tolls = []types.SelectedSpecialToll{}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"tolls":       tolls,
		"fingerprint": fingerprint,
	})
}

// Calculate handles POST /api/trips/calculate.
func (h *TripHandler) Calculate(c *gin.Context) {
	var data trip.TripData
	if err := c.ShouldBindJSON(&data); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !validVehicleType(data.VehicleType) {
		writeError(c, http.StatusBadRequest, "invalid vehicle type")
		return
	}
	if !validTripType(data.TripType) {
		writeError(c, http.StatusBadRequest, "invalid trip type")
		return
	}
	if data.TripDurationDays < 1 {
		data.TripDurationDays = 1
	}

	writeJSON(c, http.StatusOK, h.trips.Calculate(data))
}

func validVehicleType(v types.VehicleType) bool {
	switch v {
	case types.VehicleCar, types.VehicleVan, types.VehicleTruck:
		return true
	}
	return false
}

func validTripType(v types.TripType) bool {
	switch v {
	case types.TripOneWay, types.TripReturn:
		return true
	}
	return false
}
