package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/verick-air/service-booking/internal/application"
	"github.com/verick-air/service-booking/internal/platform/response"
)

// FlightHandler handles HTTP requests for flight search.
type FlightHandler struct {
	service *application.FlightService
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(service *application.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

// RegisterRoutes registers all flight routes on the given router group.
func (h *FlightHandler) RegisterRoutes(r *gin.RouterGroup) {
	flights := r.Group("/api/v1/flights")
	{
		flights.GET("/search", h.SearchFlights)
	}
}

// SearchFlights handles GET /api/v1/flights/search. Every parameter is
// optional; missing ones fall back to the search form defaults.
func (h *FlightHandler) SearchFlights(c *gin.Context) {
	passengers, _ := strconv.Atoi(c.Query("passengers"))

	req := application.SearchFlightsRequest{
		From:       c.Query("from"),
		To:         c.Query("to"),
		Departure:  c.Query("departure"),
		Passengers: passengers,
		Class:      c.Query("class"),
		TripType:   c.Query("tripType"),
		Filter:     c.Query("filter"),
		Sort:       c.Query("sort"),
	}

	result, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
