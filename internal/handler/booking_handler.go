package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/verick-air/service-booking/internal/application"
	"github.com/verick-air/service-booking/internal/platform/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.SubmitBooking)
		bookings.GET("/current", h.CurrentBooking)
		bookings.GET("/:reference", h.GetBooking)
	}
}

// SubmitBooking handles POST /api/v1/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req application.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// CurrentBooking handles GET /api/v1/bookings/current, serving the
// confirmation view.
func (h *BookingHandler) CurrentBooking(c *gin.Context) {
	result, err := h.service.CurrentBooking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /api/v1/bookings/:reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	result, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
