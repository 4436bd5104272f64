package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/verick-air/service-booking/internal/application"
	"github.com/verick-air/service-booking/internal/platform/response"
)

// SessionHandler handles the demo login session endpoints.
type SessionHandler struct {
	service *application.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *application.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// RegisterRoutes registers all session routes on the given router group.
func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup) {
	session := r.Group("/api/v1/session")
	{
		session.POST("", h.Login)
		session.GET("", h.Current)
		session.DELETE("", h.Logout)
	}
}

// Login handles POST /api/v1/session.
func (h *SessionHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Current handles GET /api/v1/session.
func (h *SessionHandler) Current(c *gin.Context) {
	result, err := h.service.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Logout handles DELETE /api/v1/session.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"logged_out": true})
}
