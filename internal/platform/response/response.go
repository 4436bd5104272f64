package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/verick-air/service-booking/internal/domain"
)

// Body is the envelope every handler response travels in.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the machine-readable error code, the human message and,
// for validation failures, the per-field messages.
type ErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Error:   &ErrorBody{Code: string(domain.CodeValidation), Message: message},
	})
}

// Error maps a domain error to its HTTP status. Unknown errors become 500
// with a generic message so internals never leak to clients.
func Error(c *gin.Context, err error) {
	code := domain.CodeOf(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		c.JSON(status, Body{
			Success: false,
			Error:   &ErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"},
		})
		return
	}
	c.JSON(status, Body{
		Success: false,
		Error: &ErrorBody{
			Code:    string(code),
			Message: err.Error(),
			Details: domain.DetailsOf(err),
		},
	})
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidation, domain.CodeUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
