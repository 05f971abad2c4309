package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends the standard success envelope, merging any payload fields
// into the response body next to success/message.
func Success(c *gin.Context, statusCode int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(statusCode, body)
}

// OK sends a 200 success response.
func OK(c *gin.Context, message string, payload gin.H) {
	Success(c, http.StatusOK, message, payload)
}

// Error sends the standard failure envelope.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
