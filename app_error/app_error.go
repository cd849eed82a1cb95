package app_error

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func New(status int, format string, args ...any) error {
	return statusError{error: fmt.Errorf(format, args...), status: status}
}

func InvalidArgument(format string, args ...any) error {
	return New(http.StatusBadRequest, format, args...)
}

func NotFound(format string, args ...any) error {
	return New(http.StatusNotFound, format, args...)
}

func Conflict(format string, args ...any) error {
	return New(http.StatusConflict, format, args...)
}

// Internal wraps an unexpected failure so callers can still errors.Is the cause.
func Internal(err error) error {
	return statusError{error: err, status: http.StatusInternalServerError}
}

// Status returns the HTTP status carried by err, or 500 for errors that carry none.
func Status(err error) int {
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message writes the error body. The text goes under both "error" and "message"
// so older clients that read "message" keep working.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message, "message": message})
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	Message(c, status, err.Error())
}

// Respond writes err with its mapped status. Internal errors are logged before
// being returned to the client.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
		)
	}
	WithHTTPStatus(c, err, status)
}
