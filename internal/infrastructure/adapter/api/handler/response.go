package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

type fieldLogger interface {
	LogFields() map[string]any
}

// respondError maps a domain error onto the HTTP status and numeric code of the API.
// Server-side failures never expose their cause to the client.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := domainerr.HTTPStatus(err)

	fields := map[string]any{
		"operation":  operation,
		"path":       c.Request.URL.Path,
		"request_id": middleware.GetRequestID(c),
		"error":      err.Error(),
	}
	var fl fieldLogger
	if errors.As(err, &fl) {
		for k, v := range fl.LogFields() {
			fields[k] = v
		}
	}

	message := err.Error()
	switch {
	case status == http.StatusBadGateway:
		logger.Warn("Upstream provider failed", fields)
		message = "Upstream provider unavailable"
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", fields)
		message = "Internal server error"
	default:
		logger.Debug("Request rejected", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError answers a malformed body or query
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request format: " + err.Error(),
	})
}

// pathID parses a positive numeric path parameter, answering 400 when it is not one
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}
