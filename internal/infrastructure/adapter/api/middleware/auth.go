package middleware

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Admin headers
const (
	AdminSecretHeader = "X-Admin-Secret"
	AdminActorHeader  = "X-Admin-Actor"
)

const (
	principalKey  = "principal_id"
	adminActorKey = "admin_actor"
	defaultActor  = "admin"
)

// Principal resolves the caller's user id from the header set by the identity layer in front
// of the API. Requests without a valid id are rejected.
func Principal(header string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(header))
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			logger.Debug("Rejected request without principal", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing or invalid principal",
			})
			return
		}

		c.Set(principalKey, id)
		c.Next()
	}
}

// PrincipalID returns the user id stored by Principal
func PrincipalID(c *gin.Context) uint64 {
	return c.GetUint64(principalKey)
}

// AdminAuth guards the operations surface with a shared secret. An empty secret disables
// the surface entirely.
func AdminAuth(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(AdminSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			logger.Warn("Rejected admin request", map[string]any{
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
				"request_id": GetRequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid admin secret",
			})
			return
		}

		actor := strings.TrimSpace(c.GetHeader(AdminActorHeader))
		if actor == "" {
			actor = defaultActor
		}
		c.Set(adminActorKey, actor)
		c.Next()
	}
}

// AdminActor names the operator recorded in the audit log
func AdminActor(c *gin.Context) string {
	if actor := c.GetString(adminActorKey); actor != "" {
		return actor
	}
	return defaultActor
}
