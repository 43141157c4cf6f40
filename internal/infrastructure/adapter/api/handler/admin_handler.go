package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the recovery and operations surface
type AdminHandler struct {
	admin  usecase.AdminUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(admin usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// RetryBridge handles POST /admin/transactions/:id/retry-bridge
func (h *AdminHandler) RetryBridge(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.admin.RetryBridge(c.Request.Context(), middleware.AdminActor(c), id)
	if err != nil {
		respondError(c, h.logger, "retry_bridge", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// ForceStatus handles POST /admin/transactions/:id/force-status
func (h *AdminHandler) ForceStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.admin.ForceStatus(c.Request.Context(), middleware.AdminActor(c), id, req.Status, req.Reason)
	if err != nil {
		respondError(c, h.logger, "force_status", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Refund handles POST /admin/transactions/:id/refund
func (h *AdminHandler) Refund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.admin.Refund(c.Request.Context(), middleware.AdminActor(c), id)
	if err != nil {
		respondError(c, h.logger, "refund", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// UpdateRate handles PATCH /admin/rates/:pair
func (h *AdminHandler) UpdateRate(c *gin.Context) {
	var req dto.RateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.admin.UpdateRate(c.Request.Context(), middleware.AdminActor(c), c.Param("pair"), req.ToDomain())
	if err != nil {
		respondError(c, h.logger, "update_rate", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewExchangeRateResponse(rate))
}

// Broadcast handles POST /admin/notifications/broadcast
func (h *AdminHandler) Broadcast(c *gin.Context) {
	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.admin.Broadcast(c.Request.Context(), middleware.AdminActor(c), req.Title, req.Body); err != nil {
		respondError(c, h.logger, "broadcast", err)
		return
	}
	c.Status(http.StatusAccepted)
}

// DeleteUser handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), middleware.AdminActor(c), id); err != nil {
		respondError(c, h.logger, "delete_user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Liquidity handles GET /admin/liquidity
func (h *AdminHandler) Liquidity(c *gin.Context) {
	snapshot, err := h.admin.Liquidity(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "liquidity", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLiquidityResponse(snapshot))
}

// Analytics handles GET /admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.admin.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnalyticsResponse(analytics))
}

// AuditLogs handles GET /admin/audit-logs?page=&pageSize=
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	var q dto.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.admin.AuditLogs(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		respondError(c, h.logger, "audit_logs", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAuditPageResponse(page))
}
