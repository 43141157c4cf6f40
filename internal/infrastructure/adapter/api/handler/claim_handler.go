package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ClaimHandler serves claim links sent to receivers without an account
type ClaimHandler struct {
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewClaimHandler creates a new claim handler instance
func NewClaimHandler(transactions usecase.TransactionUseCase, logger coreport.Logger) *ClaimHandler {
	return &ClaimHandler{transactions: transactions, logger: logger}
}

// Preview handles the public GET /api/v1/claims/:reference
func (h *ClaimHandler) Preview(c *gin.Context) {
	preview, err := h.transactions.ClaimPreview(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, h.logger, "claim_preview", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewClaimPreviewResponse(preview))
}

// Claim handles POST /api/v1/claims/:reference
func (h *ClaimHandler) Claim(c *gin.Context) {
	tx, err := h.transactions.Claim(c.Request.Context(), c.Param("reference"), middleware.PrincipalID(c))
	if err != nil {
		respondError(c, h.logger, "claim", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}
