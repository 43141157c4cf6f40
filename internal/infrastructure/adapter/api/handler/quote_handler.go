package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// QuoteHandler serves price quotes
type QuoteHandler struct {
	quotes usecase.QuoteUseCase
	logger coreport.Logger
}

// NewQuoteHandler creates a new quote handler instance
func NewQuoteHandler(quotes usecase.QuoteUseCase, logger coreport.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, logger: logger}
}

// GetQuote handles GET /api/v1/quotes?amount=&currency=&speed=
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.quotes.GetQuote(c.Request.Context(), req.Amount, req.Currency, req.Speed)
	if err != nil {
		respondError(c, h.logger, "get_quote", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}
