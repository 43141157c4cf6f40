package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/gateway"
	"github.com/gin-gonic/gin"
)

// PartnerSignatureHeader carries the hex HMAC-SHA256 of an off-ramp callback body
const PartnerSignatureHeader = "X-Partner-Signature"

const maxWebhookBody = 1 << 20

// WebhookSecrets are the shared secrets providers sign their callbacks with
type WebhookSecrets struct {
	Gateway string
	Partner string
}

// WebhookHandler receives provider callbacks. Once the signature is valid the provider
// always gets a 200 so it stops redelivering; the outcome is in the body.
type WebhookHandler struct {
	payments     usecase.PaymentUseCase
	transactions usecase.TransactionUseCase
	secrets      WebhookSecrets
	logger       coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	payments usecase.PaymentUseCase,
	transactions usecase.TransactionUseCase,
	secrets WebhookSecrets,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		payments:     payments,
		transactions: transactions,
		secrets:      secrets,
		logger:       logger,
	}
}

// Payment handles POST /webhooks/payment
func (h *WebhookHandler) Payment(c *gin.Context) {
	body, ok := h.verifiedBody(c, "payment", h.secrets.Gateway, gateway.SignatureHeader)
	if !ok {
		return
	}

	var payload dto.PaymentWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Warn("Malformed payment webhook", map[string]any{
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusOK, dto.WebhookAck{Status: string(usecase.ResultError)})
		return
	}

	result := h.payments.HandlePaymentNotification(c.Request.Context(), usecase.PaymentNotification{
		GatewayTransactionID: payload.GatewayTransactionID,
		IsSuccess:            payload.IsSuccess,
		Amount:               payload.Amount,
		ReferenceCode:        payload.ReferenceCode,
		Status:               payload.Status,
	})
	c.JSON(http.StatusOK, dto.WebhookAck{Status: string(result)})
}

// Offramp handles POST /webhooks/offramp
func (h *WebhookHandler) Offramp(c *gin.Context) {
	body, ok := h.verifiedBody(c, "offramp", h.secrets.Partner, PartnerSignatureHeader)
	if !ok {
		return
	}

	var payload dto.OfframpWebhook
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.Warn("Malformed offramp webhook", map[string]any{
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		})
		c.JSON(http.StatusOK, dto.WebhookAck{Status: string(usecase.ResultError)})
		return
	}

	result := h.transactions.HandleOfframpNotification(c.Request.Context(), usecase.OfframpNotification{
		ReferenceCode: payload.ReferenceCode,
		IsSuccess:     payload.IsSuccess,
		Reason:        payload.Reason,
	})
	c.JSON(http.StatusOK, dto.WebhookAck{Status: string(result)})
}

// verifiedBody reads the raw body and checks its signature, answering 401 on mismatch
func (h *WebhookHandler) verifiedBody(c *gin.Context, kind, secret, header string) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.AbortWithStatusJSON(status, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Unreadable webhook body",
		})
		return nil, false
	}

	if !gateway.VerifySignature(secret, body, c.GetHeader(header)) {
		h.logger.Warn("Rejected webhook with invalid signature", map[string]any{
			"kind":       kind,
			"client_ip":  c.ClientIP(),
			"request_id": middleware.GetRequestID(c),
		})
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
			Message: "Invalid signature",
		})
		return nil, false
	}
	return body, true
}
