package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles the sender and receiver views of transactions
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactions usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

// Create handles POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.transactions.CreateTransaction(c.Request.Context(), middleware.PrincipalID(c), usecase.CreateTransactionRequest{
		ReceiverHandle:  req.ReceiverHandle,
		FiatAmountIn:    req.FiatAmountIn,
		ExpectedFiatOut: req.ExpectedFiatOut,
		DeliverySpeed:   req.DeliverySpeed,
	})
	if err != nil {
		respondError(c, h.logger, "create_transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// ListSent handles GET /api/v1/transactions/sent
func (h *TransactionHandler) ListSent(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	txs, err := h.transactions.ListBySender(c.Request.Context(), middleware.PrincipalID(c), q.Limit, q.Offset)
	if err != nil {
		respondError(c, h.logger, "list_sent", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// ListReceived handles GET /api/v1/transactions/received
func (h *TransactionHandler) ListReceived(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	txs, err := h.transactions.ListByReceiver(c.Request.Context(), middleware.PrincipalID(c), q.Limit, q.Offset)
	if err != nil {
		respondError(c, h.logger, "list_received", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// Get handles GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactions.GetByID(c.Request.Context(), middleware.PrincipalID(c), id)
	if err != nil {
		respondError(c, h.logger, "get_transaction", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetByReference handles GET /api/v1/transactions/reference/:reference
func (h *TransactionHandler) GetByReference(c *gin.Context) {
	tx, err := h.transactions.GetByReference(c.Request.Context(), middleware.PrincipalID(c), c.Param("reference"))
	if err != nil {
		respondError(c, h.logger, "get_transaction_by_reference", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// InitiatePayment handles POST /api/v1/transactions/:id/payment
func (h *TransactionHandler) InitiatePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	session, err := h.transactions.InitiatePayment(c.Request.Context(), middleware.PrincipalID(c), id)
	if err != nil {
		respondError(c, h.logger, "initiate_payment", err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentSessionResponse{
		Transaction: dto.NewTransactionResponse(session.Transaction),
		CheckoutURL: session.CheckoutURL,
	})
}

// StartOfframp handles POST /api/v1/transactions/:id/offramp
func (h *TransactionHandler) StartOfframp(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactions.StartOfframp(c.Request.Context(), middleware.PrincipalID(c), id)
	if err != nil {
		respondError(c, h.logger, "start_offramp", err)
		return
	}
	c.JSON(http.StatusAccepted, dto.NewTransactionResponse(tx))
}
