package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ReceiverHandler manages the caller's receiver profile
type ReceiverHandler struct {
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewReceiverHandler creates a new receiver handler instance
func NewReceiverHandler(transactions usecase.TransactionUseCase, logger coreport.Logger) *ReceiverHandler {
	return &ReceiverHandler{transactions: transactions, logger: logger}
}

// Register handles POST /api/v1/receivers
func (h *ReceiverHandler) Register(c *gin.Context) {
	var req dto.RegisterReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receiver, err := h.transactions.RegisterReceiver(c.Request.Context(), middleware.PrincipalID(c), usecase.RegisterReceiverRequest{
		Handle:        req.Handle,
		FirstName:     req.FirstName,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		respondError(c, h.logger, "register_receiver", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReceiverResponse(receiver))
}

// AttachWallet handles PUT /api/v1/receivers/wallet
func (h *ReceiverHandler) AttachWallet(c *gin.Context) {
	var req dto.AttachWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receiver, released, err := h.transactions.AttachWalletAddress(c.Request.Context(), middleware.PrincipalID(c), req.WalletAddress)
	if err != nil {
		respondError(c, h.logger, "attach_wallet", err)
		return
	}
	c.JSON(http.StatusOK, dto.AttachWalletResponse{
		Receiver: dto.NewReceiverResponse(receiver),
		Released: released,
	})
}
