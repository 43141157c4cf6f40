package dto

import (
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// RegisterReceiverRequest creates or adopts the caller's receiver profile
type RegisterReceiverRequest struct {
	Handle        string `json:"handle" binding:"required"`
	FirstName     string `json:"firstName"`
	WalletAddress string `json:"walletAddress"`
}

// AttachWalletRequest sets the caller's payout address
type AttachWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// ReceiverResponse represents a receiver profile
type ReceiverResponse struct {
	ID            uint64    `json:"id"`
	Handle        string    `json:"handle"`
	FirstName     string    `json:"firstName,omitempty"`
	WalletAddress string    `json:"walletAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AttachWalletResponse reports how many escrowed transfers were released
type AttachWalletResponse struct {
	Receiver ReceiverResponse `json:"receiver"`
	Released int              `json:"released"`
}

// NewReceiverResponse maps a receiver
func NewReceiverResponse(r *entity.Receiver) ReceiverResponse {
	return ReceiverResponse{
		ID:            r.ID,
		Handle:        r.Handle,
		FirstName:     r.FirstName,
		WalletAddress: r.WalletAddress,
		CreatedAt:     r.CreatedAt,
	}
}
