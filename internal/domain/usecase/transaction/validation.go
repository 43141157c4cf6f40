package transaction

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
)

const (
	minHandleLength    = 3
	maxHandleLength    = 32
	maxFirstNameLength = 64
)

// RequestValidator provides validation for transaction and receiver requests
type RequestValidator struct {
	validAddress func(string) bool
}

// NewRequestValidator creates a validator. validAddress checks wallet addresses for the
// treasury chain.
func NewRequestValidator(validAddress func(string) bool) *RequestValidator {
	return &RequestValidator{validAddress: validAddress}
}

// ValidateCreate validates a transaction creation request and returns the parsed tier
func (v *RequestValidator) ValidateCreate(senderID uint64, req usecase.CreateTransactionRequest) (entity.DeliverySpeed, error) {
	if senderID == 0 {
		return "", errs.ErrUnauthorized
	}

	if _, err := v.ValidateHandle(req.ReceiverHandle); err != nil {
		return "", err
	}

	if !req.FiatAmountIn.IsPositive() {
		return "", fmt.Errorf("%w: fiat amount in must be positive", errs.ErrInvalidAmount)
	}

	if !req.ExpectedFiatOut.IsPositive() {
		return "", fmt.Errorf("%w: expected fiat out must be positive", errs.ErrInvalidAmount)
	}

	speed, ok := entity.ParseDeliverySpeed(req.DeliverySpeed)
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidSpeed, req.DeliverySpeed)
	}

	return speed, nil
}

// ValidateHandle normalises a receiver handle and checks its format
func (v *RequestValidator) ValidateHandle(raw string) (string, error) {
	handle := entity.NormalizeHandle(raw)
	if handle == "" {
		return "", fmt.Errorf("%w: receiver handle is required", errs.ErrValidation)
	}

	if len(handle) < minHandleLength || len(handle) > maxHandleLength {
		return "", fmt.Errorf("%w: handle must be %d to %d characters", errs.ErrValidation, minHandleLength, maxHandleLength)
	}

	for _, r := range handle {
		if !isHandleRune(r) {
			return "", fmt.Errorf("%w: handle contains invalid character %q", errs.ErrValidation, r)
		}
	}

	return handle, nil
}

// ValidateRegistration validates a receiver registration request
func (v *RequestValidator) ValidateRegistration(userID uint64, req usecase.RegisterReceiverRequest) (string, error) {
	if userID == 0 {
		return "", errs.ErrUnauthorized
	}

	handle, err := v.ValidateHandle(req.Handle)
	if err != nil {
		return "", err
	}

	if len([]rune(strings.TrimSpace(req.FirstName))) > maxFirstNameLength {
		return "", fmt.Errorf("%w: first name is too long", errs.ErrValidation)
	}

	if req.WalletAddress != "" {
		if err := v.ValidateWalletAddress(req.WalletAddress); err != nil {
			return "", err
		}
	}

	return handle, nil
}

// ValidateWalletAddress checks that address is usable on the treasury chain
func (v *RequestValidator) ValidateWalletAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("%w: address is required", errs.ErrInvalidWalletAddress)
	}

	if v.validAddress != nil && !v.validAddress(address) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidWalletAddress, address)
	}

	return nil
}

func isHandleRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.'
}
