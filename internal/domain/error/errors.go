package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation            = 4000
	CodeUnauthorized          = 4010
	CodeInvalidState          = 4090
	CodeNotFound              = 4040
	CodeTransactionNotFound   = 4041
	CodeRateNotFound          = 4042
	CodeUserNotFound          = 4043
	CodeReceiverNotFound      = 4044
	CodeInsufficientResources = 4220
	CodeRateLimited           = 4290

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeUpstreamUnavailable = 5030
)

// Base error types
var (
	// ErrValidation is returned when request parameters are malformed or out of range
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount is missing, malformed or not positive
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

	// ErrInvalidCurrency is returned when the quote currency is missing or unsupported
	ErrInvalidCurrency = fmt.Errorf("%w: invalid currency", ErrValidation)

	// ErrInvalidSpeed is returned when the delivery speed tier is missing or unsupported
	ErrInvalidSpeed = fmt.Errorf("%w: invalid delivery speed", ErrValidation)

	// ErrInvalidWalletAddress is returned when a wallet address is not a valid EVM address
	ErrInvalidWalletAddress = fmt.Errorf("%w: invalid wallet address", ErrValidation)

	// ErrBelowMinimum is returned in production mode when the amount is below the enforced minimum
	ErrBelowMinimum = fmt.Errorf("%w: amount below minimum", ErrValidation)

	// ErrStaleQuote is returned when the client's expected payout no longer matches current pricing
	ErrStaleQuote = fmt.Errorf("%w: quote no longer valid", ErrValidation)

	// ErrMissingGatewayID is returned when a refund is requested without a gateway payment id
	ErrMissingGatewayID = fmt.Errorf("%w: no gateway payment id attached", ErrValidation)

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	// ErrRateNotFound is returned when an exchange rate pair doesn't exist
	ErrRateNotFound = fmt.Errorf("exchange rate %w", ErrNotFound)

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrReceiverNotFound is returned when the requested receiver profile doesn't exist
	ErrReceiverNotFound = fmt.Errorf("receiver %w", ErrNotFound)

	// ErrInvalidState is returned when an action is not legal for the current status
	ErrInvalidState = errors.New("invalid transaction state")

	// ErrAlreadyClaimed is returned when a claim link is used a second time
	ErrAlreadyClaimed = fmt.Errorf("%w: transaction already claimed", ErrInvalidState)

	// ErrActiveTransactions is returned when a user with in-flight transactions is deleted
	ErrActiveTransactions = fmt.Errorf("%w: user has active transactions", ErrInvalidState)

	// ErrInsufficientResources is returned when the treasury cannot cover a transfer
	ErrInsufficientResources = errors.New("insufficient resources")

	// ErrUpstreamUnavailable is returned when an external provider cannot be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUnauthorized is returned for missing or invalid credentials
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicate is returned when a unique key is violated
	ErrDuplicate = errors.New("resource already exists")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrRateNotFound):
		return CodeRateNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrReceiverNotFound):
		return CodeReceiverNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrInsufficientResources):
		return CodeInsufficientResources
	case errors.Is(err, ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error onto the HTTP status the API layer responds with
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientResources):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// TransactionError represents an error related to a transaction operation
type TransactionError struct {
	TransactionID uint64
	ReferenceCode string
	Status        string
	Operation     string
	Err           error
}

// Error implements the error interface for TransactionError
func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s failed for transaction %d (%s, status %s): %v",
		e.Operation, e.TransactionID, e.ReferenceCode, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransactionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_error",
		"transaction_id": e.TransactionID,
		"reference_code": e.ReferenceCode,
		"status":         e.Status,
		"operation":      e.Operation,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewTransactionError creates a detailed transaction error
func NewTransactionError(id uint64, reference, status, operation string, err error) error {
	return &TransactionError{
		TransactionID: id,
		ReferenceCode: reference,
		Status:        status,
		Operation:     operation,
		Err:           err,
	}
}

// InvalidTransitionError is returned when a status change is not a legal edge
type InvalidTransitionError struct {
	From string
	To   string
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transaction state: cannot move from %s to %s", e.From, e.To)
}

// Is checks if the target error is an ErrInvalidState
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidState
}

// NewInvalidTransitionError creates a new transition error
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// InsufficientFundsError provides detailed information about a treasury shortfall
type InsufficientFundsError struct {
	Asset     string
	Available string
	Required  string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s %s available, %s required", e.Available, e.Asset, e.Required)
}

// Is checks if the target error is an ErrInsufficientResources
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientResources
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"asset":      e.Asset,
		"available":  e.Available,
		"required":   e.Required,
		"error_code": CodeInsufficientResources,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(asset, available, required string) error {
	return &InsufficientFundsError{
		Asset:     asset,
		Available: available,
		Required:  required,
	}
}

// UpstreamError wraps a failure reported by an external provider
type UpstreamError struct {
	Provider  string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamUnavailable
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamUnavailable
}

// NewUpstreamError creates a new provider failure error
func NewUpstreamError(provider, operation string, err error) error {
	return &UpstreamError{Provider: provider, Operation: operation, Err: err}
}

// BridgeError attributes a failed bridge attempt to the phase that failed
type BridgeError struct {
	TransactionID uint64
	Phase         string
	Err           error
}

// Error implements the error interface
func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge of transaction %d failed during %s: %v", e.TransactionID, e.Phase, e.Err)
}

// Unwrap returns the underlying error
func (e *BridgeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BridgeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "bridge_error",
		"transaction_id": e.TransactionID,
		"phase":          e.Phase,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewBridgeError creates a phase-attributed bridge failure
func NewBridgeError(transactionID uint64, phase string, err error) error {
	return &BridgeError{TransactionID: transactionID, Phase: phase, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidStateError checks if the error reports an illegal action for the current status
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientResourcesError checks if the error is a treasury shortfall
func IsInsufficientResourcesError(err error) bool {
	return errors.Is(err, ErrInsufficientResources)
}
