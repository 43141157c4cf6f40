package database

import (
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/database/pgerr"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeUser        EntityType = "user"
	EntityTypeTransaction EntityType = "transaction"
	EntityTypeReceiver    EntityType = "receiver"
	EntityTypeRate        EntityType = "exchange_rate"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if isDomainError(err) {
		return err
	}
	switch pgerr.Classify(err) {
	case pgerr.KindNone:
		return nil
	case pgerr.KindNotFound:
		return domainErr.ErrNotFound
	case pgerr.KindDuplicate:
		return domainErr.ErrDuplicate
	case pgerr.KindConflict:
		return fmt.Errorf("%w: %s operation conflicted", domainErr.ErrDatabaseConnection, operation)
	case pgerr.KindTimeout:
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)
	case pgerr.KindConnection:
		return domainErr.ErrDatabaseConnection
	default:
		return fmt.Errorf("%w: %s failed", domainErr.ErrInternalServer, operation)
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		case EntityTypeReceiver:
			return domainErr.ErrReceiverNotFound
		case EntityTypeRate:
			return domainErr.ErrRateNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// isDomainError reports whether a repository already translated err
func isDomainError(err error) bool {
	for _, target := range []error{
		domainErr.ErrNotFound,
		domainErr.ErrValidation,
		domainErr.ErrInvalidState,
		domainErr.ErrDuplicate,
		domainErr.ErrDatabaseConnection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
