package repository

import (
	"fmt"

	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/database/pgerr"
)

// ErrorClassifier turns driver errors into the domain errors repositories return
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return pgerr.IsDuplicate(err)
}

// wrapError keeps the operation and cause in the message. Duplicates, conflicts and
// connectivity failures are surfaced as their domain sentinels so callers can branch.
func (c *ErrorClassifier) wrapError(operation string, err error) error {
	switch pgerr.Classify(err) {
	case pgerr.KindDuplicate:
		return fmt.Errorf("%w: %s", errs.ErrDuplicate, operation)
	case pgerr.KindConnection, pgerr.KindConflict, pgerr.KindTimeout:
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}
