// Package pgerr classifies PostgreSQL driver errors so repositories and the retry
// loop agree on what is a conflict, what is transient and what is a bug.
package pgerr

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the coarse class of a database error
type Kind string

const (
	KindNone       Kind = ""
	KindNotFound   Kind = "not_found"
	KindDuplicate  Kind = "duplicate"
	KindConstraint Kind = "constraint"
	KindConflict   Kind = "conflict" // deadlock, serialization or lock timeout
	KindConnection Kind = "connection"
	KindTimeout    Kind = "timeout"
	KindOther      Kind = "other"
)

// SQLSTATE codes that drive classification
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeNotNullViolation     = "23502"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
	codeTooManyConnections   = "53300"
)

// Classify maps err to a Kind. Server errors are read from their SQLSTATE; anything
// else falls back to the message, which covers wrapped or translated driver errors.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return KindDuplicate
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyCode(pgErr.Code)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindConnection
	}
	if pgconn.SafeToRetry(err) {
		return KindConnection
	}

	return classifyMessage(strings.ToLower(err.Error()))
}

func classifyCode(code string) Kind {
	switch code {
	case codeUniqueViolation:
		return KindDuplicate
	case codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation:
		return KindConstraint
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return KindConflict
	case codeQueryCanceled:
		return KindTimeout
	case codeAdminShutdown, codeCannotConnectNow, codeTooManyConnections:
		return KindConnection
	}
	if strings.HasPrefix(code, "08") {
		return KindConnection
	}
	return KindOther
}

func classifyMessage(msg string) Kind {
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return KindDuplicate
	case strings.Contains(msg, "violates"), strings.Contains(msg, "foreign key"):
		return KindConstraint
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "serializ"), strings.Contains(msg, "lock timeout"):
		return KindConflict
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return KindTimeout
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "no connection"),
		strings.Contains(msg, "too many connections"),
		strings.Contains(msg, "server closed"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "the database system is starting up"),
		strings.HasSuffix(msg, "eof"):
		return KindConnection
	}
	return KindOther
}

// Retryable reports whether repeating the same statement may succeed
func Retryable(err error) bool {
	switch Classify(err) {
	case KindConflict, KindConnection:
		return true
	case KindTimeout:
		// A cancelled caller context must not be retried
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return false
}

// IsDuplicate reports a unique constraint violation
func IsDuplicate(err error) bool {
	return Classify(err) == KindDuplicate
}
