package database

import (
	"context"
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, domainErr.ErrDuplicate},
		{"raw duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_receivers_handle"`), domainErr.ErrDuplicate},
		{"deadlock", errors.New("ERROR: deadlock detected"), domainErr.ErrDatabaseConnection},
		{"refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"context", context.DeadlineExceeded, domainErr.ErrDatabaseConnection},
		{"other", errors.New("syntax error at or near"), domainErr.ErrInternalServer},
		{"already translated", domainErr.ErrTransactionNotFound, domainErr.ErrTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.MapError(tt.err, "test")
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeUser), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeTransaction), domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeReceiver), domainErr.ErrReceiverNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeRate), domainErr.ErrRateNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityType("x")), domainErr.ErrNotFound)
	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeUser))
}
