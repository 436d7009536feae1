//go:build unit
// +build unit

package persistence

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected apperrors.Code
	}{
		{"record not found", gorm.ErrRecordNotFound, apperrors.CodeNotFound},
		{"wrapped not found", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), apperrors.CodeNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, apperrors.CodeConflict},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, apperrors.CodeConflict},
		{"sqlite unique violation", errors.New("UNIQUE constraint failed: posts.slug"), apperrors.CodeConflict},
		{"dial failure", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, apperrors.CodeUnavailable},
		{"bad conn", driver.ErrBadConn, apperrors.CodeUnavailable},
		{"conn done", sql.ErrConnDone, apperrors.CodeUnavailable},
		{"closed pool", errors.New("sql: database is closed"), apperrors.CodeUnavailable},
		{"other", errors.New("syntax error"), apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err, "post", "create")
			assert.Equal(t, tt.expected, apperrors.CodeOf(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestTranslateError_Nil(t *testing.T) {
	assert.NoError(t, translateError(nil, "post", "create"))
}

func TestTranslateError_Messages(t *testing.T) {
	assert.Equal(t, "post not found", apperrors.MessageOf(translateError(gorm.ErrRecordNotFound, "post", "get")))
	assert.Equal(t, "post already exists", apperrors.MessageOf(translateError(gorm.ErrDuplicatedKey, "post", "create")))
	assert.Contains(t, translateError(errors.New("boom"), "post", "update").Error(), "failed to update post")
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"choir":      "choir",
		"100%":       `100\%`,
		"youth_camp": `youth\_camp`,
		`a\b`:        `a\\b`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), in)
	}
}
