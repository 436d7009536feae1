package persistence

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateError maps GORM and driver errors onto application error codes.
// kind names the entity ("program") and op the attempted action ("create").
func translateError(err error, kind, op string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.CodeNotFound, kind+" not found", err)
	case isDuplicateKey(err):
		return apperrors.Wrap(apperrors.CodeConflict, kind+" already exists", err)
	case isUnavailable(err):
		return apperrors.Wrap(apperrors.CodeUnavailable, "database unavailable", err)
	}
	return fmt.Errorf("failed to %s %s: %w", op, kind, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	// database/sql does not export its closed-pool error
	return strings.Contains(err.Error(), "sql: database is closed")
}
