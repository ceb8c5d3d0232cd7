package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"salas/infras/postgres"
	"salas/shared/constant"
	"salas/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// WithTransaction runs fn inside a transaction on the write connection.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, db *postgres.Connection, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
