package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/redact"
)

// TxFn runs against an open transaction. Returning an error rolls the
// transaction back.
type TxFn func(ctx context.Context, tx *sqlx.Tx) error

// RunInTransaction begins a transaction on db, runs fn and commits.
// A failing or panicking fn rolls the transaction back; a panic is
// re-raised after the rollback.
func RunInTransaction(ctx context.Context, db *sqlx.DB, fn TxFn) (err error) {
	log := logger.FromContext(ctx).With("component", "tx")

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback after panic failed", "error", redact.Error(rbErr))
		}
		panic(p)
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed", "error", redact.Error(rbErr))
			return errors.Join(fmt.Errorf("error rolling back transaction: %w", rbErr), err)
		}
		log.Debug("transaction rolled back", "error", redact.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
