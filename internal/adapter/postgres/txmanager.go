package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs project writes in a transaction stored on the context.
// A RunInTx inside another joins the outer transaction; only the outermost
// call commits or rolls back.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager. Without opts transactions use the server
// defaults (read committed, read write).
func NewTxManager(pool *pgxpool.Pool, opts ...pgx.TxOptions) *TxManager {
	m := &TxManager{pool: pool}
	if len(opts) > 0 {
		m.opts = opts[0]
	}
	return m
}

// RunInTx calls fn with a context carrying the transaction. fn's error, or a
// panic, rolls back; a nil return commits.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("postgres.RunInTx: begin: %w", err)
	}

	// Rolls back when fn panics, then re-panics.
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(v)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("postgres.RunInTx: rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.RunInTx: commit: %w", err)
	}
	return nil
}
