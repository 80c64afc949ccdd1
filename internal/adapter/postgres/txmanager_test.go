package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liammahoney/site-api/internal/adapter/postgres"
	"github.com/liammahoney/site-api/internal/adapter/postgres/testhelper"
)

const insertProjectSQL = `INSERT INTO projects (id, title, link, description) VALUES ($1, $2, $3, $4)`

func insertProject(ctx context.Context, pool *pgxpool.Pool, id uuid.UUID, title string) error {
	_, err := postgres.QuerierFromCtx(ctx, pool).Exec(ctx, insertProjectSQL, id, title, "https://example.com", title)
	return err
}

func projectExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertProject(ctx, pool, id, "commit")
	})

	require.NoError(t, err)
	assert.True(t, projectExists(t, pool, id))
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	id := uuid.New()
	boom := errors.New("validation failed after insert")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insertProject(ctx, pool, id, "rollback"))
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, boom.Error(), err.Error(), "a clean rollback adds nothing to fn's error")
	assert.False(t, projectExists(t, pool, id))
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	id := uuid.New()

	assert.PanicsWithValue(t, "boom", func() {
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			require.NoError(t, insertProject(ctx, pool, id, "panic"))
			panic("boom")
		})
	})
	assert.False(t, projectExists(t, pool, id))
}

func TestRunInTx_WritesVisibleInsideTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertProject(ctx, pool, id, "visible"); err != nil {
			return err
		}
		assert.False(t, projectExists(t, pool, id), "uncommitted row leaked outside the tx")

		var n int
		if err := postgres.QuerierFromCtx(ctx, pool).
			QueryRow(ctx, `SELECT count(*) FROM projects WHERE id = $1`, id).Scan(&n); err != nil {
			return err
		}
		assert.Equal(t, 1, n)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, projectExists(t, pool, id))
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	outer, inner := uuid.New(), uuid.New()
	boom := errors.New("outer failed")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insertProject(ctx, pool, outer, "outer"))
		require.NoError(t, tm.RunInTx(ctx, func(ctx context.Context) error {
			return insertProject(ctx, pool, inner, "inner")
		}))
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, projectExists(t, pool, outer))
	assert.False(t, projectExists(t, pool, inner), "inner write must roll back with the outer tx")
}

func TestRunInTx_ReadOnlyRejectsWrites(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertProject(ctx, pool, id, "read-only")
	})

	require.Error(t, err)
	assert.False(t, projectExists(t, pool, id))
}
