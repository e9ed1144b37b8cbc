package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

const setActorSQL = "SELECT set_config('app.user_id', $1, true)"

// TxManager runs units of work in a transaction carried by the context.
// Nested RunInTx calls join the outer transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise; a panic in fn
// rolls back and is re-raised. The caller in ctx, if any, is published as the
// transaction-local app.user_id so the activity trigger can attribute writes.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.RunInTx: begin: %w", err)
	}

	done := false
	defer func() {
		if done {
			return
		}
		rbErr := tx.Rollback(ctx)
		if r := recover(); r != nil {
			panic(r)
		}
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("postgres.RunInTx: rollback: %w", rbErr))
		}
	}()

	if err := setActor(ctx, tx); err != nil {
		return err
	}
	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	done = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.RunInTx: commit: %w", err)
	}
	return nil
}

func setActor(ctx context.Context, tx pgx.Tx) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	if _, err := tx.Exec(ctx, setActorSQL, userID.String()); err != nil {
		return fmt.Errorf("postgres.RunInTx: set actor: %w", err)
	}
	return nil
}
