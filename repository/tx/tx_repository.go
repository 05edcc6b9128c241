package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository owns transaction boundaries so application code can be
// tested against a mock without a live database.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type sqlTxRepository struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &sqlTxRepository{db: db}
}

// BeginTx opens a READ COMMITTED transaction. Stock reservations rely
// on row locks taken by the guarded UPDATEs, not on repeatable reads.
func (r *sqlTxRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *sqlTxRepository) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *sqlTxRepository) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
