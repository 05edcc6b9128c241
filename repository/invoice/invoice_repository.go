package invoice

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type InvoiceRepository interface {
	InsertManualInvoiceTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, invoiceNo string) (uint64, error)
}

func NewInvoiceRepository(conn *sqlx.DB) InvoiceRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertManualInvoiceTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, invoiceNo string) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO manual_invoice (quote_id, invoice_no, created_at) VALUES (?, ?, NOW())", quoteID, invoiceNo)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
