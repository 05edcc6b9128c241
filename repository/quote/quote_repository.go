package quote

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
)

type SQL struct {
	conn *sqlx.DB
}

type QuoteRepository interface {
	InsertQuoteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (uint64, error)
	InsertQuoteItemsTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, items []model.QuoteItemEntity) error
	GetByID(ctx context.Context, id uint64) (*model.QuoteEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.QuoteEntity, error)
	GetItems(ctx context.Context, quoteID uint64) ([]model.QuoteItemEntity, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) ([]model.QuoteItemEntity, error)
	List(ctx context.Context, userID uint64, page, perPage int) ([]model.QuoteListItem, int64, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, status constant.QuoteStatus) error
	UpdateItemQtyTx(ctx context.Context, tx *sqlx.Tx, quoteID, productID uint64, qty int64) error
	UpdateItemPriceTx(ctx context.Context, tx *sqlx.Tx, quoteID, productID uint64, unitPrice float64) error
	UpdateChargesTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, deliveryCharge, extraFee, totalPrice float64) error
	UpdateItemAvailabilityTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, upd *model.ItemAvailabilityUpdate) error
	SetAvailabilityCheckedAtTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, at time.Time) error
	SetClientQtyEditLockedTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) error
	LinkOrderTx(ctx context.Context, tx *sqlx.Tx, quoteID, orderID uint64) error
	LinkManualInvoiceTx(ctx context.Context, tx *sqlx.Tx, quoteID, invoiceID uint64) error
}

func NewQuoteRepository(conn *sqlx.DB) QuoteRepository {
	return &SQL{conn: conn}
}

const (
	getQuoteQuery = `SELECT id, user_id, status, delivery_charge, extra_fee, total_price, availability_checked_at, client_qty_edit_locked, order_id, manual_invoice_id, created_at, updated_at FROM quote WHERE id = ?`

	getQuoteItemsQuery = `SELECT id, quote_id, product_id, product_name, product_sku, qty, unit_price, available_now, shortage, availability_status FROM quote_item WHERE quote_id = ? ORDER BY id`

	listQuotesBase = `SELECT q.id, q.user_id, q.status, q.total_price, q.created_at, COUNT(qi.id) as item_count
FROM quote q
LEFT JOIN quote_item qi ON qi.quote_id = q.id`
)

func (r *SQL) InsertQuoteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO quote (user_id, status, delivery_charge, extra_fee, created_at) VALUES (?, ?, 0, 0, NOW())", userID, constant.QuoteStatusProcessing)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertQuoteItemsTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, items []model.QuoteItemEntity) error {
	q := "INSERT INTO quote_item (quote_id, product_id, product_name, product_sku, qty) VALUES (?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, quoteID, it.ProductID, it.ProductName, it.ProductSKU, it.Qty); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.QuoteEntity, error) {
	var entity model.QuoteEntity
	if err := r.conn.QueryRowxContext(ctx, getQuoteQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.QuoteEntity, error) {
	var entity model.QuoteEntity
	if err := tx.QueryRowxContext(ctx, getQuoteQuery+" FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetItems(ctx context.Context, quoteID uint64) ([]model.QuoteItemEntity, error) {
	return scanItems(r.conn.QueryxContext(ctx, getQuoteItemsQuery, quoteID))
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) ([]model.QuoteItemEntity, error) {
	return scanItems(tx.QueryxContext(ctx, getQuoteItemsQuery+" FOR UPDATE", quoteID))
}

func scanItems(rows *sqlx.Rows, err error) ([]model.QuoteItemEntity, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.QuoteItemEntity, 0)
	for rows.Next() {
		var it model.QuoteItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) List(ctx context.Context, userID uint64, page, perPage int) ([]model.QuoteListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listQuotesBase
	countQuery := "SELECT COUNT(*) FROM quote"
	args := make([]any, 0, 3)
	countArgs := make([]any, 0, 1)
	if userID != 0 {
		query += " WHERE q.user_id = ?"
		countQuery += " WHERE user_id = ?"
		args = append(args, userID)
		countArgs = append(countArgs, userID)
	}
	query += " GROUP BY q.id, q.user_id, q.status, q.total_price, q.created_at ORDER BY q.id DESC LIMIT ? OFFSET ?"
	args = append(args, perPage, offset)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.QuoteListItem, 0)
	for rows.Next() {
		var it model.QuoteListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, status constant.QuoteStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET status = ?, updated_at = NOW() WHERE id = ?", status, quoteID)
	return err
}

func (r *SQL) UpdateItemQtyTx(ctx context.Context, tx *sqlx.Tx, quoteID, productID uint64, qty int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote_item SET qty = ? WHERE quote_id = ? AND product_id = ?", qty, quoteID, productID)
	return err
}

func (r *SQL) UpdateItemPriceTx(ctx context.Context, tx *sqlx.Tx, quoteID, productID uint64, unitPrice float64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote_item SET unit_price = ? WHERE quote_id = ? AND product_id = ?", unitPrice, quoteID, productID)
	return err
}

func (r *SQL) UpdateChargesTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, deliveryCharge, extraFee, totalPrice float64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET delivery_charge = ?, extra_fee = ?, total_price = ?, updated_at = NOW() WHERE id = ?", deliveryCharge, extraFee, totalPrice, quoteID)
	return err
}

func (r *SQL) UpdateItemAvailabilityTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, upd *model.ItemAvailabilityUpdate) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote_item SET available_now = ?, shortage = ?, availability_status = ? WHERE quote_id = ? AND product_id = ?",
		upd.AvailableNow, upd.Shortage, upd.AvailabilityStatus, quoteID, upd.ProductID)
	return err
}

func (r *SQL) SetAvailabilityCheckedAtTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64, at time.Time) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET availability_checked_at = ?, updated_at = NOW() WHERE id = ?", at, quoteID)
	return err
}

func (r *SQL) SetClientQtyEditLockedTx(ctx context.Context, tx *sqlx.Tx, quoteID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET client_qty_edit_locked = 1, updated_at = NOW() WHERE id = ?", quoteID)
	return err
}

func (r *SQL) LinkOrderTx(ctx context.Context, tx *sqlx.Tx, quoteID, orderID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET order_id = ?, updated_at = NOW() WHERE id = ? AND order_id IS NULL", orderID, quoteID)
	return err
}

func (r *SQL) LinkManualInvoiceTx(ctx context.Context, tx *sqlx.Tx, quoteID, invoiceID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE quote SET manual_invoice_id = ?, updated_at = NOW() WHERE id = ? AND manual_invoice_id IS NULL", invoiceID, quoteID)
	return err
}
