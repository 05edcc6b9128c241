package stock

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hanifmaulana/quotedesk/constant"
	"github.com/hanifmaulana/quotedesk/model"
	"github.com/hanifmaulana/quotedesk/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type StockRepository interface {
	GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
	SnapshotAvailabilityTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) (map[uint64]int64, error)
	ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error
	GetReservationsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Reservation, error)
	CommitReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
	ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(ws.stock - ws.reserved),0) as total FROM warehouse_stock ws JOIN warehouse w ON ws.warehouse_id = w.id WHERE ws.product_id = ? AND w.status = ?"
	if err := tx.GetContext(ctx, &total, q, productID, constant.WarehouseStatusActive); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// SnapshotAvailabilityTx takes one consistent available-now figure per
// product, used by the quote availability recheck. Products without any
// stock row come back as 0.
func (r *SQL) SnapshotAvailabilityTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(productIDs))
	for _, id := range productIDs {
		out[id] = 0
	}
	if len(productIDs) == 0 {
		return out, nil
	}

	q, args, err := sqlx.In("SELECT ws.product_id, COALESCE(SUM(ws.stock - ws.reserved),0) as available FROM warehouse_stock ws JOIN warehouse w ON ws.warehouse_id = w.id WHERE ws.product_id IN (?) AND w.status = ? GROUP BY ws.product_id", productIDs, constant.WarehouseStatusActive)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var snap model.StockSnapshot
		if err := rows.StructScan(&snap); err != nil {
			return nil, err
		}
		if snap.Available < 0 {
			snap.Available = 0
		}
		out[snap.ProductID] = snap.Available
	}
	return out, rows.Err()
}

func (r *SQL) ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error {
	// Lock rows for this product to avoid races
	rows, err := tx.QueryxContext(ctx, "SELECT ws.id, ws.warehouse_id, ws.stock, ws.reserved FROM warehouse_stock ws JOIN warehouse w ON ws.warehouse_id = w.id WHERE ws.product_id = ? AND w.status = ? FOR UPDATE", req.ProductID, constant.WarehouseStatusActive)
	if err != nil {
		return err
	}
	defer rows.Close()

	type ws struct {
		ID          int64 `db:"id"`
		WarehouseID int64 `db:"warehouse_id"`
		Stock       int64 `db:"stock"`
		Reserved    int64 `db:"reserved"`
	}

	needed := req.Quantity
	for rows.Next() {
		var w ws
		if err := rows.StructScan(&w); err != nil {
			return err
		}
		avail := w.Stock - w.Reserved
		if avail <= 0 {
			continue
		}
		alloc := avail
		if alloc > needed {
			alloc = needed
		}
		if _, err := tx.ExecContext(ctx, "UPDATE warehouse_stock SET reserved = reserved + ? WHERE id = ?", alloc, w.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO stock_reservation (order_id, warehouse_id, product_id, quantity, expires_at) VALUES (?, ?, ?, ?, ?)", req.OrderID, w.WarehouseID, req.ProductID, alloc, req.ExpiresAt); err != nil {
			return err
		}
		needed -= alloc
		if needed <= 0 {
			break
		}
	}

	if needed > 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}

	return nil
}

func (r *SQL) GetReservationsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Reservation, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, warehouse_id, product_id, quantity FROM stock_reservation WHERE order_id = ? FOR UPDATE", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, rows.Err()
}

func (r *SQL) CommitReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	reservations, err := r.GetReservationsByOrderTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, reservation := range reservations {
		// decrease stock and reserved
		if _, err := tx.ExecContext(ctx, "UPDATE warehouse_stock SET stock = stock - ?, reserved = reserved - ? WHERE warehouse_id = ? AND product_id = ?", reservation.Quantity, reservation.Quantity, reservation.WarehouseID, reservation.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", reservation.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	reservations, err := r.GetReservationsByOrderTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		// decrease reserved only
		if _, err := tx.ExecContext(ctx, "UPDATE warehouse_stock SET reserved = reserved - ? WHERE warehouse_id = ? AND product_id = ?", rr.Quantity, rr.WarehouseID, rr.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", rr.ID); err != nil {
			return err
		}
	}
	return nil
}
