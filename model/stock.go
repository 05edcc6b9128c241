package model

import "time"

type ReserveRequest struct {
	OrderID   uint64
	ProductID uint64
	Quantity  int64
	ExpiresAt time.Time
}

type Reservation struct {
	ID          int64  `db:"id"`
	WarehouseID int64  `db:"warehouse_id"`
	ProductID   uint64 `db:"product_id"`
	Quantity    int64  `db:"quantity"`
}

// StockSnapshot is the available-now figure for one product across all
// active warehouses, taken at a single point in time.
type StockSnapshot struct {
	ProductID uint64 `db:"product_id"`
	Available int64  `db:"available"`
}
