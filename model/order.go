package model

import (
	"time"

	"github.com/hanifmaulana/quotedesk/constant"
)

type InsertOrderTxItem struct {
	QuoteID   uint64
	UserID    uint64
	Status    constant.OrderStatus
	ExpiresAT time.Time
}

type OrderDetail struct {
	ID      uint64               `db:"id"`
	QuoteID uint64               `db:"quote_id"`
	UserID  uint64               `db:"user_id"`
	Status  constant.OrderStatus `db:"status"`
}

type OrderFromQuoteResponse struct {
	OrderID   uint64    `json:"order_id"`
	QuoteID   uint64    `json:"quote_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
