package model

import (
	"time"

	"github.com/hanifmaulana/quotedesk/constant"
)

// QuoteEntity represents the quote table entity
type QuoteEntity struct {
	ID                    uint64               `db:"id" json:"id"`
	UserID                uint64               `db:"user_id" json:"user_id"`
	Status                constant.QuoteStatus `db:"status" json:"status"`
	DeliveryCharge        float64              `db:"delivery_charge" json:"delivery_charge"`
	ExtraFee              float64              `db:"extra_fee" json:"extra_fee"`
	TotalPrice            *float64             `db:"total_price" json:"total_price,omitempty"`
	AvailabilityCheckedAt *time.Time           `db:"availability_checked_at" json:"availability_checked_at,omitempty"`
	ClientQtyEditLocked   bool                 `db:"client_qty_edit_locked" json:"client_qty_edit_locked"`
	OrderID               *uint64              `db:"order_id" json:"order_id,omitempty"`
	ManualInvoiceID       *uint64              `db:"manual_invoice_id" json:"manual_invoice_id,omitempty"`
	CreatedAt             time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt             *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

// Locked reports whether the quote is frozen by an order or manual
// invoice linkage. A locked quote accepts no further mutation.
func (q *QuoteEntity) Locked() bool {
	return q.OrderID != nil || q.ManualInvoiceID != nil
}

// QuoteItemEntity represents the quote_item table entity. ProductID is
// nullable because a product may be deleted after the quote was filed.
type QuoteItemEntity struct {
	ID                 uint64   `db:"id" json:"id"`
	QuoteID            uint64   `db:"quote_id" json:"quote_id"`
	ProductID          *uint64  `db:"product_id" json:"product_id,omitempty"`
	ProductName        string   `db:"product_name" json:"product_name"`
	ProductSKU         string   `db:"product_sku" json:"product_sku"`
	Qty                int64    `db:"qty" json:"qty"`
	UnitPrice          *float64 `db:"unit_price" json:"unit_price,omitempty"`
	AvailableNow       *int64   `db:"available_now" json:"available_now,omitempty"`
	Shortage           *int64   `db:"shortage" json:"shortage,omitempty"`
	AvailabilityStatus *string  `db:"availability_status" json:"availability_status,omitempty"`
}

// QuoteItemRequest is a single requested line on quote creation
type QuoteItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,gt=0"`
}

// CreateQuoteRequest for client quote submission
type CreateQuoteRequest struct {
	UserID uint64
	Items  []QuoteItemRequest `json:"items" validate:"required,dive,required"`
}

type CreateQuoteResponse struct {
	QuoteID uint64               `json:"quote_id"`
	Status  constant.QuoteStatus `json:"status"`
}

// ItemQtyRequest carries one resolved quantity for the quantities update
type ItemQtyRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"gte=0"`
}

type UpdateQuantitiesRequest struct {
	Items []ItemQtyRequest `json:"items" validate:"required,dive,required"`
}

// ItemPriceRequest carries one unit price for the pricing update
type ItemPriceRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type UpdatePricingRequest struct {
	RequestedItems []ItemPriceRequest `json:"requested_items" validate:"required,dive,required"`
	DeliveryCharge float64            `json:"delivery_charge" validate:"gte=0"`
	ExtraFee       float64            `json:"extra_fee" validate:"gte=0"`
}

type UpdateStatusRequest struct {
	Status constant.QuoteStatus `json:"status" validate:"required"`
}

type AttachInvoiceRequest struct {
	InvoiceNo string `json:"invoice_no" validate:"required"`
}

type AttachInvoiceResponse struct {
	InvoiceID uint64 `json:"invoice_id"`
	QuoteID   uint64 `json:"quote_id"`
}

// QuoteItemView is a requested item enriched with resolved availability
// and pricing fields for display.
type QuoteItemView struct {
	ProductID          *uint64                     `json:"product_id,omitempty"`
	ProductName        string                      `json:"product_name"`
	ProductSKU         string                      `json:"product_sku"`
	Qty                int64                       `json:"qty"`
	UnitPrice          *float64                    `json:"unit_price,omitempty"`
	AvailableNow       *int64                      `json:"available_now,omitempty"`
	Shortage           *int64                      `json:"shortage,omitempty"`
	AvailabilityStatus constant.AvailabilityStatus `json:"availability_status,omitempty"`
	FallbackQty        int64                       `json:"fallback_qty"`
	CanEdit            bool                        `json:"can_edit"`
	LineTotal          *float64                    `json:"line_total,omitempty"`
}

// QuoteView is the full quote detail served to both the account and
// admin surfaces. Derived fields come from the quoteflow package so the
// two surfaces can never drift apart.
type QuoteView struct {
	ID                    uint64                      `json:"id"`
	UserID                uint64                      `json:"user_id"`
	Status                constant.QuoteStatus        `json:"status"`
	Items                 []QuoteItemView             `json:"requested_items"`
	DeliveryCharge        float64                     `json:"delivery_charge"`
	ExtraFee              float64                     `json:"extra_fee"`
	TotalPrice            *float64                    `json:"total_price,omitempty"`
	PricingShown          bool                        `json:"pricing_shown"`
	AvailabilitySummary   constant.AvailabilityStatus `json:"availability_summary,omitempty"`
	AvailabilityCheckedAt *time.Time                  `json:"availability_checked_at,omitempty"`
	ClientQtyEditLocked   bool                        `json:"client_qty_edit_locked"`
	Locked                bool                        `json:"locked"`
	OrderID               *uint64                     `json:"order_id,omitempty"`
	ManualInvoiceID       *uint64                     `json:"manual_invoice_id,omitempty"`
	AllowedActions        []constant.QuoteAction      `json:"allowed_actions"`
	AllowedStatuses       []constant.QuoteStatus      `json:"allowed_statuses"`
}

type QuoteListItem struct {
	ID                  uint64                      `db:"id" json:"id"`
	UserID              uint64                      `db:"user_id" json:"user_id"`
	Status              constant.QuoteStatus        `db:"status" json:"status"`
	ItemCount           int64                       `db:"item_count" json:"item_count"`
	TotalPrice          *float64                    `db:"total_price" json:"total_price,omitempty"`
	AvailabilitySummary constant.AvailabilityStatus `db:"-" json:"availability_summary,omitempty"`
	CreatedAt           time.Time                   `db:"created_at" json:"created_at"`
}

type QuoteListResponse struct {
	Items      []QuoteListItem `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}

// ItemAvailabilityUpdate is written back per item by the availability recheck
type ItemAvailabilityUpdate struct {
	ProductID          uint64
	AvailableNow       int64
	Shortage           int64
	AvailabilityStatus constant.AvailabilityStatus
}
