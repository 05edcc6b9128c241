package model

type ProductListItem struct {
	ID             uint64  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	SKU            string  `db:"sku" json:"sku"`
	SupplierName   string  `db:"supplier_name" json:"supplier_name"`
	AvailableStock int64   `db:"available_stock" json:"available_stock"`
	Price          float64 `db:"price" json:"price"`
}

type ProductDetail struct {
	ID             uint64  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	SKU            string  `db:"sku" json:"sku"`
	Description    string  `db:"description" json:"description,omitempty"`
	SupplierID     uint64  `db:"supplier_id" json:"supplier_id"`
	SupplierName   string  `db:"supplier_name" json:"supplier_name"`
	AvailableStock int64   `db:"available_stock" json:"available_stock"`
	Price          float64 `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

// ProductRef is the denormalized name/sku pair copied onto quote items
type ProductRef struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
	SKU  string `db:"sku"`
}
