package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hanifmaulana/quotedesk/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	GetRefs(ctx context.Context, ids []uint64) (map[uint64]model.ProductRef, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.sku, p.price, s.name as supplier_name, COALESCE(SUM(ws.stock - ws.reserved),0) as available_stock
FROM product p
JOIN supplier s ON p.supplier_id = s.id
LEFT JOIN warehouse_stock ws ON ws.product_id = p.id
GROUP BY p.id, p.name, p.sku, p.price, s.name`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	getProductDetail = `SELECT p.id, p.name, p.sku, p.description, p.price, s.id as supplier_id, s.name as supplier_name, COALESCE(SUM(ws.stock - ws.reserved),0) as available_stock
FROM product p
JOIN supplier s ON p.supplier_id = s.id
LEFT JOIN warehouse_stock ws ON ws.product_id = p.id
WHERE p.id = ?
GROUP BY p.id, p.name, p.sku, p.description, p.price, s.id, s.name`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

// GetRefs resolves the denormalized name/sku pairs copied onto quote
// items at submission time. Missing ids are simply absent from the map.
func (s *SQL) GetRefs(ctx context.Context, ids []uint64) (map[uint64]model.ProductRef, error) {
	out := make(map[uint64]model.ProductRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	q, args, err := sqlx.In("SELECT id, name, sku FROM product WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref model.ProductRef
		if err := rows.StructScan(&ref); err != nil {
			return nil, err
		}
		out[ref.ID] = ref
	}
	return out, rows.Err()
}
