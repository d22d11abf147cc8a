package product

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, hubID uint64, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id, hubID uint64) (*model.ProductDetail, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

// Availability is summed across hubs when hubID is 0.
const (
	listProductsBase = `SELECT p.id, p.name, p.price, COALESCE(SUM(hi.total_quantity - hi.reserved_quantity),0) as available_stock
FROM product p
LEFT JOIN hub_inventory hi ON hi.product_id = p.id AND (? = 0 OR hi.hub_id = ?)
GROUP BY p.id, p.name, p.price`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	getProductDetail = `SELECT p.id, p.name, p.description, p.price, COALESCE(SUM(hi.total_quantity - hi.reserved_quantity),0) as available_stock
FROM product p
LEFT JOIN hub_inventory hi ON hi.product_id = p.id AND (? = 0 OR hi.hub_id = ?)
WHERE p.id = ?
GROUP BY p.id, p.name, p.description, p.price`
)

func (s *SQL) List(ctx context.Context, hubID uint64, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, hubID, hubID, perPage, offset)
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

func (s *SQL) GetByID(ctx context.Context, id, hubID uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, hubID, hubID, id).StructScan(&detail); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) GetByIDs(ctx context.Context, ids []uint64) ([]model.Product, error) {
	products := make([]model.Product, 0, len(ids))
	if len(ids) == 0 {
		return products, nil
	}
	query, args, err := sqlx.In("SELECT id, name, description, price FROM product WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &products, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return products, nil
}
