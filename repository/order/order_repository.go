package order

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
	txrepo "github.com/muhammadheryan/hub-fulfillment/repository/tx"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error
	InsertRouteTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from int, hubs []uint64) error
	AppendTimelineTx(ctx context.Context, tx *sqlx.Tx, entry *model.TimelineEntry) error
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error)
	UpdateOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) error
	GetOrder(ctx context.Context, orderID uint64) (*model.Order, error)
	ListOrderIDs(ctx context.Context, filter *model.OrderFilter) ([]uint64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, order_number, user_id, total_amount, status, delivery_type, payment_method, payment_status,
address_line, district, pincode, collection_hub_id, last_confirmed_hub_id, in_transit_to_hub_id, reserved_hub_id,
delivery_boy_id, delivery_otp, delivery_otp_generated_at, collection_otp, collection_otp_generated_at,
collected_at, delivered_at, version, created_at, updated_at`

	insertOrder = "INSERT INTO `order` (order_number, user_id, total_amount, status, delivery_type, payment_method, payment_status, " +
		"address_line, district, pincode, collection_hub_id, reserved_hub_id, version, created_at, updated_at) " +
		"VALUES (:order_number, :user_id, :total_amount, :status, :delivery_type, :payment_method, :payment_status, " +
		":address_line, :district, :pincode, :collection_hub_id, :reserved_hub_id, 0, :created_at, :updated_at)"

	insertItem     = "INSERT INTO order_item (order_id, product_id, name, price_at_order, quantity) VALUES (?, ?, ?, ?, ?)"
	insertRouteHub = "INSERT INTO order_route (order_id, position, hub_id) VALUES (?, ?, ?)"
	insertTimeline = "INSERT INTO order_timeline (order_id, status, location, hub_id, description, created_at) VALUES (?, ?, ?, ?, ?, ?)"

	selectOrder          = "SELECT " + orderColumns + " FROM `order` WHERE id = ?"
	selectOrderForUpdate = selectOrder + " FOR UPDATE"
	selectItems          = "SELECT id, order_id, product_id, name, price_at_order, quantity FROM order_item WHERE order_id = ? ORDER BY id"
	selectRoute          = "SELECT hub_id FROM order_route WHERE order_id = ? ORDER BY position"
	selectTimeline       = "SELECT id, order_id, status, location, hub_id, description, created_at FROM order_timeline WHERE order_id = ? ORDER BY id"

	updateOrder = "UPDATE `order` SET status = :status, payment_status = :payment_status, " +
		"last_confirmed_hub_id = :last_confirmed_hub_id, in_transit_to_hub_id = :in_transit_to_hub_id, reserved_hub_id = :reserved_hub_id, " +
		"delivery_boy_id = :delivery_boy_id, delivery_otp = :delivery_otp, delivery_otp_generated_at = :delivery_otp_generated_at, " +
		"collection_otp = :collection_otp, collection_otp_generated_at = :collection_otp_generated_at, " +
		"collected_at = :collected_at, delivered_at = :delivered_at, updated_at = :updated_at, version = version + 1 " +
		"WHERE id = :id AND version = :version"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertOrder, order)
	if err != nil {
		return 0, txrepo.Translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItem, orderID, it.ProductID, it.Name, it.PriceAtOrder, it.Quantity); err != nil {
			return txrepo.Translate(err)
		}
	}
	return nil
}

// InsertRouteTx stores hubs at positions from, from+1, ... so a route can be extended in place.
func (r *SQL) InsertRouteTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from int, hubs []uint64) error {
	for i, hubID := range hubs {
		if _, err := tx.ExecContext(ctx, insertRouteHub, orderID, from+i, hubID); err != nil {
			return txrepo.Translate(err)
		}
	}
	return nil
}

func (r *SQL) AppendTimelineTx(ctx context.Context, tx *sqlx.Tx, e *model.TimelineEntry) error {
	res, err := tx.ExecContext(ctx, insertTimeline, e.OrderID, e.Status, e.Location, e.HubID, e.Description, e.Timestamp)
	if err != nil {
		return txrepo.Translate(err)
	}
	if id, err := res.LastInsertId(); err == nil {
		e.ID = uint64(id)
	}
	return nil
}

// GetOrderTx locks the order row and loads items and route. Timeline is not loaded.
func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.Order, error) {
	var o model.Order
	if err := tx.QueryRowxContext(ctx, selectOrderForUpdate, orderID).StructScan(&o); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.SetCustomError(constant.ErrOrderNotFound)
		}
		return nil, txrepo.Translate(err)
	}
	if err := tx.SelectContext(ctx, &o.Items, selectItems, orderID); err != nil {
		return nil, err
	}
	if err := tx.SelectContext(ctx, &o.Route, selectRoute, orderID); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderTx persists the mutable fulfilment fields when order.Version is still current.
func (r *SQL) UpdateOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.Order) error {
	order.UpdatedAt = time.Now().UTC()
	res, err := tx.NamedExecContext(ctx, updateOrder, order)
	if err != nil {
		return txrepo.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrConcurrentModification)
	}
	order.Version++
	return nil
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.Order, error) {
	var o model.Order
	if err := r.conn.QueryRowxContext(ctx, selectOrder, orderID).StructScan(&o); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.SetCustomError(constant.ErrOrderNotFound)
		}
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &o.Items, selectItems, orderID); err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &o.Route, selectRoute, orderID); err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &o.Timeline, selectTimeline, orderID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SQL) ListOrderIDs(ctx context.Context, filter *model.OrderFilter) ([]uint64, error) {
	query, args := listOrderIDsQuery(filter)
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// listOrderIDsQuery pages by id: AfterID is exclusive and results are in ascending id order.
func listOrderIDsQuery(filter *model.OrderFilter) (string, []any) {
	query := "SELECT id FROM `order` WHERE true"
	args := make([]any, 0, 3)
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.AfterID > 0 {
		query += " AND id > ?"
		args = append(args, filter.AfterID)
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	return query, args
}
