package restock

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

type RestockRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.RestockRequest) (uint64, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.RestockRequest, error)
	TransitionTx(ctx context.Context, tx *sqlx.Tx, req *model.RestockRequest, from constant.RestockStatus) error
	CancelPendingByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (int64, error)
	GetByID(ctx context.Context, id uint64) (*model.RestockRequest, error)
	List(ctx context.Context, filter *model.RestockFilter) ([]model.RestockRequest, error)
	ProgressByOrder(ctx context.Context, orderID uint64) (*model.RestockProgress, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRestockRepository(conn *sqlx.DB) RestockRepository {
	return &SQL{conn: conn}
}

const (
	restockColumns = `id, requesting_hub_id, product_id, requested_quantity, requested_by, order_id, status, priority, reason,
approved_by, approved_at, fulfilled_at, rejected_by, rejected_reason, created_at, updated_at`

	insertRestock = `INSERT INTO restock_request
(requesting_hub_id, product_id, requested_quantity, requested_by, order_id, status, priority, reason, created_at)
VALUES (:requesting_hub_id, :product_id, :requested_quantity, :requested_by, :order_id, :status, :priority, :reason, :created_at)`

	selectRestock = "SELECT " + restockColumns + " FROM restock_request WHERE id = ?"

	transitionRestock = `UPDATE restock_request
SET status = ?, approved_by = ?, approved_at = ?, fulfilled_at = ?, rejected_by = ?, rejected_reason = ?, updated_at = ?
WHERE id = ? AND status = ?`

	cancelPendingByOrder = `UPDATE restock_request SET status = ?, updated_at = ? WHERE order_id = ? AND status = ?`

	progressByOrder = `SELECT COUNT(*) AS total, COALESCE(SUM(status = ?), 0) AS fulfilled FROM restock_request WHERE order_id = ?`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.RestockRequest) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertRestock, req)
	if err != nil {
		return 0, txrepo.Translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.RestockRequest, error) {
	var req model.RestockRequest
	if err := tx.GetContext(ctx, &req, selectRestock+" FOR UPDATE", id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.SetCustomError(constant.ErrRestockNotFound)
		}
		return nil, txrepo.Translate(err)
	}
	return &req, nil
}

// TransitionTx writes req's status fields only while the stored status still equals from.
func (r *SQL) TransitionTx(ctx context.Context, tx *sqlx.Tx, req *model.RestockRequest, from constant.RestockStatus) error {
	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, transitionRestock,
		req.Status, req.ApprovedBy, req.ApprovedAt, req.FulfilledAt, req.RejectedBy, req.RejectedReason, now,
		req.ID, from)
	if err != nil {
		return txrepo.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrNotPending)
	}
	req.UpdatedAt = &now
	return nil
}

func (r *SQL) CancelPendingByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, cancelPendingByOrder, constant.RestockStatusCanceled, time.Now().UTC(), orderID, constant.RestockStatusPending)
	if err != nil {
		return 0, txrepo.Translate(err)
	}
	return res.RowsAffected()
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.RestockRequest, error) {
	var req model.RestockRequest
	if err := r.conn.GetContext(ctx, &req, selectRestock, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *SQL) List(ctx context.Context, filter *model.RestockFilter) ([]model.RestockRequest, error) {
	query := "SELECT " + restockColumns + " FROM restock_request WHERE true"
	args := make([]any, 0, 4)
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.HubID != 0 {
		query += " AND requesting_hub_id = ?"
		args = append(args, filter.HubID)
	}
	if filter.OrderID != 0 {
		query += " AND order_id = ?"
		args = append(args, filter.OrderID)
	}
	query += " ORDER BY FIELD(priority, 'URGENT', 'HIGH', 'MEDIUM', 'LOW'), id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	items := make([]model.RestockRequest, 0)
	if err := r.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ProgressByOrder(ctx context.Context, orderID uint64) (*model.RestockProgress, error) {
	var p model.RestockProgress
	if err := r.conn.GetContext(ctx, &p, progressByOrder, constant.RestockStatusFulfilled, orderID); err != nil {
		return nil, err
	}
	return &p, nil
}
