package inventory

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

type InventoryRepository interface {
	GetTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error)
	EnsureTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, rec *model.InventoryRecord) error
	LogMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.InventoryMovement) error
	Get(ctx context.Context, hubID, productID uint64) (*model.InventoryRecord, error)
	SumReservedByHub(ctx context.Context, hubID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

const (
	recordColumns = "id, hub_id, product_id, total_quantity, reserved_quantity, last_restocked, version, updated_at"

	selectRecord          = "SELECT " + recordColumns + " FROM hub_inventory WHERE hub_id = ? AND product_id = ?"
	selectRecordForUpdate = selectRecord + " FOR UPDATE"

	insertZeroRecord = `INSERT IGNORE INTO hub_inventory (hub_id, product_id, total_quantity, reserved_quantity, version, updated_at)
VALUES (?, ?, 0, 0, 0, ?)`

	updateRecord = `UPDATE hub_inventory
SET total_quantity = ?, reserved_quantity = ?, last_restocked = ?, version = version + 1, updated_at = ?
WHERE id = ? AND version = ?`

	insertMovement = `INSERT INTO inventory_movement
(hub_id, product_id, movement_type, quantity, total_before, total_after, reserved_before, reserved_after, reference_type, reference_id, created_by, notes, created_at)
VALUES (:hub_id, :product_id, :movement_type, :quantity, :total_before, :total_after, :reserved_before, :reserved_after, :reference_type, :reference_id, :created_by, :notes, :created_at)`
)

// GetTx locks the row. It returns nil, nil when the pair has never been referenced.
func (r *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	if err := tx.GetContext(ctx, &rec, selectRecordForUpdate, hubID, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, txrepo.Translate(err)
	}
	return &rec, nil
}

// EnsureTx creates a zero-stock row on first reference and returns it locked.
func (r *SQL) EnsureTx(ctx context.Context, tx *sqlx.Tx, hubID, productID uint64) (*model.InventoryRecord, error) {
	rec, err := r.GetTx(ctx, tx, hubID, productID)
	if err != nil || rec != nil {
		return rec, err
	}
	if _, err := tx.ExecContext(ctx, insertZeroRecord, hubID, productID, time.Now().UTC()); err != nil {
		return nil, txrepo.Translate(err)
	}
	rec, err = r.GetTx(ctx, tx, hubID, productID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.SetCustomError(constant.ErrConcurrentModification)
	}
	return rec, nil
}

// UpdateTx writes quantities guarded by the version read earlier and bumps rec.Version.
func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, rec *model.InventoryRecord) error {
	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, updateRecord, rec.TotalQuantity, rec.ReservedQuantity, rec.LastRestocked, now, rec.ID, rec.Version)
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
	rec.Version++
	rec.UpdatedAt = now
	return nil
}

func (r *SQL) LogMovementTx(ctx context.Context, tx *sqlx.Tx, m *model.InventoryMovement) error {
	_, err := tx.NamedExecContext(ctx, insertMovement, m)
	return txrepo.Translate(err)
}

func (r *SQL) Get(ctx context.Context, hubID, productID uint64) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	if err := r.conn.GetContext(ctx, &rec, selectRecord, hubID, productID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQL) SumReservedByHub(ctx context.Context, hubID uint64) (int64, error) {
	var total sql.NullInt64
	if err := r.conn.GetContext(ctx, &total, "SELECT COALESCE(SUM(reserved_quantity),0) FROM hub_inventory WHERE hub_id = ?", hubID); err != nil {
		return 0, err
	}
	return total.Int64, nil
}
