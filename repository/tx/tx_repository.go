package tx

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/utils/errors"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return Translate(tx.Commit())
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	err := tx.Rollback()
	if stderrors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// MySQL server error numbers the fulfilment flow reacts to.
const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
	mysqlCheckViolated   = 3819
)

// Translate maps lock conflicts to ErrConcurrentModification so callers can retry, and CHECK
// constraint failures to ErrDataIntegrity. Other errors pass through untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if !stderrors.As(err, &me) {
		return err
	}
	switch me.Number {
	case mysqlLockWaitTimeout, mysqlDeadlock:
		return errors.SetCustomError(constant.ErrConcurrentModification)
	case mysqlCheckViolated:
		return errors.SetCustomError(constant.ErrDataIntegrity)
	}
	return err
}
