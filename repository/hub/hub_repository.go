package hub

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	"github.com/muhammadheryan/hub-fulfillment/model"
)

type HubRepository interface {
	Create(ctx context.Context, hub *model.Hub) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.Hub, error)
	List(ctx context.Context, filter *model.HubFilter) ([]model.Hub, error)
	Update(ctx context.Context, hub *model.Hub) error
	UpdateStatus(ctx context.Context, id uint64, status constant.HubStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewHubRepository(conn *sqlx.DB) HubRepository {
	return &SQL{conn: conn}
}

const (
	hubColumns = "id, name, district, pincode, type, latitude, longitude, route_position, manager_id, status, created_at, updated_at"

	insertHub = `INSERT INTO hub (name, district, pincode, type, latitude, longitude, route_position, manager_id, status, created_at)
VALUES (:name, :district, :pincode, :type, :latitude, :longitude, :route_position, :manager_id, :status, NOW())`

	updateHub = `UPDATE hub SET name = :name, latitude = :latitude, longitude = :longitude, route_position = :route_position,
manager_id = :manager_id, updated_at = NOW() WHERE id = :id`
)

func (s *SQL) Create(ctx context.Context, hub *model.Hub) (uint64, error) {
	res, err := s.conn.NamedExecContext(ctx, insertHub, hub)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Hub, error) {
	var h model.Hub
	if err := s.conn.GetContext(ctx, &h, "SELECT "+hubColumns+" FROM hub WHERE id = ?", id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (s *SQL) List(ctx context.Context, filter *model.HubFilter) ([]model.Hub, error) {
	query := "SELECT " + hubColumns + " FROM hub WHERE true"
	args := make([]any, 0, 4)

	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, filter.Type)
	}
	if filter.District != "" {
		query += " AND district = ?"
		args = append(args, filter.District)
	}
	if filter.Pincode != "" {
		query += " AND pincode = ?"
		args = append(args, filter.Pincode)
	}
	if filter.Status != 0 {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY route_position, id"

	hubs := make([]model.Hub, 0)
	if err := s.conn.SelectContext(ctx, &hubs, query, args...); err != nil {
		return nil, err
	}
	return hubs, nil
}

func (s *SQL) Update(ctx context.Context, hub *model.Hub) error {
	res, err := s.conn.NamedExecContext(ctx, updateHub, hub)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.HubStatus) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE hub SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
