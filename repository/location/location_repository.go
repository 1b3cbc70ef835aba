package location

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-tracker/model"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Location, error) {
	var l model.Location
	if err := r.conn.GetContext(ctx, &l, "SELECT id, name, type FROM location WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) List(ctx context.Context) ([]model.Location, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id, name, type FROM location ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]model.Location, 0)
	for rows.Next() {
		var l model.Location
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}
