package transfer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
)

type TransferRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.StockTransfer) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.StockTransfer, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockTransfer, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.TransferStatus) (bool, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	List(ctx context.Context, destinationLocationID *uint64) ([]model.StockTransfer, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

const transferColumns = "id, product_id, source_batch_id, destination_location_id, quantity, linked_request_id, reservation_token, batch_number, status, created_at, updated_at"

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.StockTransfer) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO stock_transfer (product_id, source_batch_id, destination_location_id, quantity, linked_request_id, reservation_token, batch_number, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ProductID, t.SourceBatchID, t.DestinationLocationID, t.Quantity, t.LinkedRequestID, t.ReservationToken, t.BatchNumber, t.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.StockTransfer, error) {
	var t model.StockTransfer
	if err := r.conn.GetContext(ctx, &t, "SELECT "+transferColumns+" FROM stock_transfer WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockTransfer, error) {
	var t model.StockTransfer
	if err := tx.GetContext(ctx, &t, "SELECT "+transferColumns+" FROM stock_transfer WHERE id = ? FOR UPDATE", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.TransferStatus) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE stock_transfer SET status = ? WHERE id = ? AND status = ?", to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM stock_transfer WHERE id = ?", id)
	return err
}

func (r *SQL) List(ctx context.Context, destinationLocationID *uint64) ([]model.StockTransfer, error) {
	query := "SELECT " + transferColumns + " FROM stock_transfer"
	args := make([]interface{}, 0, 1)
	if destinationLocationID != nil {
		query += " WHERE destination_location_id = ?"
		args = append(args, *destinationLocationID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]model.StockTransfer, 0)
	for rows.Next() {
		var t model.StockTransfer
		if err := rows.StructScan(&t); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
