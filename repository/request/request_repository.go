package request

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
)

type RequestRepository interface {
	Insert(ctx context.Context, input *model.SubmitRequestInput) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.StockRequest, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockRequest, error)
	// UpdateStatusTx moves a request from one status to another. Zero rows
	// affected means the request was not in the expected status.
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.RequestStatus, notes string) (bool, error)
	// MarkCompletedTx moves an approved request to completed, leaving its
	// resolution notes untouched.
	MarkCompletedTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
	List(ctx context.Context, sellerID *uint64, status *constant.RequestStatus) ([]model.StockRequest, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const requestColumns = "id, seller_id, product_id, quantity, status, resolution_notes, created_at, updated_at"

func (r *SQL) Insert(ctx context.Context, input *model.SubmitRequestInput) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO stock_request (seller_id, product_id, quantity, status, resolution_notes) VALUES (?, ?, ?, ?, '')",
		input.SellerID, input.ProductID, input.Quantity, constant.RequestStatusPending)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.StockRequest, error) {
	var req model.StockRequest
	if err := r.conn.GetContext(ctx, &req, "SELECT "+requestColumns+" FROM stock_request WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockRequest, error) {
	var req model.StockRequest
	if err := tx.GetContext(ctx, &req, "SELECT "+requestColumns+" FROM stock_request WHERE id = ? FOR UPDATE", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.RequestStatus, notes string) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE stock_request SET status = ?, resolution_notes = ? WHERE id = ? AND status = ?",
		to, notes, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) MarkCompletedTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE stock_request SET status = ? WHERE id = ? AND status = ?",
		constant.RequestStatusCompleted, id, constant.RequestStatusApproved)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) List(ctx context.Context, sellerID *uint64, status *constant.RequestStatus) ([]model.StockRequest, error) {
	query := "SELECT " + requestColumns + " FROM stock_request"
	args := make([]interface{}, 0, 2)
	conds := ""
	if sellerID != nil {
		conds += " AND seller_id = ?"
		args = append(args, *sellerID)
	}
	if status != nil {
		conds += " AND status = ?"
		args = append(args, *status)
	}
	if conds != "" {
		query += " WHERE" + conds[4:]
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]model.StockRequest, 0)
	for rows.Next() {
		var req model.StockRequest
		if err := rows.StructScan(&req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
