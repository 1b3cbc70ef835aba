package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
	cerr "github.com/muhammadheryan/inventory-tracker/utils/errors"
)

// LedgerRepository is the only place batch quantities are mutated. Workflow
// repositories never touch the batch table.
type LedgerRepository interface {
	GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error)
	GetBatchTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.Batch, error)
	GetBatchDetail(ctx context.Context, batchID uint64) (*model.BatchDetail, error)
	GetBatchDetailTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.BatchDetail, error)
	ReserveTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64, token string) error
	GetReservationTx(ctx context.Context, tx *sqlx.Tx, token string) (*model.Reservation, error)
	CommitReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	ReleaseReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	ReceiveTx(ctx context.Context, tx *sqlx.Tx, req *model.ReceiveRequest) (uint64, bool, error)
	DeductTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error
	CreditTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error
	Snapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error)
	HasStock(ctx context.Context, productID uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLedgerRepository(conn *sqlx.DB) LedgerRepository {
	return &SQL{conn: conn}
}

const (
	getBatchQuery = "SELECT id, product_id, location_id, batch_number, quantity, reserved, expiry, created_at, updated_at FROM batch WHERE id = ?"

	getBatchDetailQuery = `SELECT b.id, b.product_id, b.location_id, b.batch_number, b.quantity, b.reserved, b.expiry, b.created_at, b.updated_at,
p.name AS product_name, p.unit_price_cents
FROM batch b JOIN product p ON b.product_id = p.id
WHERE b.id = ?`

	snapshotBase = `SELECT b.product_id, p.name AS product_name, p.sku, b.location_id, l.name AS location_name,
b.id AS batch_id, b.batch_number, b.quantity - b.reserved AS available, b.reserved, b.expiry
FROM batch b
JOIN product p ON b.product_id = p.id
JOIN location l ON b.location_id = l.id`
)

func (r *SQL) GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error) {
	var b model.Batch
	if err := r.conn.GetContext(ctx, &b, getBatchQuery, batchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetBatchTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.Batch, error) {
	var b model.Batch
	if err := tx.GetContext(ctx, &b, getBatchQuery+" FOR UPDATE", batchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetBatchDetail(ctx context.Context, batchID uint64) (*model.BatchDetail, error) {
	var d model.BatchDetail
	if err := r.conn.GetContext(ctx, &d, getBatchDetailQuery, batchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *SQL) GetBatchDetailTx(ctx context.Context, tx *sqlx.Tx, batchID uint64) (*model.BatchDetail, error) {
	var d model.BatchDetail
	if err := tx.GetContext(ctx, &d, getBatchDetailQuery+" FOR UPDATE", batchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// ReserveTx places a hold on a batch. The conditional update is the
// linearization point: two reservations can never over-commit the same batch.
// A zero-row update is reported as ErrConcurrentModification and classified
// by the caller after a re-read.
func (r *SQL) ReserveTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64, token string) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE batch SET reserved = reserved + ? WHERE id = ? AND quantity - reserved >= ?",
		qty, batchID, qty)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO stock_reservation (token, batch_id, quantity) VALUES (?, ?, ?)",
		token, batchID, qty)
	return err
}

func (r *SQL) GetReservationTx(ctx context.Context, tx *sqlx.Tx, token string) (*model.Reservation, error) {
	var rr model.Reservation
	err := tx.GetContext(ctx, &rr,
		"SELECT token, batch_id, quantity, created_at FROM stock_reservation WHERE token = ? FOR UPDATE", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rr, nil
}

// CommitReservationTx converts a hold into a durable debit.
func (r *SQL) CommitReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	result, err := tx.ExecContext(ctx,
		"UPDATE batch SET quantity = quantity - ?, reserved = reserved - ? WHERE id = ? AND quantity >= ? AND reserved >= ?",
		res.Quantity, res.Quantity, res.BatchID, res.Quantity, res.Quantity)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE token = ?", res.Token)
	return err
}

// ReleaseReservationTx returns a hold to the available pool.
func (r *SQL) ReleaseReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	result, err := tx.ExecContext(ctx,
		"UPDATE batch SET reserved = reserved - ? WHERE id = ? AND reserved >= ?",
		res.Quantity, res.BatchID, res.Quantity)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE token = ?", res.Token)
	return err
}

// ReceiveTx credits stock into a location. The idempotency token is recorded
// in stock_receipt with a unique key, so replaying the same logical receipt
// is a no-op: applied=false and the existing batch id are returned.
func (r *SQL) ReceiveTx(ctx context.Context, tx *sqlx.Tx, req *model.ReceiveRequest) (uint64, bool, error) {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO stock_receipt (token, product_id, location_id, batch_number, quantity) VALUES (?, ?, ?, ?, ?)",
		req.IdempotencyToken, req.ProductID, req.LocationID, req.BatchNumber, req.Quantity)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			id, lookupErr := r.findBatchIDTx(ctx, tx, req)
			return id, false, lookupErr
		}
		return 0, false, err
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE batch SET quantity = quantity + ? WHERE product_id = ? AND location_id = ? AND batch_number = ?",
		req.Quantity, req.ProductID, req.LocationID, req.BatchNumber)
	if err != nil {
		return 0, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}
	if affected > 0 {
		id, err := r.findBatchIDTx(ctx, tx, req)
		return id, true, err
	}

	insert, err := tx.ExecContext(ctx,
		"INSERT INTO batch (product_id, location_id, batch_number, quantity, reserved, expiry) VALUES (?, ?, ?, ?, 0, ?)",
		req.ProductID, req.LocationID, req.BatchNumber, req.Quantity, req.Expiry)
	if err != nil {
		return 0, false, err
	}
	id, err := insert.LastInsertId()
	if err != nil {
		return 0, false, err
	}
	return uint64(id), true, nil
}

func (r *SQL) findBatchIDTx(ctx context.Context, tx *sqlx.Tx, req *model.ReceiveRequest) (uint64, error) {
	var id uint64
	err := tx.GetContext(ctx, &id,
		"SELECT id FROM batch WHERE product_id = ? AND location_id = ? AND batch_number = ?",
		req.ProductID, req.LocationID, req.BatchNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

// DeductTx decrements available quantity directly, used by the sale commit
// where the reserve-then-finalize happens in one transaction.
func (r *SQL) DeductTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE batch SET quantity = quantity - ? WHERE id = ? AND quantity - reserved >= ?",
		qty, batchID, qty)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.SetCustomError(constant.ErrConcurrentModification)
	}
	return nil
}

// CreditTx returns quantity to a batch, used by sale refunds.
func (r *SQL) CreditTx(ctx context.Context, tx *sqlx.Tx, batchID uint64, qty int64) error {
	res, err := tx.ExecContext(ctx, "UPDATE batch SET quantity = quantity + ? WHERE id = ?", qty, batchID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cerr.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (r *SQL) Snapshot(ctx context.Context, filter *model.SnapshotFilter) ([]model.SnapshotEntry, error) {
	query := snapshotBase
	args := make([]interface{}, 0, 2)
	conds := ""
	if filter != nil && filter.ProductID != nil {
		conds += " AND b.product_id = ?"
		args = append(args, *filter.ProductID)
	}
	if filter != nil && filter.LocationID != nil {
		conds += " AND b.location_id = ?"
		args = append(args, *filter.LocationID)
	}
	if conds != "" {
		query += " WHERE" + conds[4:]
	}
	query += " ORDER BY b.product_id, b.location_id, b.id"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.SnapshotEntry, 0)
	for rows.Next() {
		var e model.SnapshotEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQL) HasStock(ctx context.Context, productID uint64) (bool, error) {
	var exists bool
	err := r.conn.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM batch WHERE product_id = ? AND quantity > 0)", productID)
	if err != nil {
		return false, err
	}
	return exists, nil
}
