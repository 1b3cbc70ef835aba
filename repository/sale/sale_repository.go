package sale

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-tracker/constant"
	"github.com/muhammadheryan/inventory-tracker/model"
)

type SaleRepository interface {
	InsertSaleTx(ctx context.Context, tx *sqlx.Tx, s *model.Sale) (uint64, error)
	InsertSaleLinesTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, lines []model.SaleLine) error
	GetSaleTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Sale, error)
	GetSaleLinesTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) ([]model.SaleLine, error)
	UpdateSaleStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.SaleStatus) (bool, error)
	List(ctx context.Context, locationID *uint64) ([]model.Sale, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewSaleRepository(conn *sqlx.DB) SaleRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertSaleTx(ctx context.Context, tx *sqlx.Tx, s *model.Sale) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO sale (location_id, total_cents, payment_method, customer_name, customer_phone, status) VALUES (?, ?, ?, ?, ?, ?)",
		s.LocationID, s.TotalCents, s.PaymentMethod, s.CustomerName, s.CustomerPhone, s.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertSaleLinesTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, lines []model.SaleLine) error {
	q := "INSERT INTO sale_line (sale_id, product_id, batch_id, quantity, unit_price_cents, subtotal_cents) VALUES (?, ?, ?, ?, ?, ?)"
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, q, saleID, line.ProductID, line.BatchID, line.Quantity, line.UnitPriceCents, line.SubtotalCents); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetSaleTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Sale, error) {
	var s model.Sale
	err := tx.GetContext(ctx, &s,
		"SELECT id, location_id, total_cents, payment_method, customer_name, customer_phone, status, created_at FROM sale WHERE id = ? FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetSaleLinesTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) ([]model.SaleLine, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, sale_id, product_id, batch_id, quantity, unit_price_cents, subtotal_cents FROM sale_line WHERE sale_id = ? ORDER BY batch_id", saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.SaleLine, 0)
	for rows.Next() {
		var line model.SaleLine
		if err := rows.StructScan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *SQL) UpdateSaleStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, from, to constant.SaleStatus) (bool, error) {
	res, err := tx.ExecContext(ctx, "UPDATE sale SET status = ? WHERE id = ? AND status = ?", to, id, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQL) List(ctx context.Context, locationID *uint64) ([]model.Sale, error) {
	query := "SELECT id, location_id, total_cents, payment_method, customer_name, customer_phone, status, created_at FROM sale"
	args := make([]interface{}, 0, 1)
	if locationID != nil {
		query += " WHERE location_id = ?"
		args = append(args, *locationID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]model.Sale, 0)
	for rows.Next() {
		var s model.Sale
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
