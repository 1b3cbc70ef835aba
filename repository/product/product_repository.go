package product

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

type ProductRepository interface {
	Insert(ctx context.Context, req *model.CreateProductRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
	Delete(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = "id, sku, name, category, unit_price_cents, created_at, updated_at"
)

func (r *SQL) Insert(ctx context.Context, req *model.CreateProductRequest) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO product (sku, name, category, unit_price_cents) VALUES (?, ?, ?, ?)",
		req.SKU, req.Name, req.Category, req.UnitPriceCents)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, cerr.SetCustomErrorf(constant.ErrValidation, "sku %s already exists", req.SKU)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE product SET name = ?, category = ?, unit_price_cents = ? WHERE id = ?",
		req.Name, req.Category, req.UnitPriceCents, id)
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

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := r.conn.GetContext(ctx, &p, "SELECT "+productColumns+" FROM product WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQL) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	offset := (page - 1) * perPage

	rows, err := r.conn.QueryxContext(ctx,
		"SELECT "+productColumns+" FROM product ORDER BY id LIMIT ? OFFSET ?", perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM product"); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
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
