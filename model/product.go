package model

import "time"

type Product struct {
	ID             uint64    `db:"id" json:"id"`
	SKU            string    `db:"sku" json:"sku"`
	Name           string    `db:"name" json:"name"`
	Category       string    `db:"category" json:"category"`
	UnitPriceCents int64     `db:"unit_price_cents" json:"unit_price_cents"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type CreateProductRequest struct {
	SKU            string `json:"sku" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
}

// UpdateProductRequest intentionally omits the SKU, it is immutable.
type UpdateProductRequest struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
