package model

import (
	"time"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

// Monetary amounts are carried as integer cents everywhere so totals do not
// drift across refund/recompute cycles.
type Sale struct {
	ID            uint64              `db:"id" json:"id"`
	LocationID    uint64              `db:"location_id" json:"location_id"`
	TotalCents    int64               `db:"total_cents" json:"total_cents"`
	PaymentMethod string              `db:"payment_method" json:"payment_method"`
	CustomerName  string              `db:"customer_name" json:"customer_name,omitempty"`
	CustomerPhone string              `db:"customer_phone" json:"customer_phone,omitempty"`
	Status        constant.SaleStatus `db:"status" json:"status"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

type SaleLine struct {
	ID             uint64 `db:"id" json:"id"`
	SaleID         uint64 `db:"sale_id" json:"sale_id"`
	ProductID      uint64 `db:"product_id" json:"product_id"`
	BatchID        uint64 `db:"batch_id" json:"batch_id"`
	Quantity       int64  `db:"quantity" json:"quantity"`
	UnitPriceCents int64  `db:"unit_price_cents" json:"unit_price_cents"`
	SubtotalCents  int64  `db:"subtotal_cents" json:"subtotal_cents"`
}

type SaleLineRequest struct {
	BatchID  uint64 `json:"batch_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type QuoteRequest struct {
	LocationID uint64            `json:"-"`
	Lines      []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type QuoteLine struct {
	BatchID        uint64 `json:"batch_id"`
	ProductID      uint64 `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

type QuoteResponse struct {
	Lines      []QuoteLine `json:"lines"`
	TotalCents int64       `json:"total_cents"`
}

type RecordSaleRequest struct {
	LocationID    uint64            `json:"-"`
	Lines         []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash card mobile"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerPhone string            `json:"customer_phone,omitempty"`
}

type SaleResponse struct {
	SaleID     uint64    `json:"sale_id"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
