package model

import "time"

// Batch is a quantity of one product received at one location under one
// batch number. A batch that reaches quantity 0 stays on record, it is
// never deleted.
type Batch struct {
	ID          uint64     `db:"id" json:"id"`
	ProductID   uint64     `db:"product_id" json:"product_id"`
	LocationID  uint64     `db:"location_id" json:"location_id"`
	BatchNumber string     `db:"batch_number" json:"batch_number"`
	Quantity    int64      `db:"quantity" json:"quantity"`
	Reserved    int64      `db:"reserved" json:"reserved"`
	Expiry      *time.Time `db:"expiry" json:"expiry,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Available is the quantity not held by in-flight reservations.
func (b *Batch) Available() int64 {
	return b.Quantity - b.Reserved
}

// BatchDetail joins the owning product onto a batch row for pricing.
type BatchDetail struct {
	Batch
	ProductName    string `db:"product_name" json:"product_name"`
	UnitPriceCents int64  `db:"unit_price_cents" json:"unit_price_cents"`
}

// Reservation is a temporary hold against one batch, convertible to a
// commit or released back.
type Reservation struct {
	Token     string    `db:"token" json:"token"`
	BatchID   uint64    `db:"batch_id" json:"batch_id"`
	Quantity  int64     `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReceiveRequest struct {
	ProductID        uint64     `json:"product_id" validate:"required"`
	LocationID       uint64     `json:"location_id" validate:"required"`
	BatchNumber      string     `json:"batch_number" validate:"required"`
	Quantity         int64      `json:"quantity" validate:"required,gt=0"`
	Expiry           *time.Time `json:"expiry,omitempty"`
	IdempotencyToken string     `json:"idempotency_token" validate:"required"`
}
