package model

import (
	"time"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

type StockRequest struct {
	ID              uint64                 `db:"id" json:"id"`
	SellerID        uint64                 `db:"seller_id" json:"seller_id"`
	ProductID       uint64                 `db:"product_id" json:"product_id"`
	Quantity        int64                  `db:"quantity" json:"quantity"`
	Status          constant.RequestStatus `db:"status" json:"status"`
	ResolutionNotes string                 `db:"resolution_notes" json:"resolution_notes,omitempty"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time              `db:"updated_at" json:"updated_at"`
}

type SubmitRequestInput struct {
	SellerID  uint64 `json:"-"`
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type ResolveRequestInput struct {
	Notes string `json:"notes"`
}

type RejectRequestInput struct {
	Reason string `json:"reason" validate:"required"`
}
