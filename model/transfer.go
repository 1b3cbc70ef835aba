package model

import (
	"time"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

type StockTransfer struct {
	ID                    uint64                  `db:"id" json:"id"`
	ProductID             uint64                  `db:"product_id" json:"product_id"`
	SourceBatchID         uint64                  `db:"source_batch_id" json:"source_batch_id"`
	DestinationLocationID uint64                  `db:"destination_location_id" json:"destination_location_id"`
	Quantity              int64                   `db:"quantity" json:"quantity"`
	LinkedRequestID       *uint64                 `db:"linked_request_id" json:"linked_request_id,omitempty"`
	ReservationToken      string                  `db:"reservation_token" json:"-"`
	BatchNumber           string                  `db:"batch_number" json:"batch_number,omitempty"`
	Status                constant.TransferStatus `db:"status" json:"status"`
	CreatedAt             time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time               `db:"updated_at" json:"updated_at"`
}

type InitiateTransferRequest struct {
	ProductID             uint64  `json:"product_id" validate:"required"`
	SourceBatchID         uint64  `json:"source_batch_id" validate:"required"`
	DestinationLocationID uint64  `json:"destination_location_id" validate:"required"`
	Quantity              int64   `json:"quantity" validate:"required,gt=0"`
	LinkedRequestID       *uint64 `json:"linked_request_id,omitempty"`
	// BatchNumber optionally names the destination batch. When empty a
	// number is generated at completion time.
	BatchNumber string `json:"batch_number,omitempty"`
}
