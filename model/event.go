package model

import (
	"time"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

// Event is the envelope delivered to the notification stream. Emission is
// best-effort, consumers must tolerate at-least-once delivery.
type Event struct {
	Type       constant.EventType `json:"type"`
	LocationID uint64             `json:"location_id"`
	ProductID  uint64             `json:"product_id,omitempty"`
	BatchID    uint64             `json:"batch_id,omitempty"`
	RequestID  uint64             `json:"request_id,omitempty"`
	TransferID uint64             `json:"transfer_id,omitempty"`
	SaleID     uint64             `json:"sale_id,omitempty"`
	Quantity   int64              `json:"quantity,omitempty"`
	Available  int64              `json:"available,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
