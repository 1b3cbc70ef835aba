package model

import "time"

// SnapshotEntry is one row of the ledger read model. Reserved quantity is
// reported separately so in-flight holds show up as "held", not "available".
type SnapshotEntry struct {
	ProductID    uint64     `db:"product_id" json:"product_id"`
	ProductName  string     `db:"product_name" json:"product_name"`
	SKU          string     `db:"sku" json:"sku"`
	LocationID   uint64     `db:"location_id" json:"location_id"`
	LocationName string     `db:"location_name" json:"location_name"`
	BatchID      uint64     `db:"batch_id" json:"batch_id"`
	BatchNumber  string     `db:"batch_number" json:"batch_number"`
	Available    int64      `db:"available" json:"available"`
	Reserved     int64      `db:"reserved" json:"reserved"`
	Expiry       *time.Time `db:"expiry" json:"expiry,omitempty"`
}

type SnapshotFilter struct {
	ProductID  *uint64 `json:"product_id,omitempty"`
	LocationID *uint64 `json:"location_id,omitempty"`
}
