package model

import (
	"github.com/muhammadheryan/inventory-tracker/constant"
)

type Location struct {
	ID   uint64                `db:"id" json:"id"`
	Name string                `db:"name" json:"name"`
	Type constant.LocationType `db:"type" json:"type"`
}
