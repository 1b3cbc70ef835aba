package context

import (
	"context"

	"github.com/muhammadheryan/inventory-tracker/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// GetLocationID returns the seller location bound to the caller's token.
// Admin tokens carry no location.
func GetLocationID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.LocationIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
