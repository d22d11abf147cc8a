package context

import (
	"context"

	"github.com/muhammadheryan/hub-fulfillment/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetUserRole(ctx context.Context) (constant.UserRole, bool) {
	v := ctx.Value(constant.UserRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.UserRole)
	return role, ok
}

// GetActor returns the authenticated user id as an optional audit field.
func GetActor(ctx context.Context) *uint64 {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &id
}
