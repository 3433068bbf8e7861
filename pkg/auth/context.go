package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const storeIDKey contextKey = "store_id"

// ErrStoreIDNotFound is returned when no StoreID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrStoreIDNotFound = errors.New("store_id not found in context")

// StoreIDFromCtx extracts the authenticated store operator's store ID from the
// request context. Returns 0 and ErrStoreIDNotFound if no StoreID is set
// (unauthenticated request).
func StoreIDFromCtx(ctx context.Context) (int64, error) {
	storeID, ok := ctx.Value(storeIDKey).(int64)
	if !ok || storeID == 0 {
		return 0, ErrStoreIDNotFound
	}
	return storeID, nil
}

// WithStoreID returns a new context with the given StoreID attached.
// Used by authentication middleware after validating the session.
func WithStoreID(ctx context.Context, storeID int64) context.Context {
	return context.WithValue(ctx, storeIDKey, storeID)
}
