package tracker

import (
	"context"

	"github.com/google/uuid"
)

// User ID context management. Authentication is external: the host's auth
// middleware resolves the session and stores the user ID here.
type userIDCtxKey struct{}

// SetUserIDToContext stores the authenticated user's ID in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user's ID, if present.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(uuid.UUID)
	return userID, ok
}
