package domain

import "context"

type CtxKey string

const (
	KeyUserID CtxKey = "UserID"
)

// CallerID extracts the authenticated user's id from the request context.
// Requests without a valid bearer token have no id attached; ok is false.
func CallerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(KeyUserID).(string)
	return id, ok && id != ""
}
