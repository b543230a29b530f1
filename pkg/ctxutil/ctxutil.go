package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/default-registry/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithActor stores the authenticated user ID and role in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, roleKey, actor.Role)
}

// ActorFromCtx extracts the authenticated actor from the context.
// Returns false if either the user ID or the role is missing.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Role: role}, true
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller's address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx returns the caller's address, or nil if unknown.
func ClientIPFromCtx(ctx context.Context) *string {
	ip, _ := ctx.Value(clientIPKey).(string)
	if ip == "" {
		return nil
	}
	return &ip
}
