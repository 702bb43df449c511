package middleware

import (
	"context"

	"github.com/cardlinkhq/cardlink-backend/pkg/enums"
	"github.com/google/uuid"
)

type contextKey string

const (
	ctxAdminID contextKey = "admin_id"
	ctxEmail   contextKey = "email"
	ctxRole    contextKey = "actor_role"
)

// Identity is the authenticated caller resolved by the auth middleware.
type Identity struct {
	AdminID uuid.UUID
	Email   string
	Role    enums.AdminRole
}

// IsSuperAdmin reports whether the caller holds the SUPER_ADMIN role.
func (i Identity) IsSuperAdmin() bool {
	return i.Role == enums.AdminRoleSuperAdmin
}

func AdminIDFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxAdminID).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

func EmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxEmail).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) enums.AdminRole {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(enums.AdminRole); ok {
		return v
	}
	return ""
}

// IdentityFromContext assembles the caller identity seeded by Auth.
func IdentityFromContext(ctx context.Context) Identity {
	return Identity{
		AdminID: AdminIDFromContext(ctx),
		Email:   EmailFromContext(ctx),
		Role:    RoleFromContext(ctx),
	}
}

// WithIdentity injects the caller identity into the context. Exposed for
// handler tests that bypass the middleware stack.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxAdminID, identity.AdminID)
	ctx = context.WithValue(ctx, ctxEmail, identity.Email)
	return context.WithValue(ctx, ctxRole, identity.Role)
}
