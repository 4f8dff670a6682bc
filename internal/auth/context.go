package auth

import (
	"context"

	"github.com/google/uuid"
)

// Roles assigned to dashboard accounts.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// UserContext holds authenticated user information
type UserContext struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Role        string
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// MustFromContext extracts user context or panics
func MustFromContext(ctx context.Context) *UserContext {
	user, ok := FromContext(ctx)
	if !ok {
		panic("user context not found in context")
	}
	return user
}

// IsAdmin checks if the user holds the admin role
func (u *UserContext) IsAdmin() bool {
	return u.Role == RoleAdmin
}
