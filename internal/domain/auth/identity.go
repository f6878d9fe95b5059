package auth

import (
	"context"

	"github.com/sunfocus/erp-backend-go/internal/domain/user"
)

// Identity is the authenticated caller as established by the token middleware.
type Identity struct {
	EmployeeID string
	Email      string
	Role       user.Role
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.EmployeeID == "" {
		return Identity{}, ErrMissingIdentity
	}
	return id, nil
}
