package auth

import "context"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// Principal represents the authenticated caller from JWT.
type Principal struct {
	UserID       int64
	Role         Role
	RestaurantID int64 // set for staff only
}

func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}

// IsStaffOf reports whether the principal works for the given restaurant.
func (p Principal) IsStaffOf(restaurantID int64) bool {
	return p.Role == RoleStaff && p.RestaurantID != 0 && p.RestaurantID == restaurantID
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
