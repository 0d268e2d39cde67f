package authtest

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"eatplus/pkg/auth"
)

const Secret = "test-secret"

// Token returns a signed bearer token for p valid for one hour.
func Token(t *testing.T, p auth.Principal) string {
	t.Helper()
	s, err := auth.Sign(Secret, p, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func Customer(t *testing.T, id int64) string {
	return Token(t, auth.Principal{UserID: id, Role: auth.RoleCustomer})
}

func Staff(t *testing.T, id, restaurantID int64) string {
	return Token(t, auth.Principal{UserID: id, Role: auth.RoleStaff, RestaurantID: restaurantID})
}
