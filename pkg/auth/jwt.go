package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing authorization")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token body issued by the identity provider.
type Claims struct {
	Role         string `json:"role"`
	RestaurantID int64  `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 bearer tokens.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// FromRequest extracts and validates a Bearer JWT from the Authorization header.
func (v *Verifier) FromRequest(r *http.Request) (*Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidToken
	}
	return v.Parse(strings.TrimSpace(parts[1]))
}

// Parse validates a token and maps its claims to a Principal.
func (v *Verifier) Parse(tokenStr string) (*Principal, error) {
	if len(v.secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	c, _ := tok.Claims.(*Claims)
	if c == nil {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}

	p := &Principal{UserID: userID, Role: Role(strings.ToLower(c.Role))}
	switch p.Role {
	case RoleCustomer:
	case RoleStaff:
		if c.RestaurantID <= 0 {
			return nil, ErrInvalidToken
		}
		p.RestaurantID = c.RestaurantID
	default:
		return nil, ErrInvalidToken
	}
	return p, nil
}

// Sign issues a token for p. Used by tooling and tests standing in for the
// identity provider.
func Sign(secret string, p Principal, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = strconv.FormatInt(p.UserID, 10)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             string(p.Role),
		RestaurantID:     p.RestaurantID,
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(secret))
}
