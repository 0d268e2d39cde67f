//go:build e2e

package gateway_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatplus/pkg/auth"
)

// These tests drive a running stack through the gateway. They need
// GATEWAY_URL, JWT_SECRET, E2E_RESTAURANT_ID and E2E_ITEM_ID.
type e2eClient struct {
	base   string
	secret string
	http   *http.Client
}

func newE2EClient(t *testing.T) *e2eClient {
	base := os.Getenv("GATEWAY_URL")
	secret := os.Getenv("JWT_SECRET")
	if base == "" || secret == "" {
		t.Skip("GATEWAY_URL and JWT_SECRET must be set")
	}
	return &e2eClient{base: base, secret: secret, http: &http.Client{Timeout: 10 * time.Second}}
}

func envID(t *testing.T, key string) int64 {
	id, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		t.Skipf("%s must be set", key)
	}
	return id
}

func (c *e2eClient) token(t *testing.T, p auth.Principal) string {
	s, err := auth.Sign(c.secret, p, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	require.NoError(t, err)
	return s
}

func (c *e2eClient) call(t *testing.T, method, path, token string, in, out any) int {
	t.Helper()
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type orderView struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	SubTotal int64  `json:"sub_total"`
	Total    int64  `json:"total"`
}

func TestE2E_PickupOrderFlow(t *testing.T) {
	c := newE2EClient(t)
	restaurantID := envID(t, "E2E_RESTAURANT_ID")
	itemID := envID(t, "E2E_ITEM_ID")
	customerID := time.Now().UnixNano() % 1_000_000_000
	customer := c.token(t, auth.Principal{UserID: customerID, Role: auth.RoleCustomer})
	staff := c.token(t, auth.Principal{UserID: 1, Role: auth.RoleStaff, RestaurantID: restaurantID})

	var restaurants []map[string]any
	require.Equal(t, http.StatusOK, c.call(t, "GET", "/api/restaurants", "", nil, &restaurants))

	var cart orderView
	status := c.call(t, "POST", "/api/restaurants/"+strconv.FormatInt(restaurantID, 10)+"/cart", customer,
		map[string]any{"order_for": "pickup"}, &cart)
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, status)
	assert.Equal(t, "open", cart.Status)
	orderPath := "/api/orders/" + strconv.FormatInt(cart.ID, 10)

	require.Equal(t, http.StatusOK, c.call(t, "POST", orderPath+"/items", customer, map[string]any{"item_id": itemID}, &cart))
	assert.Positive(t, cart.SubTotal)
	assert.GreaterOrEqual(t, cart.Total, cart.SubTotal)

	var placed orderView
	require.Equal(t, http.StatusOK, c.call(t, "POST", orderPath+"/checkout", customer, map[string]any{}, &placed))
	assert.Equal(t, "placed", placed.Status)

	assert.Equal(t, http.StatusUnprocessableEntity, c.call(t, "POST", orderPath+"/items", customer, map[string]any{"item_id": itemID}, nil))

	req, err := http.NewRequest("GET", c.base+orderPath+"/qrcode", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+customer)
	resp, err := c.http.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	staffPath := "/api/restaurant/orders/" + strconv.FormatInt(cart.ID, 10)
	for _, want := range []string{"received", "ready", "completed"} {
		var advanced orderView
		require.Equal(t, http.StatusOK, c.call(t, "POST", staffPath+"/advance", staff, nil, &advanced))
		assert.Equal(t, want, advanced.Status)
	}
	assert.Equal(t, http.StatusUnprocessableEntity, c.call(t, "POST", staffPath+"/advance", staff, nil, nil))
}
