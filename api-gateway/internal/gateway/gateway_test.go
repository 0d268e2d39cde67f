package gateway_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eatplus/api-gateway/internal/gateway"
	"eatplus/api-gateway/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func upstreamResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	resp.Header.Set("Connection", "keep-alive")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, discardLogger())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_ProxiesToOrderService(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		wantURL string
	}{
		{name: "catalog", method: http.MethodGet, target: "/api/restaurants/7/items?order_for=delivery", wantURL: "http://order-svc:8081/api/restaurants/7/items?order_for=delivery"},
		{name: "checkout", method: http.MethodPost, target: "/api/orders/42/checkout", wantURL: "http://order-svc:8081/api/orders/42/checkout"},
		{name: "staff status", method: http.MethodPut, target: "/api/restaurant/orders/42/status", wantURL: "http://order-svc:8081/api/restaurant/orders/42/status"},
		{name: "line removal", method: http.MethodDelete, target: "/api/order-items/3", wantURL: "http://order-svc:8081/api/order-items/3"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{OrderSvcURL: "http://order-svc:8081/"}, client, discardLogger())

			client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method &&
					req.URL.String() == testCase.wantURL &&
					req.Header.Get("Authorization") == "Bearer tok" &&
					req.Header.Get("X-Request-ID") != ""
			})).Return(upstreamResponse(http.StatusOK, `{"id":42}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.target, strings.NewReader(`{}`))
			req.Header.Set("Authorization", "Bearer tok")
			rr := httptest.NewRecorder()
			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"id":42}`, rr.Body.String())
			assert.Empty(t, rr.Header().Get("Connection"))
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestGateway_KeepsRequestIDAndUpstreamStatus(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{OrderSvcURL: "http://order-svc"}, client, discardLogger())

	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("X-Request-ID") == "req-1"
	})).Return(upstreamResponse(http.StatusUnprocessableEntity, `{"error":"Cart is empty"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/42/checkout", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "req-1", rr.Header().Get("X-Request-ID"))
}

func TestGateway_UpstreamDown(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{OrderSvcURL: "http://order-svc"}, client, discardLogger())
	client.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"error":"bad gateway"}`, rr.Body.String())
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{OrderSvcURL: "http://order-svc"}, mocks.NewHTTPClient(t), discardLogger())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
