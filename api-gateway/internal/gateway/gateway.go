package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL string
}

// Gateway is the public entry point. Every /api/ request is forwarded to order-svc.
type Gateway struct {
	config Config
	client HTTPClient
	log    *slog.Logger
}

func NewGateway(config Config, client HTTPClient, log *slog.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

// hopHeaders are connection-scoped and never forwarded.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	log := g.log.With("request_id", id, "method", r.Method, "path", r.URL.Path)

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error("build upstream request", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	req.Header = r.Header.Clone()
	for _, h := range hopHeaders {
		req.Header.Del(h)
	}
	req.Header.Set(requestIDHeader, id)
	if r.RemoteAddr != "" {
		req.Header.Set("X-Forwarded-For", strings.Split(r.RemoteAddr, ":")[0])
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		log.Error("upstream request failed", "upstream", targetURL, "err", err)
		w.Header().Set(requestIDHeader, id)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "bad gateway"})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	for _, h := range hopHeaders {
		w.Header().Del(h)
	}
	w.Header().Set(requestIDHeader, id)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Warn("copy upstream response", "err", err)
	}
	log.Info("proxied", "status", resp.StatusCode, "duration", time.Since(start))
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}
	g.log.Debug("unmatched route", "method", r.Method, "path", r.URL.Path)
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
