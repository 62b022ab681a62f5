// Package main implements a mock eBay API server for local development.
// It serves canned responses for the OAuth token endpoint and the Browse,
// Sell Inventory, Sell Fulfillment and Analytics APIs without requiring real
// eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// revokedRefreshToken is rejected with invalid_grant so clients can exercise
// the reconnect path.
const revokedRefreshToken = "revoked"

type page[T any] struct {
	items  []T
	total  int
	offset int
	limit  int
	next   bool
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, defaultFixtures(), time.Now)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, f fixtures, now func() time.Time) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", tokenHandler(logger))
	mux.HandleFunc("GET /buy/browse/v1/item_summary/search", searchHandler(logger, f.Market))
	mux.Handle("GET /sell/inventory/v1/inventory_item", requireBearer(inventoryHandler(f.Inventory)))
	mux.Handle("GET /sell/fulfillment/v1/order", requireBearer(ordersHandler(f.Orders)))
	mux.Handle("GET /developer/analytics/v1_beta/rate_limit/", requireBearer(rateLimitHandler(now)))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Basic Auth must be present; credentials are not checked.
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("token request missing Basic Auth header")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "client authentication failed",
			})
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
			return
		}

		suffix := strconv.FormatInt(int64(os.Getpid()), 16)
		switch r.PostForm.Get("grant_type") {
		case "client_credentials":
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "mock-app-token-" + suffix,
				"expires_in":   7200,
				"token_type":   "Application Access Token",
			})
			logger.Info("issued mock application token")
		case "refresh_token":
			if r.PostForm.Get("refresh_token") == revokedRefreshToken {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":             "invalid_grant",
					"error_description": "the provided authorization refresh token is invalid or was issued to another client",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "mock-user-token-" + suffix,
				"expires_in":   7200,
				"token_type":   "User Access Token",
			})
			logger.Info("refreshed mock user token")
		default:
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		}
	}
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"errors": []map[string]any{{"errorId": 1001, "message": "Invalid access token"}},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func paginate[T any](r *http.Request, all []T, defaultLimit int) page[T] {
	limit := defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	p := page[T]{total: len(all), offset: offset, limit: limit, items: []T{}}
	if offset < len(all) {
		end := min(offset+limit, len(all))
		p.items = all[offset:end]
	}
	p.next = offset+limit < len(all)
	return p
}

func nextLink[T any](r *http.Request, p page[T]) string {
	if !p.next {
		return ""
	}
	q := r.URL.Query()
	q.Set("offset", strconv.Itoa(p.offset+p.limit))
	q.Set("limit", strconv.Itoa(p.limit))
	return r.URL.Path + "?" + q.Encode()
}

func searchHandler(logger *slog.Logger, items []itemSummary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))

		matched := make([]itemSummary, 0, len(items))
		for _, it := range items {
			if q == "" || matchesAll(strings.ToLower(it.Title), strings.Fields(q)) {
				matched = append(matched, it)
			}
		}

		p := paginate(r, matched, 50)
		writeJSON(w, http.StatusOK, map[string]any{
			"itemSummaries": p.items,
			"total":         p.total,
			"offset":        p.offset,
			"limit":         p.limit,
			"next":          nextLink(r, p),
		})
		logger.Info("search", "query", q, "matched", p.total, "returned", len(p.items), "offset", p.offset)
	}
}

func matchesAll(title string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(title, w) {
			return false
		}
	}
	return true
}

func inventoryHandler(items []inventoryItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paginate(r, items, 25)
		writeJSON(w, http.StatusOK, map[string]any{
			"href":           r.URL.String(),
			"inventoryItems": p.items,
			"total":          p.total,
			"size":           len(p.items),
			"limit":          p.limit,
			"next":           nextLink(r, p),
		})
	}
}

func ordersHandler(orders []order) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := paginate(r, orders, 50)
		writeJSON(w, http.StatusOK, map[string]any{
			"href":   r.URL.String(),
			"orders": p.items,
			"total":  p.total,
			"offset": p.offset,
			"limit":  p.limit,
			"next":   nextLink(r, p),
		})
	}
}

func rateLimitHandler(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiContext := r.URL.Query().Get("api_context")
		apiName := r.URL.Query().Get("api_name")
		if apiContext == "" || apiName == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "api_context and api_name are required"})
			return
		}

		reset := now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
		writeJSON(w, http.StatusOK, map[string]any{
			"rateLimits": []map[string]any{{
				"apiContext": apiContext,
				"apiName":    apiName,
				"apiVersion": "v1",
				"resources": []map[string]any{{
					"name": apiContext + "." + apiName,
					"rates": []map[string]any{{
						"count":      120,
						"limit":      5000,
						"remaining":  4880,
						"reset":      reset.Format(time.RFC3339),
						"timeWindow": 86400,
					}},
				}},
			}},
		})
	}
}
