package ebay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrProviderUnavailable marks transient failures: network errors, 429
	// and 5xx responses. Callers may retry a bounded number of times.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrAuthorizationExpired is returned when the provider rejects a user
	// access token with 401 or 403. The user must reconnect.
	ErrAuthorizationExpired = errors.New("provider authorization expired")
)

// TokenRefreshError is returned when the token endpoint rejects a refresh
// grant. The refresh token should be considered dead and is never retried.
type TokenRefreshError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *TokenRefreshError) Error() string {
	msg := fmt.Sprintf("token refresh rejected (status %d)", e.StatusCode)
	if e.Code != "" {
		msg += ": " + e.Code
	}
	if e.Description != "" {
		msg += " - " + e.Description
	}
	return msg
}

// APIError is a non-retryable 4xx response from a provider REST API.
type APIError struct {
	StatusCode int
	ErrorID    string
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("eBay API error (status %d) on %s", e.StatusCode, e.Endpoint)
	if e.ErrorID != "" {
		msg += ": " + e.ErrorID
	}
	if e.Message != "" {
		msg += " - " + e.Message
	}
	return msg
}

type apiErrorBody struct {
	Errors []struct {
		ErrorID     json.Number `json:"errorId"`
		Message     string      `json:"message"`
		LongMessage string      `json:"longMessage"`
	} `json:"errors"`
}

// classifyResponse maps a non-2xx status to the error taxonomy. endpoint is
// used only for messages.
func classifyResponse(status int, body []byte, endpoint string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w (status %d on %s)", ErrAuthorizationExpired, status, endpoint)
	case status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w (status %d on %s)", ErrProviderUnavailable, status, endpoint)
	}

	apiErr := &APIError{StatusCode: status, Endpoint: endpoint}
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		apiErr.ErrorID = first.ErrorID.String()
		apiErr.Message = first.Message
		if apiErr.Message == "" {
			apiErr.Message = first.LongMessage
		}
	} else {
		apiErr.Message = truncate(strings.TrimSpace(string(body)), 200)
	}
	return apiErr
}

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// extraSeconds reads a numeric token response field. The oauth2 package
// keeps JSON numbers as float64 and form-encoded values as int64 or string.
func extraSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
