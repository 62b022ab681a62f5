package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultQuotaWindow = 24 * time.Hour

// ErrDailyLimitReached is returned when the application's daily call budget
// is spent.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// QuotaPolicy is the call budget of one eBay application keyset.
type QuotaPolicy struct {
	CallsPerSecond float64
	Burst          int
	DailyCalls     int64
}

// Quota is a point-in-time view of an application's daily budget.
type Quota struct {
	AppID     string    `json:"app_id,omitempty"`
	Used      int64     `json:"used"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// AppQuota meters the calls made with one eBay application keyset. eBay
// counts calls against the application, not the user token that signs them,
// so the Sell and Browse clients built from one keyset share an AppQuota.
//
// A window opens with the first call and closes a full window later; the
// next call after that opens a fresh one.
type AppQuota struct {
	appID  string
	pacer  *rate.Limiter
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	limit   int64
	used    int64
	resetAt time.Time // zero while no window is open
}

// AppQuotaOption configures an AppQuota.
type AppQuotaOption func(*AppQuota)

// WithQuotaClock overrides the time source.
func WithQuotaClock(f func() time.Time) AppQuotaOption {
	return func(q *AppQuota) {
		q.now = f
	}
}

// WithQuotaWindow overrides the 24-hour budget window.
func WithQuotaWindow(d time.Duration) AppQuotaOption {
	return func(q *AppQuota) {
		if d > 0 {
			q.window = d
		}
	}
}

// NewAppQuota creates the quota for the application identified by appID.
func NewAppQuota(appID string, p QuotaPolicy, opts ...AppQuotaOption) *AppQuota {
	q := &AppQuota{
		appID:  appID,
		pacer:  rate.NewLimiter(rate.Limit(p.CallsPerSecond), p.Burst),
		window: defaultQuotaWindow,
		now:    time.Now,
		limit:  p.DailyCalls,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Acquire takes one call from the daily budget and then waits until the
// call may be sent. The call is handed back if ctx ends while waiting.
func (q *AppQuota) Acquire(ctx context.Context) error {
	window, err := q.reserve()
	if err != nil {
		return err
	}
	if err := q.pacer.Wait(ctx); err != nil {
		q.release(window)
		return fmt.Errorf("pacing call for app %s: %w", q.appID, err)
	}
	return nil
}

func (q *AppQuota) reserve() (time.Time, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.rollLocked(now)
	if q.used >= q.limit {
		return time.Time{}, fmt.Errorf("%w: app %s used %d of %d, resets %s",
			ErrDailyLimitReached, q.appID, q.used, q.limit, q.resetAt.Format(time.RFC3339))
	}
	if q.resetAt.IsZero() {
		q.resetAt = now.Add(q.window)
	}
	q.used++
	return q.resetAt, nil
}

// release returns a reserved call unless its window has since closed.
func (q *AppQuota) release(window time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.resetAt.Equal(window) && q.used > 0 {
		q.used--
	}
}

func (q *AppQuota) rollLocked(now time.Time) {
	if !q.resetAt.IsZero() && !now.Before(q.resetAt) {
		q.used = 0
		q.resetAt = time.Time{}
	}
}

// Used returns the calls taken in the current window.
func (q *AppQuota) Used() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rollLocked(q.now())
	return q.used
}

// Snapshot returns the current budget. With no open window, ResetAt is
// when a window opened now would close.
func (q *AppQuota) Snapshot() Quota {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.rollLocked(now)
	resetAt := q.resetAt
	if resetAt.IsZero() {
		resetAt = now.Add(q.window)
	}
	return Quota{
		AppID:     q.appID,
		Used:      q.used,
		Limit:     q.limit,
		Remaining: max(q.limit-q.used, 0),
		ResetAt:   resetAt,
	}
}

// Reconcile folds eBay's own counters for a resource into the local budget.
// eBay's count and reset time win when they are stricter, and a lower
// provider limit caps the local one.
func (q *AppQuota) Reconcile(st QuotaState) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	q.rollLocked(now)
	if st.Limit > 0 && st.Limit < q.limit {
		q.limit = st.Limit
	}
	if st.Count > q.used {
		q.used = st.Count
	}
	if !st.ResetAt.IsZero() && st.ResetAt.After(now) {
		if q.resetAt.IsZero() || st.ResetAt.After(q.resetAt) {
			q.resetAt = st.ResetAt
		}
	}
	if q.used > 0 && q.resetAt.IsZero() {
		q.resetAt = now.Add(q.window)
	}
}
