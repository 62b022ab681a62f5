// Package store defines the datastore abstraction for card-ledger.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// AlertStatus filters alerts by whether they have fired.
type AlertStatus string

// Alert status filters.
const (
	AlertStatusAny       AlertStatus = ""
	AlertStatusActive    AlertStatus = "active"
	AlertStatusTriggered AlertStatus = "triggered"
)

// AlertQuery defines optional filters for alert queries.
type AlertQuery struct {
	UserID  *string
	ItemID  *string
	Status  AlertStatus
	Limit   int // default 50
	Offset  int
	OrderBy string // "created_at", "target_price", "triggered_at"
}

// Store defines all data access operations for card-ledger.
type Store interface {
	// Users
	UpsertUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// Provider tokens
	GetToken(ctx context.Context, userID string, provider domain.Provider) (*domain.TokenRecord, error)
	UpsertToken(ctx context.Context, rec domain.TokenRecord) error
	UpdateToken(ctx context.Context, rec domain.TokenRecord) error
	DeleteToken(ctx context.Context, userID string, provider domain.Provider) error

	// Price alerts
	CreateAlert(ctx context.Context, a *domain.PriceAlert) error
	GetAlert(ctx context.Context, userID, id string) (*domain.PriceAlert, error)
	ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.PriceAlert, int, error)
	ListActiveAlerts(ctx context.Context) ([]domain.PriceAlert, error)
	UpdateAlertPrice(ctx context.Context, id string, price float64) error
	MarkAlertTriggered(ctx context.Context, id string, price float64, at time.Time) (bool, error)
	DeleteAlert(ctx context.Context, userID, id string) error

	// Imports
	UpsertInventoryItems(
		ctx context.Context,
		userID string,
		provider domain.Provider,
		items []domain.InventoryItemDraft,
	) (int, error)
	UpsertSales(ctx context.Context, userID string, provider domain.Provider, sales []domain.SaleDraft) (int, error)

	// Preferences
	GetPreference(ctx context.Context, userID, key string) (*domain.Preference, error)
	SetPreference(ctx context.Context, userID, key string, value json.RawMessage) error
	DeletePreference(ctx context.Context, userID, key string) error
	ListPreferences(ctx context.Context, userID string) ([]domain.Preference, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
