package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/card-ledger/pkg/prefs"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling. A
// pool_max_conns setting in the connection string takes precedence over the
// default pool size.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertUser inserts a user or updates its email.
func (s *PostgresStore) UpsertUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{"id": u.ID, "email": u.Email}
	if err := s.pool.QueryRow(ctx, queryUpsertUser, args).Scan(&u.CreatedAt); err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUser, id).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err, "user %s", id)
	}
	return u, nil
}

// GetToken retrieves the token record for a user and provider.
func (s *PostgresStore) GetToken(
	ctx context.Context,
	userID string,
	provider domain.Provider,
) (*domain.TokenRecord, error) {
	rec := &domain.TokenRecord{}
	var providerName string
	var refreshExpires *time.Time

	err := s.pool.QueryRow(ctx, queryGetToken, userID, string(provider)).Scan(
		&rec.UserID, &providerName, &rec.AccessToken, &rec.AccessTokenExpiresAt,
		&rec.RefreshToken, &refreshExpires, &rec.ProviderUsername, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "token for %s/%s", userID, provider)
	}

	rec.Provider = domain.Provider(providerName)
	if refreshExpires != nil {
		rec.RefreshTokenExpiresAt = *refreshExpires
	}
	return rec, nil
}

// UpsertToken writes the token record, replacing any existing one for the
// same user and provider. An empty provider username keeps the stored one.
func (s *PostgresStore) UpsertToken(ctx context.Context, rec domain.TokenRecord) error {
	if _, err := s.pool.Exec(ctx, queryUpsertToken, tokenArgs(rec)); err != nil {
		return fmt.Errorf("upserting token: %w", err)
	}
	return nil
}

// UpdateToken overwrites the token values of an existing record. It never
// creates one: a record deleted while a refresh was in flight stays deleted
// and ErrNotFound is returned.
func (s *PostgresStore) UpdateToken(ctx context.Context, rec domain.TokenRecord) error {
	tag, err := s.pool.Exec(ctx, queryUpdateToken, tokenArgs(rec))
	if err != nil {
		return fmt.Errorf("updating token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func tokenArgs(rec domain.TokenRecord) pgx.NamedArgs {
	var refreshExpires *time.Time
	if !rec.RefreshTokenExpiresAt.IsZero() {
		t := rec.RefreshTokenExpiresAt
		refreshExpires = &t
	}

	return pgx.NamedArgs{
		"user_id":                  rec.UserID,
		"provider":                 string(rec.Provider),
		"access_token":             rec.AccessToken,
		"access_token_expires_at":  rec.AccessTokenExpiresAt,
		"refresh_token":            rec.RefreshToken,
		"refresh_token_expires_at": refreshExpires,
		"provider_username":        rec.ProviderUsername,
	}
}

// DeleteToken removes the token record, returning ErrNotFound when there
// was none.
func (s *PostgresStore) DeleteToken(ctx context.Context, userID string, provider domain.Provider) error {
	tag, err := s.pool.Exec(ctx, queryDeleteToken, userID, string(provider))
	if err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateAlert inserts a new price alert, filling in its id and created_at.
func (s *PostgresStore) CreateAlert(ctx context.Context, a *domain.PriceAlert) error {
	args := pgx.NamedArgs{
		"user_id":       a.UserID,
		"item_id":       a.ItemID,
		"item_name":     a.ItemName,
		"direction":     string(a.Direction),
		"target_price":  a.TargetPrice,
		"current_price": a.CurrentPrice,
	}
	if err := s.pool.QueryRow(ctx, queryInsertAlert, args).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("creating alert: %w", err)
	}
	return nil
}

// GetAlert retrieves one of a user's alerts.
func (s *PostgresStore) GetAlert(ctx context.Context, userID, id string) (*domain.PriceAlert, error) {
	a, err := scanAlert(s.pool.QueryRow(ctx, queryGetAlert, userID, id))
	if err != nil {
		return nil, notFound(err, "alert %s", id)
	}
	return a, nil
}

// ListAlerts queries alerts with optional filters, returning results and total count.
func (s *PostgresStore) ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.PriceAlert, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting alerts: %w", err)
	}

	alerts, err := s.queryAlerts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// ListActiveAlerts returns every alert that has not fired yet, across users.
func (s *PostgresStore) ListActiveAlerts(ctx context.Context) ([]domain.PriceAlert, error) {
	return s.queryAlerts(ctx, queryListActiveAlerts)
}

// UpdateAlertPrice records the latest observed price of an active alert.
func (s *PostgresStore) UpdateAlertPrice(ctx context.Context, id string, price float64) error {
	if _, err := s.pool.Exec(ctx, queryUpdateAlertPrice, id, price); err != nil {
		return fmt.Errorf("updating alert price: %w", err)
	}
	return nil
}

// MarkAlertTriggered sets triggered_at and freezes current_price. It only
// touches alerts that have not fired, and reports whether this call fired it.
func (s *PostgresStore) MarkAlertTriggered(
	ctx context.Context,
	id string,
	price float64,
	at time.Time,
) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryMarkAlertTriggered, id, price, at)
	if err != nil {
		return false, fmt.Errorf("marking alert triggered: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteAlert removes one of a user's alerts.
func (s *PostgresStore) DeleteAlert(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAlert, userID, id)
	if err != nil {
		return fmt.Errorf("deleting alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpsertInventoryItems writes drafts in one transaction, keyed by
// (user, source, source_id). It returns the number of rows written.
func (s *PostgresStore) UpsertInventoryItems(
	ctx context.Context,
	userID string,
	provider domain.Provider,
	items []domain.InventoryItemDraft,
) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range items {
		d := &items[i]
		batch.Queue(queryUpsertInventoryItem, pgx.NamedArgs{
			"user_id":         userID,
			"source":          string(provider),
			"source_id":       d.SourceID,
			"name":            d.Name,
			"card_number":     d.CardNumber,
			"set_name":        d.SetName,
			"grading_company": gradingCompany(d.GradingCompany),
			"grade":           d.Grade,
			"condition":       string(d.Condition),
			"quantity":        d.Quantity,
			"list_price":      d.ListPrice,
			"currency":        d.Currency,
			"image_url":       d.ImageURL,
			"source_url":      d.SourceURL,
			"needs_review":    d.NeedsReview,
			"review_reasons":  reasons(d.ReviewReasons),
		})
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("upserting inventory items: %w", err)
	}
	return len(items), nil
}

// UpsertSales writes sale drafts in one transaction, keyed by
// (user, source, order_id, line_item_id).
func (s *PostgresStore) UpsertSales(
	ctx context.Context,
	userID string,
	provider domain.Provider,
	sales []domain.SaleDraft,
) (int, error) {
	if len(sales) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range sales {
		d := &sales[i]
		var soldAt *time.Time
		if !d.SoldAt.IsZero() {
			t := d.SoldAt
			soldAt = &t
		}
		batch.Queue(queryUpsertSale, pgx.NamedArgs{
			"user_id":          userID,
			"source":           string(provider),
			"order_id":         d.OrderID,
			"line_item_id":     d.LineItemID,
			"name":             d.Name,
			"card_number":      d.CardNumber,
			"grading_company":  gradingCompany(d.GradingCompany),
			"grade":            d.Grade,
			"sale_price":       d.SalePrice,
			"shipping_charged": d.ShippingCharged,
			"fees":             d.Fees,
			"quantity":         d.Quantity,
			"currency":         d.Currency,
			"sold_at":          soldAt,
			"buyer_username":   d.BuyerUsername,
			"needs_review":     d.NeedsReview,
			"review_reasons":   reasons(d.ReviewReasons),
		})
	}

	if err := s.sendBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("upserting sales: %w", err)
	}
	return len(sales), nil
}

// GetPreference returns a stored preference or prefs.ErrNotFound.
func (s *PostgresStore) GetPreference(ctx context.Context, userID, key string) (*domain.Preference, error) {
	p := &domain.Preference{}
	err := s.pool.QueryRow(ctx, queryGetPreference, userID, key).Scan(
		&p.UserID, &p.Key, &p.Value, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("preference %q: %w", key, prefs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting preference: %w", err)
	}
	return p, nil
}

// SetPreference stores a JSON value.
func (s *PostgresStore) SetPreference(ctx context.Context, userID, key string, value json.RawMessage) error {
	if _, err := s.pool.Exec(ctx, querySetPreference, userID, key, value); err != nil {
		return fmt.Errorf("setting preference: %w", err)
	}
	return nil
}

// DeletePreference removes a key.
func (s *PostgresStore) DeletePreference(ctx context.Context, userID, key string) error {
	if _, err := s.pool.Exec(ctx, queryDeletePreference, userID, key); err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}
	return nil
}

// ListPreferences returns all of a user's preferences ordered by key.
func (s *PostgresStore) ListPreferences(ctx context.Context, userID string) ([]domain.Preference, error) {
	rows, err := s.pool.Query(ctx, queryListPreferences, userID)
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}
	defer rows.Close()

	var out []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.UserID, &p.Key, &p.Value, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating preferences: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) queryAlerts(ctx context.Context, sql string, args ...any) ([]domain.PriceAlert, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.PriceAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

func (s *PostgresStore) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for range batch.Len() {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return err
			}
		}
		return br.Close()
	})
}

func scanAlert(row pgx.Row) (*domain.PriceAlert, error) {
	a := &domain.PriceAlert{}
	var direction string
	if err := row.Scan(
		&a.ID, &a.UserID, &a.ItemID, &a.ItemName, &direction, &a.TargetPrice,
		&a.CurrentPrice, &a.CreatedAt, &a.TriggeredAt,
	); err != nil {
		return nil, err
	}
	a.Direction = domain.AlertDirection(direction)
	return a, nil
}

// notFound maps pgx.ErrNoRows to ErrNotFound and labels the error with what
// was being looked up.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("getting %s: %w", what, err)
}

func gradingCompany(c *domain.GradingCompany) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func reasons(r []string) []string {
	if r == nil {
		return []string{}
	}
	return r
}
