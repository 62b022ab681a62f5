//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/card-ledger/internal/store"
	"github.com/donaldgifford/card-ledger/pkg/prefs"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("card_ledger_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func ptr[T any](v T) *T { return &v }

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_Users(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := &domain.User{ID: "user-1", Email: "ash@example.com"}
	require.NoError(t, s.UpsertUser(ctx, u))
	assert.False(t, u.CreatedAt.IsZero())

	u.Email = "ash@pallet.town"
	require.NoError(t, s.UpsertUser(ctx, u))

	got, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "ash@pallet.town", got.Email)

	_, err = s.GetUser(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_Tokens(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
	require.ErrorIs(t, err, store.ErrNotFound)

	rec := domain.TokenRecord{
		UserID:               "user-1",
		Provider:             domain.ProviderEbay,
		AccessToken:          "access-1",
		AccessTokenExpiresAt: now.Add(2 * time.Hour),
		RefreshToken:         "refresh-1",
		ProviderUsername:     "pallet_cards",
	}
	require.NoError(t, s.UpsertToken(ctx, rec))

	got, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.True(t, got.AccessTokenExpiresAt.Equal(rec.AccessTokenExpiresAt))
	assert.True(t, got.RefreshTokenExpiresAt.IsZero())
	assert.Equal(t, "pallet_cards", got.ProviderUsername)

	t.Run("refresh keeps username and records rotation", func(t *testing.T) {
		updated := *got
		updated.AccessToken = "access-2"
		updated.RefreshToken = "refresh-2"
		updated.RefreshTokenExpiresAt = now.Add(365 * 24 * time.Hour)
		updated.ProviderUsername = ""
		require.NoError(t, s.UpdateToken(ctx, updated))

		again, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
		require.NoError(t, err)
		assert.Equal(t, "access-2", again.AccessToken)
		assert.Equal(t, "refresh-2", again.RefreshToken)
		assert.True(t, again.RefreshTokenExpiresAt.Equal(updated.RefreshTokenExpiresAt))
		assert.Equal(t, "pallet_cards", again.ProviderUsername)
	})

	t.Run("reconnect overwrites username", func(t *testing.T) {
		reconnect := rec
		reconnect.AccessToken = "access-3"
		reconnect.ProviderUsername = "vintage_vault"
		require.NoError(t, s.UpsertToken(ctx, reconnect))

		again, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
		require.NoError(t, err)
		assert.Equal(t, "access-3", again.AccessToken)
		assert.Equal(t, "vintage_vault", again.ProviderUsername)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteToken(ctx, "user-1", domain.ProviderEbay))
		require.ErrorIs(t, s.DeleteToken(ctx, "user-1", domain.ProviderEbay), store.ErrNotFound)

		_, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("refresh after delete does not recreate record", func(t *testing.T) {
		late := rec
		late.AccessToken = "late-access"
		late.RefreshToken = "late-refresh"
		require.ErrorIs(t, s.UpdateToken(ctx, late), store.ErrNotFound)

		_, err := s.GetToken(ctx, "user-1", domain.ProviderEbay)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_Alerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	a := &domain.PriceAlert{
		UserID:       "user-1",
		ItemID:       "base1-4",
		ItemName:     "Charizard Base Set",
		Direction:    domain.DirectionBelow,
		TargetPrice:  50,
		CurrentPrice: ptr(60.0),
	}
	require.NoError(t, s.CreateAlert(ctx, a))
	assert.NotEmpty(t, a.ID)

	other := &domain.PriceAlert{
		UserID:      "user-2",
		ItemID:      "base1-58",
		Direction:   domain.DirectionAbove,
		TargetPrice: 10,
	}
	require.NoError(t, s.CreateAlert(ctx, other))

	active, err := s.ListActiveAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, s.UpdateAlertPrice(ctx, a.ID, 55))
	got, err := s.GetAlert(ctx, "user-1", a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentPrice)
	assert.InDelta(t, 55, *got.CurrentPrice, 0.001)
	assert.Equal(t, domain.DirectionBelow, got.Direction)

	at := time.Now().UTC().Truncate(time.Microsecond)
	fired, err := s.MarkAlertTriggered(ctx, a.ID, 45, at)
	require.NoError(t, err)
	assert.True(t, fired)

	t.Run("triggering is monotonic", func(t *testing.T) {
		fired, err := s.MarkAlertTriggered(ctx, a.ID, 40, at.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, fired)

		require.NoError(t, s.UpdateAlertPrice(ctx, a.ID, 30))

		got, err := s.GetAlert(ctx, "user-1", a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.TriggeredAt)
		assert.True(t, got.TriggeredAt.Equal(at))
		assert.InDelta(t, 45, *got.CurrentPrice, 0.001)
	})

	t.Run("list with filters", func(t *testing.T) {
		alerts, total, err := s.ListAlerts(ctx, &store.AlertQuery{
			UserID: ptr("user-1"),
			Status: store.AlertStatusTriggered,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, alerts, 1)
		assert.Equal(t, a.ID, alerts[0].ID)

		active, err := s.ListActiveAlerts(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, other.ID, active[0].ID)
	})

	t.Run("delete is scoped to the owner", func(t *testing.T) {
		err := s.DeleteAlert(ctx, "user-2", a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, s.DeleteAlert(ctx, "user-1", a.ID))
		_, err = s.GetAlert(ctx, "user-1", a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_UpsertInventoryItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	psa := domain.GraderPSA
	items := []domain.InventoryItemDraft{
		{
			SourceID:       "CHZ-4-102",
			Name:           "Charizard Base Set Holo",
			CardNumber:     "4/102",
			GradingCompany: &psa,
			Grade:          ptr("10"),
			Condition:      domain.ConditionMint,
			Quantity:       1,
			Currency:       "USD",
		},
		{
			SourceID:      "PIK-58-102",
			Name:          "Pikachu",
			Condition:     domain.ConditionNearMint,
			Quantity:      1,
			NeedsReview:   true,
			ReviewReasons: []string{"condition_unrecognized"},
		},
	}

	n, err := s.UpsertInventoryItems(ctx, "user-1", domain.ProviderEbay, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items[1].Quantity = 4
	n, err = s.UpsertInventoryItems(ctx, "user-1", domain.ProviderEbay, items)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.UpsertInventoryItems(ctx, "user-1", domain.ProviderEbay, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostgresStore_UpsertSales(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	sales := []domain.SaleDraft{
		{
			OrderID:    "12-34567-89012",
			LineItemID: "10000000001",
			Name:       "Charizard",
			SalePrice:  50,
			Fees:       6.5,
			Quantity:   1,
			Currency:   "USD",
			SoldAt:     time.Now().UTC(),
		},
		{
			OrderID:       "12-34567-89012",
			LineItemID:    "10000000002",
			NeedsReview:   true,
			ReviewReasons: []string{"missing_title", "missing_price"},
			Quantity:      1,
		},
	}

	n, err := s.UpsertSales(ctx, "user-1", domain.ProviderEbay, sales)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.UpsertSales(ctx, "user-1", domain.ProviderEbay, sales)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPostgresStore_Preferences(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	_, err := s.GetPreference(ctx, "user-1", "onboarding.done")
	require.ErrorIs(t, err, prefs.ErrNotFound)

	require.NoError(t, s.SetPreference(ctx, "user-1", "onboarding.done", json.RawMessage(`true`)))
	require.NoError(t, s.SetPreference(ctx, "user-1", "tips.dismissed", json.RawMessage(`["grading"]`)))
	require.NoError(t, s.SetPreference(ctx, "user-1", "onboarding.done", json.RawMessage(`false`)))

	got, err := s.GetPreference(ctx, "user-1", "onboarding.done")
	require.NoError(t, err)
	assert.JSONEq(t, `false`, string(got.Value))

	list, err := s.ListPreferences(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "onboarding.done", list[0].Key)
	assert.Equal(t, "tips.dismissed", list[1].Key)

	svc := prefs.NewService(s)
	var tips []string
	ok, err := prefs.Load(ctx, svc, "user-1", "tips.dismissed", &tips)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"grading"}, tips)

	require.NoError(t, s.DeletePreference(ctx, "user-1", "onboarding.done"))
	_, err = s.GetPreference(ctx, "user-1", "onboarding.done")
	require.ErrorIs(t, err, prefs.ErrNotFound)
}
