package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/api/handlers"
	"github.com/donaldgifford/card-ledger/internal/api/handlers/mocks"
	"github.com/donaldgifford/card-ledger/internal/engine"
	"github.com/donaldgifford/card-ledger/internal/store"
	storeMocks "github.com/donaldgifford/card-ledger/internal/store/mocks"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func newAlertAPI(t *testing.T, ms *storeMocks.MockStore, mc *mocks.MockAlertChecker) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterAlertRoutes(api, handlers.NewAlertHandler(ms, mc))
	return api
}

func TestAlertHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns alerts with defaults",
			path: "/api/v1/users/u1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.MatchedBy(func(q *store.AlertQuery) bool {
						return *q.UserID == "u1" && q.Limit == 50 && q.Offset == 0 &&
							q.Status == store.AlertStatusAny
					})).
					Return([]domain.PriceAlert{{ID: "a1", ItemName: "Umbreon VMAX"}}, 3, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"has_more":true`,
		},
		{
			name: "status filter and paging",
			path: "/api/v1/users/u1/alerts?status=triggered&limit=10&offset=10",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAlerts(mock.Anything, mock.MatchedBy(func(q *store.AlertQuery) bool {
						return q.Status == store.AlertStatusTriggered && q.Limit == 10 && q.Offset == 10
					})).
					Return(nil, 10, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"alerts":[]`,
		},
		{
			name:       "invalid status returns 422",
			path:       "/api/v1/users/u1/alerts?status=snoozed",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/users/u1/alerts",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListAlerts(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing alerts`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newAlertAPI(t, ms, mocks.NewMockAlertChecker(t)).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertHandler_Create(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "creates alert",
			body: map[string]any{
				"item_id":      "swsh7-215",
				"item_name":    "Umbreon VMAX 215/203",
				"direction":    "below",
				"target_price": 400,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateAlert(mock.Anything, mock.MatchedBy(func(a *domain.PriceAlert) bool {
						return a.UserID == "u1" && a.Direction == domain.DirectionBelow &&
							a.TargetPrice == 400 && a.TriggeredAt == nil
					})).
					RunAndReturn(func(_ context.Context, a *domain.PriceAlert) error {
						a.ID = "a-new"
						a.CreatedAt = created
						return nil
					}).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"a-new"`,
		},
		{
			name: "invalid direction returns 422",
			body: map[string]any{
				"item_id":      "x",
				"item_name":    "x",
				"direction":    "sideways",
				"target_price": 1,
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "negative target returns 422",
			body: map[string]any{
				"item_id":      "x",
				"item_name":    "x",
				"direction":    "above",
				"target_price": -1,
			},
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			body: map[string]any{
				"item_id":      "x",
				"item_name":    "x",
				"direction":    "above",
				"target_price": 1,
			},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateAlert(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `creating alert`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newAlertAPI(t, ms, mocks.NewMockAlertChecker(t)).Post("/api/v1/users/u1/alerts", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestAlertHandler_Delete(t *testing.T) {
	t.Parallel()

	const alertID = "5f0c7a4e-2b1d-4c8e-9a3f-6d2e1b7c9f01"

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", err: fmt.Errorf("alert %s: %w", alertID, store.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "store error", err: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().DeleteAlert(mock.Anything, "u1", alertID).Return(tt.err).Once()

			resp := newAlertAPI(t, ms, mocks.NewMockAlertChecker(t)).Delete("/api/v1/users/u1/alerts/" + alertID)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestAlertHandler_DeleteRejectsMalformedID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"a1", "not-a-uuid", "5f0c7a4e-2b1d-4c8e-9a3f"} {
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)

			resp := newAlertAPI(t, ms, mocks.NewMockAlertChecker(t)).Delete("/api/v1/users/u1/alerts/" + id)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			ms.AssertNotCalled(t, "DeleteAlert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAlertHandler_Check(t *testing.T) {
	t.Parallel()

	t.Run("returns summary", func(t *testing.T) {
		t.Parallel()

		mc := mocks.NewMockAlertChecker(t)
		mc.EXPECT().
			RunAlertCheck(mock.Anything).
			Return(&engine.AlertCheckResult{Checked: 4, Priced: 3, Triggered: 1, Notified: 1}, nil).
			Once()

		resp := newAlertAPI(t, storeMocks.NewMockStore(t), mc).Post("/api/v1/alerts/check")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"triggered":1`)
		assert.Contains(t, resp.Body.String(), `"checked":4`)
	})

	t.Run("failure returns 500", func(t *testing.T) {
		t.Parallel()

		mc := mocks.NewMockAlertChecker(t)
		mc.EXPECT().RunAlertCheck(mock.Anything).Return(nil, errors.New("listing active alerts: db down")).Once()

		resp := newAlertAPI(t, storeMocks.NewMockStore(t), mc).Post("/api/v1/alerts/check")
		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "alert check failed")
	})
}
