package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/metrics"
	"github.com/donaldgifford/card-ledger/internal/notify"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func priceAlert(id, userID, itemID string, dir domain.AlertDirection, target float64) domain.PriceAlert {
	current := 60.0
	return domain.PriceAlert{
		ID:           id,
		UserID:       userID,
		ItemID:       itemID,
		ItemName:     "Card " + itemID,
		Direction:    dir,
		TargetPrice:  target,
		CurrentPrice: &current,
		CreatedAt:    testNow.AddDate(0, 0, -7),
	}
}

func TestRunAlertCheck_NoActiveAlerts(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)
	d.store.EXPECT().ListActiveAlerts(mock.Anything).Return(nil, nil).Once()

	res, err := eng.RunAlertCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &AlertCheckResult{}, res)
}

func TestRunAlertCheck_ListFails(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)
	d.store.EXPECT().ListActiveAlerts(mock.Anything).Return(nil, errors.New("pool closed")).Once()

	_, err := eng.RunAlertCheck(context.Background())
	require.EqualError(t, err, "listing active alerts: pool closed")
}

func TestRunAlertCheck_TriggersUpdatesAndNotifies(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)

	active := []domain.PriceAlert{
		priceAlert("a1", "user-1", "base1-4", domain.DirectionBelow, 50),
		priceAlert("a2", "user-1", "base1-4", domain.DirectionAbove, 100),
		priceAlert("a3", "user-2", "neo1-9", domain.DirectionBelow, 200),
		priceAlert("a4", "user-2", "gym1-2", domain.DirectionAbove, 10),
	}
	d.store.EXPECT().ListActiveAlerts(mock.Anything).Return(active, nil).Once()

	d.prices.EXPECT().CurrentPrice(mock.Anything, "base1-4", "Card base1-4").Return(45.0, nil).Once()
	d.prices.EXPECT().
		CurrentPrice(mock.Anything, "neo1-9", "Card neo1-9").
		Return(0.0, fmt.Errorf("pricing %q: %w", "Card neo1-9", ebay.ErrNoPriceData)).
		Once()
	d.prices.EXPECT().
		CurrentPrice(mock.Anything, "gym1-2", "Card gym1-2").
		Return(0.0, ebay.ErrProviderUnavailable).
		Once()

	d.store.EXPECT().UpdateAlertPrice(mock.Anything, "a2", 45.0).Return(nil).Once()
	d.store.EXPECT().MarkAlertTriggered(mock.Anything, "a1", 45.0, testNow).Return(true, nil).Once()
	d.store.EXPECT().
		GetUser(mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "ash@example.com"}, nil).
		Once()

	d.notifier.EXPECT().
		NotifyPriceAlert(mock.Anything, mock.MatchedBy(func(n notify.PriceAlertNotification) bool {
			return n.Recipient == "ash@example.com" &&
				n.Alert.ID == "a1" &&
				n.Alert.CurrentPrice != nil && *n.Alert.CurrentPrice == 45.0 &&
				n.Alert.TriggeredAt != nil && n.Alert.TriggeredAt.Equal(testNow)
		})).
		Return(nil).
		Once()

	firedBefore := ptestutil.ToFloat64(metrics.AlertsFiredTotal)
	lookupBefore := ptestutil.ToFloat64(metrics.PriceLookupFailuresTotal)

	res, err := eng.RunAlertCheck(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &AlertCheckResult{
		Checked:   4,
		Priced:    1,
		Updated:   1,
		Triggered: 1,
		Notified:  1,
	}, res)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.AlertsFiredTotal)-firedBefore, 1.0)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.PriceLookupFailuresTotal)-lookupBefore, 1.0)

	// The input alerts are untouched.
	assert.Nil(t, active[0].TriggeredAt)
	assert.InDelta(t, 60.0, *active[0].CurrentPrice, 0.001)
}

func TestRunAlertCheck_AlreadyTriggeredElsewhere(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)

	d.store.EXPECT().
		ListActiveAlerts(mock.Anything).
		Return([]domain.PriceAlert{priceAlert("a1", "user-1", "base1-4", domain.DirectionBelow, 50)}, nil).
		Once()
	d.prices.EXPECT().CurrentPrice(mock.Anything, "base1-4", mock.Anything).Return(40.0, nil).Once()
	d.store.EXPECT().MarkAlertTriggered(mock.Anything, "a1", 40.0, testNow).Return(false, nil).Once()

	res, err := eng.RunAlertCheck(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Triggered)
	assert.Zero(t, res.Notified)
}

func TestRunAlertCheck_NotificationFailureDoesNotFailPass(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)

	d.store.EXPECT().
		ListActiveAlerts(mock.Anything).
		Return([]domain.PriceAlert{
			priceAlert("a1", "user-1", "base1-4", domain.DirectionBelow, 50),
			priceAlert("a2", "user-1", "base1-2", domain.DirectionBelow, 50),
			priceAlert("a3", "user-9", "base1-3", domain.DirectionBelow, 50),
		}, nil).
		Once()
	d.prices.EXPECT().CurrentPrice(mock.Anything, mock.Anything, mock.Anything).Return(10.0, nil).Times(3)
	d.store.EXPECT().MarkAlertTriggered(mock.Anything, mock.Anything, 10.0, testNow).Return(true, nil).Times(3)

	d.store.EXPECT().
		GetUser(mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "ash@example.com"}, nil).
		Once()
	d.store.EXPECT().
		GetUser(mock.Anything, "user-9").
		Return(nil, errors.New("not found")).
		Once()

	d.notifier.EXPECT().
		NotifyPriceAlert(mock.Anything, mock.MatchedBy(func(n notify.PriceAlertNotification) bool {
			return n.Alert.ID == "a1"
		})).
		Return(errors.New("email function returned 502")).
		Once()
	d.notifier.EXPECT().
		NotifyPriceAlert(mock.Anything, mock.MatchedBy(func(n notify.PriceAlertNotification) bool {
			return n.Alert.ID == "a2"
		})).
		Return(nil).
		Once()

	failuresBefore := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	res, err := eng.RunAlertCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Triggered)
	assert.Equal(t, 1, res.Notified)
	assert.Equal(t, 2, res.NotifyFailures)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.NotificationFailuresTotal)-failuresBefore, 2.0)
}

func TestRunAlertCheck_PersistFailuresAreSkipped(t *testing.T) {
	t.Parallel()

	eng, d := newTestEngine(t)

	d.store.EXPECT().
		ListActiveAlerts(mock.Anything).
		Return([]domain.PriceAlert{
			priceAlert("a1", "user-1", "base1-4", domain.DirectionBelow, 50),
			priceAlert("a2", "user-1", "base1-2", domain.DirectionBelow, 5),
		}, nil).
		Once()
	d.prices.EXPECT().CurrentPrice(mock.Anything, mock.Anything, mock.Anything).Return(20.0, nil).Times(2)
	d.store.EXPECT().MarkAlertTriggered(mock.Anything, "a1", 20.0, testNow).Return(false, errors.New("timeout")).Once()
	d.store.EXPECT().UpdateAlertPrice(mock.Anything, "a2", 20.0).Return(errors.New("timeout")).Once()

	res, err := eng.RunAlertCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Priced)
	assert.Zero(t, res.Updated)
	assert.Zero(t, res.Triggered)
}
