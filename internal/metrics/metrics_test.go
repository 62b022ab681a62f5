package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPPanicsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, TokenRefreshesTotal)
	assert.NotNil(t, TokenRefreshDuration)
	assert.NotNil(t, TokensRevokedTotal)
	assert.NotNil(t, ImportItemsTotal)
	assert.NotNil(t, ImportNeedsReviewTotal)
	assert.NotNil(t, ImportErrorsTotal)
	assert.NotNil(t, ImportDuration)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayAPIRetriesTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
	assert.NotNil(t, CatalogRequestsTotal)
	assert.NotNil(t, AlertChecksTotal)
	assert.NotNil(t, AlertCheckDuration)
	assert.NotNil(t, AlertsFiredTotal)
	assert.NotNil(t, PriceLookupFailuresTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, SchedulerNextAlertCheckTimestamp)
}

func TestTokenRefreshesTotal_Labels(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(TokenRefreshesTotal.WithLabelValues("metrics_test"))
	TokenRefreshesTotal.WithLabelValues("metrics_test").Inc()
	after := testutil.ToFloat64(TokenRefreshesTotal.WithLabelValues("metrics_test"))

	assert.InDelta(t, 1.0, after-before, 0.001)
}
