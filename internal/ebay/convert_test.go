package ebay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/ebay"
)

func TestToNormalizedListings(t *testing.T) {
	t.Parallel()

	t.Run("empty input returns empty slice", func(t *testing.T) {
		t.Parallel()

		got := ebay.ToNormalizedListings(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("complete item converts all fields", func(t *testing.T) {
		t.Parallel()

		item := ebay.InventoryItem{
			SKU:                  "CHZ-4-102",
			Condition:            "USED_VERY_GOOD",
			ConditionDescription: "Light edge wear",
			Product: ebay.InventoryProduct{
				Title: "Charizard 4/102 Base Set Holo",
				Aspects: map[string][]string{
					"Card Name": {"Charizard"},
					"Set":       {"Base Set"},
				},
				ImageURLs: []string{"https://i.ebayimg.com/1.jpg", "https://i.ebayimg.com/2.jpg"},
			},
		}
		item.Availability.ShipToLocationAvailability.Quantity = 2

		got := ebay.ToNormalizedListings([]ebay.InventoryItem{item})
		require.Len(t, got, 1)

		l := got[0]
		assert.Equal(t, "CHZ-4-102", l.SourceID)
		assert.Equal(t, "Charizard 4/102 Base Set Holo", l.Title)
		assert.Equal(t, "USED_VERY_GOOD", l.Condition)
		assert.Equal(t, "Light edge wear", l.ConditionDescription)
		assert.Equal(t, 2, l.Quantity)
		assert.Equal(t, "https://i.ebayimg.com/1.jpg", l.ImageURL)
		assert.Equal(t, []string{"Base Set"}, l.Aspects["Set"])
		assert.Nil(t, l.Price)
	})

	t.Run("item without images", func(t *testing.T) {
		t.Parallel()

		got := ebay.ToNormalizedListings([]ebay.InventoryItem{{SKU: "X"}})
		require.Len(t, got, 1)
		assert.Empty(t, got[0].ImageURL)
		assert.Zero(t, got[0].Quantity)
	})
}

func TestToNormalizedSoldItems(t *testing.T) {
	t.Parallel()

	order := ebay.Order{
		OrderID:             "12-34567-89012",
		CreationDate:        "2026-09-01T15:04:05.000Z",
		Buyer:               ebay.OrderBuyer{Username: "collector99"},
		TotalMarketplaceFee: &ebay.Amount{Value: "13.00", Currency: "USD"},
		LineItems: []ebay.LineItem{
			{
				LineItemID:   "li-1",
				LegacyItemID: "1234",
				SKU:          "CHZ-4-102",
				Title:        "PSA 9 Charizard 4/102",
				Quantity:     1,
				LineItemCost: ebay.Amount{Value: "75.00", Currency: "USD"},
			},
			{
				LineItemID:   "li-2",
				Title:        "Pikachu 58/102",
				Quantity:     2,
				LineItemCost: ebay.Amount{Value: "25.00", Currency: "USD"},
			},
		},
	}
	order.LineItems[0].DeliveryCost.ShippingCost = &ebay.Amount{Value: "4.50", Currency: "USD"}

	got := ebay.ToNormalizedSoldItems([]ebay.Order{order})
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "12-34567-89012", first.OrderID)
	assert.Equal(t, "li-1", first.LineItemID)
	assert.Equal(t, "CHZ-4-102", first.SKU)
	assert.Equal(t, "1234", first.LegacyItemID)
	assert.Equal(t, "collector99", first.BuyerUsername)
	assert.Equal(t, "USD", first.Currency)
	assert.InDelta(t, 75.00, first.SalePrice, 0.001)
	assert.InDelta(t, 4.50, first.ShippingCharged, 0.001)
	assert.InDelta(t, 9.75, first.Fees, 0.001)
	assert.Equal(t, time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC), first.SoldAt.UTC())

	second := got[1]
	assert.Equal(t, 2, second.Quantity)
	assert.Zero(t, second.ShippingCharged)
	assert.InDelta(t, 3.25, second.Fees, 0.001)
}

func TestToNormalizedSoldItems_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		orders   []ebay.Order
		wantLen  int
		wantFees []float64
	}{
		{
			name:    "no orders",
			wantLen: 0,
		},
		{
			name:    "order without line items",
			orders:  []ebay.Order{{OrderID: "o-1"}},
			wantLen: 0,
		},
		{
			name: "zero cost splits fee evenly",
			orders: []ebay.Order{{
				OrderID:             "o-2",
				TotalMarketplaceFee: &ebay.Amount{Value: "1.00"},
				LineItems: []ebay.LineItem{
					{LineItemID: "a", LineItemCost: ebay.Amount{Value: "0"}},
					{LineItemID: "b", LineItemCost: ebay.Amount{Value: "0"}},
				},
			}},
			wantLen:  2,
			wantFees: []float64{0.5, 0.5},
		},
		{
			name: "no fee reported",
			orders: []ebay.Order{{
				OrderID:   "o-3",
				LineItems: []ebay.LineItem{{LineItemID: "a", LineItemCost: ebay.Amount{Value: "10.00"}}},
			}},
			wantLen:  1,
			wantFees: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ebay.ToNormalizedSoldItems(tt.orders)
			require.Len(t, got, tt.wantLen)
			for i, want := range tt.wantFees {
				assert.InDelta(t, want, got[i].Fees, 0.001)
			}
		})
	}
}

func TestToNormalizedSoldItems_BadDateLeavesZeroTime(t *testing.T) {
	t.Parallel()

	got := ebay.ToNormalizedSoldItems([]ebay.Order{{
		OrderID:      "o-1",
		CreationDate: "yesterday",
		LineItems:    []ebay.LineItem{{LineItemID: "a", LineItemCost: ebay.Amount{Value: "1.00"}}},
	}})
	require.Len(t, got, 1)
	assert.True(t, got[0].SoldAt.IsZero())
}

func TestItemPrices(t *testing.T) {
	t.Parallel()

	items := []ebay.ItemSummary{
		{Price: ebay.Amount{Value: "10.00", Currency: "USD"}},
		{Price: ebay.Amount{Value: "12.50", Currency: "usd"}},
		{Price: ebay.Amount{Value: "9.00", Currency: "GBP"}},
		{Price: ebay.Amount{Value: "not-a-number", Currency: "USD"}},
		{Price: ebay.Amount{Value: "0", Currency: "USD"}},
	}

	assert.Equal(t, []float64{10.00, 12.50}, ebay.ItemPrices(items, "USD"))
	assert.Equal(t, []float64{10.00, 12.50, 9.00}, ebay.ItemPrices(items, ""))
	assert.Empty(t, ebay.ItemPrices(nil, "USD"))
}
