package ebay_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/internal/ebay"
	"github.com/donaldgifford/card-ledger/internal/ebay/mocks"
)

func summaries(values ...string) []ebay.ItemSummary {
	items := make([]ebay.ItemSummary, 0, len(values))
	for _, v := range values {
		items = append(items, ebay.ItemSummary{Price: ebay.Amount{Value: v, Currency: "USD"}})
	}
	return items
}

func TestMarketPricer_CurrentPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		itemID    string
		itemName  string
		wantQuery string
		items     []ebay.ItemSummary
		searchErr error
		want      float64
		wantIs    error
	}{
		{
			name:      "odd sample uses middle value",
			itemName:  "Charizard 4/102",
			wantQuery: "Charizard 4/102",
			items:     summaries("50.00", "45.00", "70.00"),
			want:      50.00,
		},
		{
			name:      "even sample averages middle values",
			itemName:  "Pikachu",
			wantQuery: "Pikachu",
			items:     summaries("10.00", "20.00", "30.00", "41.00"),
			want:      25.00,
		},
		{
			name:      "falls back to item id",
			itemID:    "sv3-125",
			wantQuery: "sv3-125",
			items:     summaries("5.00"),
			want:      5.00,
		},
		{
			name:      "no usable prices",
			itemName:  "Unknown",
			wantQuery: "Unknown",
			items:     summaries("abc"),
			wantIs:    ebay.ErrNoPriceData,
		},
		{
			name:      "search failure",
			itemName:  "Charizard",
			wantQuery: "Charizard",
			searchErr: ebay.ErrProviderUnavailable,
			wantIs:    ebay.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockEbayClient(t)
			call := client.EXPECT().
				Search(mock.Anything, mock.MatchedBy(func(req ebay.SearchRequest) bool {
					return req.Query == tt.wantQuery && req.Limit == 5
				})).
				Once()
			if tt.searchErr != nil {
				call.Return(nil, tt.searchErr)
			} else {
				call.Return(&ebay.SearchResponse{Items: tt.items}, nil)
			}

			pricer := ebay.NewMarketPricer(client, ebay.WithSampleSize(5))

			got, err := pricer.CurrentPrice(context.Background(), tt.itemID, tt.itemName)
			if tt.wantIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantIs))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestMarketPricer_EmptyReference(t *testing.T) {
	t.Parallel()

	pricer := ebay.NewMarketPricer(mocks.NewMockEbayClient(t))

	_, err := pricer.CurrentPrice(context.Background(), " ", "")
	require.ErrorIs(t, err, ebay.ErrNoPriceData)
}
