package ebay

import (
	"math"
	"strconv"
	"strings"
	"time"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// ToNormalizedListings converts Sell Inventory items into provider-agnostic
// listings. Inventory items carry no price; that lives on the offer.
func ToNormalizedListings(items []InventoryItem) []domain.NormalizedListing {
	out := make([]domain.NormalizedListing, 0, len(items))
	for i := range items {
		out = append(out, toNormalizedListing(&items[i]))
	}
	return out
}

func toNormalizedListing(item *InventoryItem) domain.NormalizedListing {
	l := domain.NormalizedListing{
		SourceID:             item.SKU,
		Title:                item.Product.Title,
		Condition:            item.Condition,
		ConditionDescription: item.ConditionDescription,
		Quantity:             item.Availability.ShipToLocationAvailability.Quantity,
		Aspects:              item.Product.Aspects,
	}
	if len(item.Product.ImageURLs) > 0 {
		l.ImageURL = item.Product.ImageURLs[0]
	}
	return l
}

// ToNormalizedSoldItems flattens orders into one sold item per line item.
// The order's marketplace fee is split across line items in proportion to
// their cost.
func ToNormalizedSoldItems(orders []Order) []domain.NormalizedSoldItem {
	var out []domain.NormalizedSoldItem
	for i := range orders {
		out = append(out, orderToSoldItems(&orders[i])...)
	}
	return out
}

func orderToSoldItems(o *Order) []domain.NormalizedSoldItem {
	soldAt, _ := time.Parse(time.RFC3339, o.CreationDate) //nolint:errcheck // zero time flags review downstream

	var orderFee float64
	if o.TotalMarketplaceFee != nil {
		orderFee = parseAmount(o.TotalMarketplaceFee.Value)
	}

	var orderCost float64
	for i := range o.LineItems {
		orderCost += parseAmount(o.LineItems[i].LineItemCost.Value)
	}

	items := make([]domain.NormalizedSoldItem, 0, len(o.LineItems))
	for i := range o.LineItems {
		li := &o.LineItems[i]
		cost := parseAmount(li.LineItemCost.Value)

		item := domain.NormalizedSoldItem{
			OrderID:       o.OrderID,
			LineItemID:    li.LineItemID,
			SKU:           li.SKU,
			LegacyItemID:  li.LegacyItemID,
			Title:         li.Title,
			Quantity:      li.Quantity,
			SalePrice:     cost,
			Currency:      li.LineItemCost.Currency,
			SoldAt:        soldAt,
			BuyerUsername: o.Buyer.Username,
		}
		if li.DeliveryCost.ShippingCost != nil {
			item.ShippingCharged = parseAmount(li.DeliveryCost.ShippingCost.Value)
		}
		switch {
		case orderCost > 0:
			item.Fees = roundCents(orderFee * cost / orderCost)
		case len(o.LineItems) > 0:
			item.Fees = roundCents(orderFee / float64(len(o.LineItems)))
		}
		items = append(items, item)
	}
	return items
}

// ItemPrices returns the parsed prices of items in the given currency,
// skipping anything unparseable. An empty currency accepts all.
func ItemPrices(items []ItemSummary, currency string) []float64 {
	prices := make([]float64, 0, len(items))
	for i := range items {
		if currency != "" && !strings.EqualFold(items[i].Price.Currency, currency) {
			continue
		}
		p, err := strconv.ParseFloat(items[i].Price.Value, 64)
		if err != nil || p <= 0 {
			continue
		}
		prices = append(prices, p)
	}
	return prices
}

func parseAmount(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
