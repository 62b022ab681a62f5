package main

import "fmt"

type amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type itemSummary struct {
	ItemID        string   `json:"itemId"`
	Title         string   `json:"title"`
	Price         amount   `json:"price"`
	ItemWebURL    string   `json:"itemWebUrl"`
	Condition     string   `json:"condition"`
	BuyingOptions []string `json:"buyingOptions"`
}

type inventoryItem struct {
	SKU       string `json:"sku"`
	Condition string `json:"condition"`
	Product   struct {
		Title     string              `json:"title"`
		Aspects   map[string][]string `json:"aspects,omitempty"`
		ImageURLs []string            `json:"imageUrls,omitempty"`
	} `json:"product"`
	Availability struct {
		ShipToLocationAvailability struct {
			Quantity int `json:"quantity"`
		} `json:"shipToLocationAvailability"`
	} `json:"availability"`
}

type lineItem struct {
	LineItemID   string `json:"lineItemId"`
	LegacyItemID string `json:"legacyItemId"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	LineItemCost amount `json:"lineItemCost"`
}

type order struct {
	OrderID            string `json:"orderId"`
	CreationDate       string `json:"creationDate"`
	OrderPaymentStatus string `json:"orderPaymentStatus"`
	Buyer              struct {
		Username string `json:"username"`
	} `json:"buyer"`
	TotalMarketplaceFee amount     `json:"totalMarketplaceFee"`
	LineItems           []lineItem `json:"lineItems"`
}

// fixtures is the canned seller and marketplace data served by the mock.
type fixtures struct {
	Market    []itemSummary
	Inventory []inventoryItem
	Orders    []order
}

var cards = []struct {
	name  string
	price float64
}{
	{"Charizard ex 199/165 Special Illustration Rare", 212.50},
	{"Umbreon VMAX 215/203 Alt Art", 640.00},
	{"Lugia V 186/195 Alt Art", 189.99},
	{"Pikachu VMAX 188/185 Rainbow", 74.25},
	{"Giratina V 186/196 Alt Art", 329.00},
	{"Mew ex 232/091 Gold", 38.75},
}

var grades = []string{"", "PSA 10", "CGC 9.5", ""}

func defaultFixtures() fixtures {
	var f fixtures
	for i, c := range cards {
		for j, g := range grades {
			title := c.name
			if g != "" {
				title += " " + g
			}
			f.Market = append(f.Market, itemSummary{
				ItemID:        fmt.Sprintf("v1|1%05d%d|0", i, j),
				Title:         title,
				Price:         amount{Value: fmt.Sprintf("%.2f", c.price*float64(j+1)), Currency: "USD"},
				ItemWebURL:    fmt.Sprintf("https://www.ebay.com/itm/1%05d%d", i, j),
				Condition:     "Used",
				BuyingOptions: []string{"FIXED_PRICE"},
			})
		}

		var inv inventoryItem
		inv.SKU = fmt.Sprintf("CARD-%03d", i+1)
		inv.Condition = "USED_VERY_GOOD"
		inv.Product.Title = c.name
		inv.Product.Aspects = map[string][]string{"Game": {"Pokémon TCG"}}
		inv.Availability.ShipToLocationAvailability.Quantity = i%3 + 1
		f.Inventory = append(f.Inventory, inv)

		o := order{
			OrderID:             fmt.Sprintf("12-%05d-%05d", i, i*7),
			CreationDate:        fmt.Sprintf("2026-01-%02dT15:04:05.000Z", i+1),
			OrderPaymentStatus:  "PAID",
			TotalMarketplaceFee: amount{Value: fmt.Sprintf("%.2f", c.price*0.13), Currency: "USD"},
			LineItems: []lineItem{{
				LineItemID:   fmt.Sprintf("100%05d", i),
				LegacyItemID: fmt.Sprintf("2%09d", i),
				SKU:          inv.SKU,
				Title:        c.name,
				Quantity:     1,
				LineItemCost: amount{Value: fmt.Sprintf("%.2f", c.price), Currency: "USD"},
			}},
		}
		o.Buyer.Username = fmt.Sprintf("collector_%d", i)
		f.Orders = append(f.Orders, o)
	}
	return f
}
