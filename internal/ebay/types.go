package ebay

// ItemSummary represents a single item from the eBay Browse API search response.
type ItemSummary struct {
	ItemID        string         `json:"itemId"`
	Title         string         `json:"title"`
	Price         Amount         `json:"price"`
	ItemWebURL    string         `json:"itemWebUrl"`
	Image         *ItemImage     `json:"image,omitempty"`
	Condition     string         `json:"condition"`
	ConditionID   string         `json:"conditionId"`
	BuyingOptions []string       `json:"buyingOptions"`
	Categories    []ItemCategory `json:"categories,omitempty"`
}

// Amount holds an eBay monetary value. eBay sends the value as a string.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ItemImage holds eBay image information.
type ItemImage struct {
	ImageURL string `json:"imageUrl"`
}

// ItemCategory holds eBay category information.
type ItemCategory struct {
	CategoryID string `json:"categoryId"`
}

// inventoryItemsResponse is the Sell Inventory getInventoryItems payload.
type inventoryItemsResponse struct {
	Href           string          `json:"href"`
	Limit          int             `json:"limit"`
	Next           string          `json:"next"`
	Size           int             `json:"size"`
	Total          int             `json:"total"`
	InventoryItems []InventoryItem `json:"inventoryItems"`
}

// InventoryItem is one SKU from the Sell Inventory API.
type InventoryItem struct {
	SKU                  string                `json:"sku"`
	Locale               string                `json:"locale"`
	Condition            string                `json:"condition"`
	ConditionDescription string                `json:"conditionDescription"`
	Product              InventoryProduct      `json:"product"`
	Availability         InventoryAvailability `json:"availability"`
}

// InventoryProduct holds the product details of an inventory item.
type InventoryProduct struct {
	Title     string              `json:"title"`
	Aspects   map[string][]string `json:"aspects"`
	ImageURLs []string            `json:"imageUrls"`
}

// InventoryAvailability holds stock levels.
type InventoryAvailability struct {
	ShipToLocationAvailability struct {
		Quantity int `json:"quantity"`
	} `json:"shipToLocationAvailability"`
}

// ordersResponse is the Sell Fulfillment getOrders payload.
type ordersResponse struct {
	Href   string  `json:"href"`
	Limit  int     `json:"limit"`
	Next   string  `json:"next"`
	Offset int     `json:"offset"`
	Total  int     `json:"total"`
	Orders []Order `json:"orders"`
}

// Order is one Sell Fulfillment order.
type Order struct {
	OrderID             string     `json:"orderId"`
	CreationDate        string     `json:"creationDate"`
	OrderPaymentStatus  string     `json:"orderPaymentStatus"`
	Buyer               OrderBuyer `json:"buyer"`
	TotalMarketplaceFee *Amount    `json:"totalMarketplaceFee,omitempty"`
	LineItems           []LineItem `json:"lineItems"`
}

// OrderBuyer identifies the buyer.
type OrderBuyer struct {
	Username string `json:"username"`
}

// LineItem is one purchased listing within an order.
type LineItem struct {
	LineItemID   string `json:"lineItemId"`
	LegacyItemID string `json:"legacyItemId"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	LineItemCost Amount `json:"lineItemCost"`
	DeliveryCost struct {
		ShippingCost *Amount `json:"shippingCost,omitempty"`
	} `json:"deliveryCost"`
}
