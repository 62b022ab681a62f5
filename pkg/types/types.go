// Package domain defines the core business types for card-ledger.
package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Provider identifies a third-party marketplace a user can connect.
type Provider string

// Provider constants.
const (
	ProviderEbay Provider = "ebay"
)

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	return p == ProviderEbay
}

// User is the minimal view of an account this service needs. Accounts are
// owned by the hosted backend.
type User struct {
	ID        string    `json:"id"         db:"id"`
	Email     string    `json:"email"      db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TokenRecord holds a user's OAuth credentials for one provider. There is at
// most one record per (user, provider). RefreshTokenExpiresAt is zero when the
// provider never reported it.
type TokenRecord struct {
	UserID                string    `json:"user_id"                            db:"user_id"`
	Provider              Provider  `json:"provider"                           db:"provider"`
	AccessToken           string    `json:"-"                                  db:"access_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"            db:"access_token_expires_at"`
	RefreshToken          string    `json:"-"                                  db:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitzero"  db:"refresh_token_expires_at"`
	ProviderUsername      string    `json:"provider_username,omitempty"        db:"provider_username"`
	UpdatedAt             time.Time `json:"updated_at"                         db:"updated_at"`
}

// AlertDirection is the side of the target price an alert fires on.
type AlertDirection string

// Alert direction constants.
const (
	DirectionAbove AlertDirection = "above"
	DirectionBelow AlertDirection = "below"
)

// Valid reports whether d is a known direction.
func (d AlertDirection) Valid() bool {
	return d == DirectionAbove || d == DirectionBelow
}

// PriceAlert fires once when an item's market price crosses TargetPrice.
// TriggeredAt is nil until it fires; after that the alert is terminal.
type PriceAlert struct {
	ID           string         `json:"id"                      db:"id"`
	UserID       string         `json:"user_id"                 db:"user_id"`
	ItemID       string         `json:"item_id"                 db:"item_id"`
	ItemName     string         `json:"item_name"               db:"item_name"`
	Direction    AlertDirection `json:"direction"               db:"direction"`
	TargetPrice  float64        `json:"target_price"            db:"target_price"`
	CurrentPrice *float64       `json:"current_price,omitempty" db:"current_price"`
	CreatedAt    time.Time      `json:"created_at"              db:"created_at"`
	TriggeredAt  *time.Time     `json:"triggered_at,omitempty"  db:"triggered_at"`
}

// Triggered reports whether the alert has already fired.
func (a PriceAlert) Triggered() bool {
	return a.TriggeredAt != nil
}

// Condition is the normalized raw-card condition.
type Condition string

// Condition constants.
const (
	ConditionMint             Condition = "mint"
	ConditionNearMint         Condition = "near_mint"
	ConditionLightlyPlayed    Condition = "lightly_played"
	ConditionModeratelyPlayed Condition = "moderately_played"
	ConditionHeavilyPlayed    Condition = "heavily_played"
	ConditionDamaged          Condition = "damaged"
)

// Conditions lists every valid condition from best to worst.
var Conditions = []Condition{
	ConditionMint,
	ConditionNearMint,
	ConditionLightlyPlayed,
	ConditionModeratelyPlayed,
	ConditionHeavilyPlayed,
	ConditionDamaged,
}

// Valid reports whether c is one of the fixed conditions.
func (c Condition) Valid() bool {
	return slices.Contains(Conditions, c)
}

// GradingCompany is a professional card grading service.
type GradingCompany string

// Grading company constants.
const (
	GraderPSA GradingCompany = "PSA"
	GraderBGS GradingCompany = "BGS"
	GraderCGC GradingCompany = "CGC"
	GraderSGC GradingCompany = "SGC"
)

// Grading is a grading company plus the grade it assigned, e.g. PSA "10".
type Grading struct {
	Company GradingCompany `json:"company"`
	Grade   string         `json:"grade"`
}

// NormalizedListing is an active provider listing before mapping.
type NormalizedListing struct {
	SourceID             string              `json:"source_id"`
	Title                string              `json:"title"`
	Condition            string              `json:"condition,omitempty"`
	ConditionDescription string              `json:"condition_description,omitempty"`
	Quantity             int                 `json:"quantity"`
	Price                *float64            `json:"price,omitempty"`
	Currency             string              `json:"currency,omitempty"`
	ImageURL             string              `json:"image_url,omitempty"`
	SourceURL            string              `json:"source_url,omitempty"`
	Aspects              map[string][]string `json:"aspects,omitempty"`
}

// NormalizedSoldItem is a single sold line item before mapping.
type NormalizedSoldItem struct {
	OrderID         string    `json:"order_id"`
	LineItemID      string    `json:"line_item_id"`
	SKU             string    `json:"sku,omitempty"`
	LegacyItemID    string    `json:"legacy_item_id,omitempty"`
	Title           string    `json:"title"`
	Quantity        int       `json:"quantity"`
	SalePrice       float64   `json:"sale_price"`
	ShippingCharged float64   `json:"shipping_charged"`
	Fees            float64   `json:"fees"`
	Currency        string    `json:"currency"`
	SoldAt          time.Time `json:"sold_at"`
	BuyerUsername   string    `json:"buyer_username,omitempty"`
}

// InventoryItemDraft is a mapped listing the user may accept into inventory.
type InventoryItemDraft struct {
	SourceID       string          `json:"source_id"                 db:"source_id"`
	Name           string          `json:"name"                      db:"name"`
	CardNumber     string          `json:"card_number,omitempty"     db:"card_number"`
	SetName        string          `json:"set_name,omitempty"        db:"set_name"`
	GradingCompany *GradingCompany `json:"grading_company,omitempty" db:"grading_company"`
	Grade          *string         `json:"grade,omitempty"           db:"grade"`
	Condition      Condition       `json:"condition"                 db:"condition"`
	Quantity       int             `json:"quantity"                  db:"quantity"`
	ListPrice      *float64        `json:"list_price,omitempty"      db:"list_price"`
	Currency       string          `json:"currency,omitempty"        db:"currency"`
	ImageURL       string          `json:"image_url,omitempty"       db:"image_url"`
	SourceURL      string          `json:"source_url,omitempty"      db:"source_url"`
	NeedsReview    bool            `json:"needs_review"              db:"needs_review"`
	ReviewReasons  []string        `json:"review_reasons,omitempty"  db:"review_reasons"`
}

// SaleDraft is a mapped sold line item.
type SaleDraft struct {
	OrderID         string          `json:"order_id"                  db:"order_id"`
	LineItemID      string          `json:"line_item_id"              db:"line_item_id"`
	Name            string          `json:"name"                      db:"name"`
	CardNumber      string          `json:"card_number,omitempty"     db:"card_number"`
	GradingCompany  *GradingCompany `json:"grading_company,omitempty" db:"grading_company"`
	Grade           *string         `json:"grade,omitempty"           db:"grade"`
	SalePrice       float64         `json:"sale_price"                db:"sale_price"`
	ShippingCharged float64         `json:"shipping_charged"          db:"shipping_charged"`
	Fees            float64         `json:"fees"                      db:"fees"`
	Quantity        int             `json:"quantity"                  db:"quantity"`
	Currency        string          `json:"currency"                  db:"currency"`
	SoldAt          time.Time       `json:"sold_at"                   db:"sold_at"`
	BuyerUsername   string          `json:"buyer_username,omitempty"  db:"buyer_username"`
	NeedsReview     bool            `json:"needs_review"              db:"needs_review"`
	ReviewReasons   []string        `json:"review_reasons,omitempty"  db:"review_reasons"`
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Pages        int    `json:"pages"`
	Fetched      int    `json:"fetched"`
	NeedsReview  int    `json:"needs_review"`
	Materialized int    `json:"materialized"`
	StoppedAt    string `json:"stopped_at"`
}

// CatalogCard is a card found in a public catalog such as the Pokémon TCG API
// or Scryfall.
type CatalogCard struct {
	ID          string   `json:"id"`
	Source      string   `json:"source"`
	Name        string   `json:"name"`
	Number      string   `json:"number,omitempty"`
	SetName     string   `json:"set_name,omitempty"`
	Rarity      string   `json:"rarity,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	MarketPrice *float64 `json:"market_price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}

// Preference is a per-user JSON value keyed by name.
type Preference struct {
	UserID    string          `json:"user_id"    db:"user_id"`
	Key       string          `json:"key"        db:"key"`
	Value     json.RawMessage `json:"value"      db:"value"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
