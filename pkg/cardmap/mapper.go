// Package cardmap turns normalized provider listings and sold items into card
// inventory and sale drafts. Every function is pure and never fails: anything
// it cannot map confidently is flagged for review instead.
package cardmap

import (
	"strings"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// Review reasons attached to drafts that need a human look.
const (
	ReasonMissingTitle          = "missing_title"
	ReasonConditionUnrecognized = "condition_unrecognized"
	ReasonGradeMissing          = "grade_missing"
	ReasonQuantityDefaulted     = "quantity_defaulted"
	ReasonMissingPrice          = "missing_price"
	ReasonMissingOrderReference = "missing_order_reference"
)

// Mapper holds the mapping settings. The zero value is not usable; use New.
type Mapper struct {
	defaultCondition domain.Condition
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithDefaultCondition sets the condition used when none can be recognized.
// Invalid conditions are ignored.
func WithDefaultCondition(c domain.Condition) Option {
	return func(m *Mapper) {
		if c.Valid() {
			m.defaultCondition = c
		}
	}
}

// New creates a Mapper. The default fallback condition is near_mint.
func New(opts ...Option) *Mapper {
	m := &Mapper{defaultCondition: domain.ConditionNearMint}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultCondition returns the fallback condition.
func (m *Mapper) DefaultCondition() domain.Condition {
	return m.defaultCondition
}

var defaultMapper = New()

// ToInventoryItem maps a listing with the default settings.
func ToInventoryItem(l domain.NormalizedListing) domain.InventoryItemDraft {
	return defaultMapper.ToInventoryItem(l)
}

// ToSaleRecord maps a sold item with the default settings.
func ToSaleRecord(s domain.NormalizedSoldItem) domain.SaleDraft {
	return defaultMapper.ToSaleRecord(s)
}

// ToInventoryItem maps an active listing to an inventory draft.
func (m *Mapper) ToInventoryItem(l domain.NormalizedListing) domain.InventoryItemDraft {
	d := domain.InventoryItemDraft{
		SourceID:  l.SourceID,
		Quantity:  l.Quantity,
		Currency:  l.Currency,
		ImageURL:  l.ImageURL,
		SourceURL: l.SourceURL,
		SetName:   aspect(l.Aspects, "Set"),
	}
	var reasons []string

	if l.Price != nil {
		p := *l.Price
		d.ListPrice = &p
	}

	name, number := CleanTitle(l.Title)
	if name == "" {
		name = aspect(l.Aspects, "Card Name")
	}
	if name == "" {
		reasons = append(reasons, ReasonMissingTitle)
	}
	if number == "" {
		number = aspect(l.Aspects, "Card Number")
	}
	d.Name = name
	d.CardNumber = number

	company, grade, gradeReasons := resolveGrading(l.Title, l.Aspects)
	d.GradingCompany = company
	d.Grade = grade
	reasons = append(reasons, gradeReasons...)

	cond, ok := m.resolveCondition(l)
	if !ok {
		reasons = append(reasons, ReasonConditionUnrecognized)
	}
	d.Condition = cond

	if d.Quantity < 1 {
		d.Quantity = 1
		reasons = append(reasons, ReasonQuantityDefaulted)
	}

	d.ReviewReasons = reasons
	d.NeedsReview = len(reasons) > 0
	return d
}

// ToSaleRecord maps a sold line item to a sale draft.
func (m *Mapper) ToSaleRecord(s domain.NormalizedSoldItem) domain.SaleDraft {
	d := domain.SaleDraft{
		OrderID:         s.OrderID,
		LineItemID:      s.LineItemID,
		SalePrice:       s.SalePrice,
		ShippingCharged: s.ShippingCharged,
		Fees:            s.Fees,
		Quantity:        s.Quantity,
		Currency:        s.Currency,
		SoldAt:          s.SoldAt,
		BuyerUsername:   s.BuyerUsername,
	}
	var reasons []string

	if s.OrderID == "" || s.LineItemID == "" {
		reasons = append(reasons, ReasonMissingOrderReference)
	}

	name, number := CleanTitle(s.Title)
	if name == "" {
		reasons = append(reasons, ReasonMissingTitle)
	}
	d.Name = name
	d.CardNumber = number

	company, grade, gradeReasons := resolveGrading(s.Title, nil)
	d.GradingCompany = company
	d.Grade = grade
	reasons = append(reasons, gradeReasons...)

	if d.SalePrice <= 0 {
		reasons = append(reasons, ReasonMissingPrice)
	}
	if d.Quantity < 1 {
		d.Quantity = 1
		reasons = append(reasons, ReasonQuantityDefaulted)
	}

	d.ReviewReasons = reasons
	d.NeedsReview = len(reasons) > 0
	return d
}

// resolveCondition checks the most card-specific sources first. eBay's
// generic condition enum comes last since for trading cards it mostly encodes
// graded versus ungraded.
func (m *Mapper) resolveCondition(l domain.NormalizedListing) (domain.Condition, bool) {
	for _, raw := range []string{
		aspect(l.Aspects, "Card Condition"),
		l.ConditionDescription,
	} {
		if c, ok := NormalizeCondition(raw); ok {
			return c, true
		}
	}

	if c, ok := conditionFromTitle(l.Title); ok {
		return c, true
	}

	if c, ok := NormalizeCondition(l.Condition); ok {
		return c, true
	}

	return m.defaultCondition, false
}

func resolveGrading(
	title string,
	aspects map[string][]string,
) (*domain.GradingCompany, *string, []string) {
	g, ok := DetectGrading(title)
	if !ok {
		g, ok = gradingFromAspects(aspects)
	}
	if !ok {
		return nil, nil, nil
	}

	company := g.Company
	grade := strings.TrimSpace(g.Grade)
	if grade == "" {
		return &company, nil, []string{ReasonGradeMissing}
	}
	return &company, &grade, nil
}
