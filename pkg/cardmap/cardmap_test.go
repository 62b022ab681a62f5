package cardmap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/pkg/cardmap"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestDetectGrading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		want   domain.Grading
		wantOK bool
	}{
		{
			name:   "PSA 10 leading",
			title:  "PSA 10 Charizard Base Set Holo #4/102",
			want:   domain.Grading{Company: domain.GraderPSA, Grade: "10"},
			wantOK: true,
		},
		{
			name:   "PSA gem mt",
			title:  "Charizard PSA GEM MT 10",
			want:   domain.Grading{Company: domain.GraderPSA, Grade: "10"},
			wantOK: true,
		},
		{
			name:   "lowercase psa",
			title:  "blastoise psa 8 base set",
			want:   domain.Grading{Company: domain.GraderPSA, Grade: "8"},
			wantOK: true,
		},
		{
			name:   "BGS half grade",
			title:  "BGS 9.5 Gem Mint LeBron James Rookie",
			want:   domain.Grading{Company: domain.GraderBGS, Grade: "9.5"},
			wantOK: true,
		},
		{
			name:   "Beckett black label",
			title:  "Beckett Black Label 10 Pikachu",
			want:   domain.Grading{Company: domain.GraderBGS, Grade: "10"},
			wantOK: true,
		},
		{
			name:   "CGC pristine",
			title:  "Umbreon VMAX CGC Pristine 10",
			want:   domain.Grading{Company: domain.GraderCGC, Grade: "10"},
			wantOK: true,
		},
		{
			name:   "SGC",
			title:  "1952 Topps Mickey Mantle SGC 3",
			want:   domain.Grading{Company: domain.GraderSGC, Grade: "3"},
			wantOK: true,
		},
		{
			name:   "first rule wins",
			title:  "PSA 9 crossover from BGS 10",
			want:   domain.Grading{Company: domain.GraderPSA, Grade: "9"},
			wantOK: true,
		},
		{name: "raw card", title: "Charizard Base Set Holo NM", wantOK: false},
		{name: "PSA DNA autograph", title: "Signed PSA/DNA Certified", wantOK: false},
		{name: "grade out of range", title: "PSA 100th anniversary", wantOK: false},
		{name: "empty", title: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := cardmap.DetectGrading(tt.title)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		title      string
		wantName   string
		wantNumber string
	}{
		{
			name:       "graded with set number",
			title:      "PSA 10 Charizard Base Set Holo #4/102",
			wantName:   "Charizard Base Set Holo",
			wantNumber: "4/102",
		},
		{
			name:       "condition and shipping noise",
			title:      "Pikachu 025/165 NM Free Shipping!",
			wantName:   "Pikachu",
			wantNumber: "025/165",
		},
		{
			name:       "hash number only",
			title:      "Umbreon VMAX #215 Evolving Skies LP",
			wantName:   "Umbreon VMAX Evolving Skies",
			wantNumber: "215",
		},
		{
			name:       "trainer gallery number",
			title:      "Pikachu TG05/TG30 Lost Origin",
			wantName:   "Pikachu Lost Origin",
			wantNumber: "TG05/TG30",
		},
		{
			name:     "punctuation collapse",
			title:    "Charizard - Base Set | Holo ***",
			wantName: "Charizard Base Set Holo",
		},
		{
			name:     "HP is kept",
			title:    "Charizard 120 HP Holo",
			wantName: "Charizard 120 HP Holo",
		},
		{name: "whitespace only", title: "   "},
		{name: "empty", title: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, number := cardmap.CleanTitle(tt.title)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}

func TestNormalizeCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		want   domain.Condition
		wantOK bool
	}{
		{name: "enum identity", raw: "mint", want: domain.ConditionMint, wantOK: true},
		{name: "enum identity upper", raw: "NEAR_MINT", want: domain.ConditionNearMint, wantOK: true},
		{name: "ebay very good", raw: "USED_VERY_GOOD", want: domain.ConditionLightlyPlayed, wantOK: true},
		{name: "ebay like new", raw: "LIKE_NEW", want: domain.ConditionNearMint, wantOK: true},
		{name: "ebay new", raw: "NEW", want: domain.ConditionMint, wantOK: true},
		{name: "near mint or better", raw: "Near Mint or Better", want: domain.ConditionNearMint, wantOK: true},
		{name: "NM abbreviation", raw: "NM", want: domain.ConditionNearMint, wantOK: true},
		{name: "NM-MT abbreviation", raw: "nm-mt", want: domain.ConditionNearMint, wantOK: true},
		{name: "lightly played", raw: "Lightly Played (Excellent)", want: domain.ConditionLightlyPlayed, wantOK: true},
		{name: "excellent", raw: "Excellent", want: domain.ConditionLightlyPlayed, wantOK: true},
		{name: "good", raw: "USED_GOOD", want: domain.ConditionModeratelyPlayed, wantOK: true},
		{name: "heavily played", raw: "Heavily Played", want: domain.ConditionHeavilyPlayed, wantOK: true},
		{name: "acceptable", raw: "USED_ACCEPTABLE", want: domain.ConditionHeavilyPlayed, wantOK: true},
		{name: "for parts", raw: "FOR_PARTS_OR_NOT_WORKING", want: domain.ConditionDamaged, wantOK: true},
		{name: "poor", raw: "Poor", want: domain.ConditionDamaged, wantOK: true},
		{name: "ungraded", raw: "Ungraded", wantOK: false},
		{name: "graded", raw: "Graded", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace", raw: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := cardmap.NormalizeCondition(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToInventoryItem(t *testing.T) {
	t.Parallel()

	t.Run("graded listing", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			SourceID:  "SKU-1",
			Title:     "PSA 10 Charizard Base Set Holo #4/102",
			Condition: "LIKE_NEW",
			Quantity:  1,
			Price:     ptr(350.0),
			Currency:  "USD",
			ImageURL:  "https://i.ebayimg.com/1.jpg",
			Aspects:   map[string][]string{"Set": {"Base Set"}},
		})

		assert.Equal(t, "SKU-1", d.SourceID)
		assert.Equal(t, "Charizard Base Set Holo", d.Name)
		assert.Equal(t, "4/102", d.CardNumber)
		assert.Equal(t, "Base Set", d.SetName)
		require.NotNil(t, d.GradingCompany)
		assert.Equal(t, domain.GraderPSA, *d.GradingCompany)
		require.NotNil(t, d.Grade)
		assert.Equal(t, "10", *d.Grade)
		assert.Equal(t, domain.ConditionNearMint, d.Condition)
		require.NotNil(t, d.ListPrice)
		assert.InDelta(t, 350.0, *d.ListPrice, 0.001)
		assert.False(t, d.NeedsReview)
		assert.Empty(t, d.ReviewReasons)
	})

	t.Run("raw listing has no grading", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			SourceID: "SKU-2",
			Title:    "Pikachu 025/165 NM Free Shipping",
			Quantity: 3,
			Price:    ptr(4.5),
		})

		assert.Nil(t, d.GradingCompany)
		assert.Nil(t, d.Grade)
		assert.Equal(t, "Pikachu", d.Name)
		assert.Equal(t, domain.ConditionNearMint, d.Condition)
		assert.Equal(t, 3, d.Quantity)
		assert.False(t, d.NeedsReview)
	})

	t.Run("card condition aspect wins over enum", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			Title:     "Blastoise Base Set",
			Condition: "LIKE_NEW",
			Quantity:  1,
			Price:     ptr(80.0),
			Aspects:   map[string][]string{"card condition": {"Lightly Played (Excellent)"}},
		})

		assert.Equal(t, domain.ConditionLightlyPlayed, d.Condition)
		assert.False(t, d.NeedsReview)
	})

	t.Run("grading from aspects", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			Title:     "Charizard Base Set 4/102 Holo",
			Condition: "LIKE_NEW",
			Quantity:  1,
			Price:     ptr(900.0),
			Aspects: map[string][]string{
				"Professional Grader": {"Professional Sports Authenticator (PSA)"},
				"Grade":               {"9"},
			},
		})

		require.NotNil(t, d.GradingCompany)
		assert.Equal(t, domain.GraderPSA, *d.GradingCompany)
		require.NotNil(t, d.Grade)
		assert.Equal(t, "9", *d.Grade)
	})

	t.Run("grader aspect without grade", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			Title:     "Mewtwo Base Set",
			Condition: "LIKE_NEW",
			Quantity:  1,
			Price:     ptr(60.0),
			Aspects: map[string][]string{
				"Professional Grader": {"Certified Guaranty Company (CGC)"},
			},
		})

		require.NotNil(t, d.GradingCompany)
		assert.Equal(t, domain.GraderCGC, *d.GradingCompany)
		assert.Nil(t, d.Grade)
		assert.True(t, d.NeedsReview)
		assert.Contains(t, d.ReviewReasons, cardmap.ReasonGradeMissing)
	})

	t.Run("unrecognized condition falls back and flags review", func(t *testing.T) {
		t.Parallel()

		m := cardmap.New(cardmap.WithDefaultCondition(domain.ConditionLightlyPlayed))
		d := m.ToInventoryItem(domain.NormalizedListing{
			Title:    "Gengar Fossil Holo",
			Quantity: 1,
			Price:    ptr(30.0),
		})

		assert.Equal(t, domain.ConditionLightlyPlayed, d.Condition)
		assert.True(t, d.NeedsReview)
		assert.Equal(t, []string{cardmap.ReasonConditionUnrecognized}, d.ReviewReasons)
	})

	t.Run("invalid default condition is ignored", func(t *testing.T) {
		t.Parallel()

		m := cardmap.New(cardmap.WithDefaultCondition("pristine"))
		assert.Equal(t, domain.ConditionNearMint, m.DefaultCondition())
	})

	t.Run("empty listing", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{})

		assert.Empty(t, d.Name)
		assert.Nil(t, d.GradingCompany)
		assert.Equal(t, domain.ConditionNearMint, d.Condition)
		assert.Equal(t, 1, d.Quantity)
		assert.True(t, d.NeedsReview)
		assert.Nil(t, d.ListPrice)
		assert.ElementsMatch(t, []string{
			cardmap.ReasonMissingTitle,
			cardmap.ReasonConditionUnrecognized,
			cardmap.ReasonQuantityDefaulted,
		}, d.ReviewReasons)
	})

	t.Run("name falls back to card name aspect", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToInventoryItem(domain.NormalizedListing{
			Title:     "PSA 10 #4/102",
			Condition: "LIKE_NEW",
			Quantity:  1,
			Price:     ptr(1.0),
			Aspects:   map[string][]string{"Card Name": {"Charizard"}},
		})

		assert.Equal(t, "Charizard", d.Name)
		assert.False(t, d.NeedsReview)
	})
}

func TestToInventoryItem_NeverPanics(t *testing.T) {
	t.Parallel()

	titles := []string{
		"",
		"#",
		"/",
		"#/",
		"PSA",
		"PSA PSA PSA",
		"BGS 9.",
		"////////",
		"🔥🔥 Charizard 🔥🔥",
		"ポケモン リザードン PSA 10",
		"\x00\xff\xfe",
		"Free Shipping",
		"NM LP MP DMG",
	}

	for _, title := range titles {
		assert.NotPanics(t, func() {
			d := cardmap.ToInventoryItem(domain.NormalizedListing{Title: title})
			if _, ok := cardmap.DetectGrading(title); !ok {
				assert.Nil(t, d.GradingCompany, title)
			}
		})
	}
}

func TestToSaleRecord(t *testing.T) {
	t.Parallel()

	soldAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("graded sale", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToSaleRecord(domain.NormalizedSoldItem{
			OrderID:         "12-34567-89012",
			LineItemID:      "10001",
			Title:           "BGS 9.5 Pikachu Illustrator #1 Free Shipping",
			Quantity:        1,
			SalePrice:       1250,
			ShippingCharged: 5,
			Fees:            160.25,
			Currency:        "USD",
			SoldAt:          soldAt,
			BuyerUsername:   "collector99",
		})

		assert.Equal(t, "Pikachu Illustrator", d.Name)
		assert.Equal(t, "1", d.CardNumber)
		require.NotNil(t, d.GradingCompany)
		assert.Equal(t, domain.GraderBGS, *d.GradingCompany)
		require.NotNil(t, d.Grade)
		assert.Equal(t, "9.5", *d.Grade)
		assert.InDelta(t, 160.25, d.Fees, 0.001)
		assert.Equal(t, soldAt, d.SoldAt)
		assert.Equal(t, "collector99", d.BuyerUsername)
		assert.False(t, d.NeedsReview)
	})

	t.Run("missing references flag review", func(t *testing.T) {
		t.Parallel()

		d := cardmap.ToSaleRecord(domain.NormalizedSoldItem{
			Title:     "Charizard",
			SalePrice: 10,
		})

		assert.True(t, d.NeedsReview)
		assert.ElementsMatch(t, []string{
			cardmap.ReasonMissingOrderReference,
			cardmap.ReasonQuantityDefaulted,
		}, d.ReviewReasons)
		assert.Equal(t, 1, d.Quantity)
		assert.Nil(t, d.GradingCompany)
	})
}
