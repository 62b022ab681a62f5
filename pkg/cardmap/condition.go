package cardmap

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

type conditionEntry struct {
	fragment  string
	condition domain.Condition
}

// conditionTable is matched as ordered substrings against the normalized
// input. Longer and worse-condition phrases come first so that "very good"
// wins over "good" and "like new" over "new".
var conditionTable = []conditionEntry{
	{"for parts", domain.ConditionDamaged},
	{"damaged", domain.ConditionDamaged},
	{"poor", domain.ConditionDamaged},
	{"heavily played", domain.ConditionHeavilyPlayed},
	{"acceptable", domain.ConditionHeavilyPlayed},
	{"moderately played", domain.ConditionModeratelyPlayed},
	{"very good", domain.ConditionLightlyPlayed},
	{"lightly played", domain.ConditionLightlyPlayed},
	{"excellent", domain.ConditionLightlyPlayed},
	{"good", domain.ConditionModeratelyPlayed},
	{"near mint", domain.ConditionNearMint},
	{"like new", domain.ConditionNearMint},
	{"gem mint", domain.ConditionMint},
	{"mint", domain.ConditionMint},
	{"brand new", domain.ConditionMint},
	{"new", domain.ConditionMint},
}

// conditionAbbrev covers the grading shorthand card sellers use. Matched as
// whole tokens only.
var conditionAbbrev = map[string]domain.Condition{
	"nm":      domain.ConditionNearMint,
	"nm/m":    domain.ConditionNearMint,
	"nm/mt":   domain.ConditionNearMint,
	"nm/mint": domain.ConditionNearMint,
	"nm mt":   domain.ConditionNearMint,
	"nm mint": domain.ConditionNearMint,
	"lp":      domain.ConditionLightlyPlayed,
	"mp":      domain.ConditionModeratelyPlayed,
	"hp":      domain.ConditionHeavilyPlayed,
	"dmg":     domain.ConditionDamaged,
}

// titleConditionRegex finds condition shorthand inside a title. "HP" is left
// out because Pokémon titles use it for hit points.
var titleConditionRegex = regexp.MustCompile(
	`(?i)\b(near\s+mint|lightly\s+played|moderately\s+played|heavily\s+played|nm(?:[/-]m(?:t|int)?)?|lp|mp|dmg|damaged)\b`,
)

// NormalizeCondition maps a raw condition string to the fixed condition enum.
// Matching is case-insensitive and treats underscores and hyphens as spaces,
// so eBay enum values like "USED_VERY_GOOD" resolve. Returns false when no
// entry matches.
func NormalizeCondition(raw string) (domain.Condition, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", false
	}

	if c := domain.Condition(normalized); c.Valid() {
		return c, true
	}

	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	normalized = strings.Join(strings.Fields(normalized), " ")

	if c, ok := conditionAbbrev[normalized]; ok {
		return c, true
	}

	for _, e := range conditionTable {
		if strings.Contains(normalized, e.fragment) {
			return e.condition, true
		}
	}

	return "", false
}

func conditionFromTitle(title string) (domain.Condition, bool) {
	m := titleConditionRegex.FindString(title)
	if m == "" {
		return "", false
	}
	return NormalizeCondition(m)
}
