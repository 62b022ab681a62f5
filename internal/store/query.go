package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated     = "created_at"
	orderByTargetPrice = "target_price"
	orderByTriggered   = "triggered_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:     "created_at DESC",
	orderByTargetPrice: "target_price ASC",
	orderByTriggered:   "triggered_at DESC NULLS LAST",
}

const defaultOrderBy = "created_at DESC"

const baseAlertsSelect = `SELECT ` + alertColumns + `
FROM price_alerts`

const countAlertsSelect = "SELECT COUNT(*) FROM price_alerts"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an alert query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *AlertQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", paramIdx))
		args = append(args, *q.UserID)
		paramIdx++
	}

	if q.ItemID != nil {
		conditions = append(conditions, fmt.Sprintf("item_id = $%d", paramIdx))
		args = append(args, *q.ItemID)
	}

	switch q.Status {
	case AlertStatusActive:
		conditions = append(conditions, "triggered_at IS NULL")
	case AlertStatusTriggered:
		conditions = append(conditions, "triggered_at IS NOT NULL")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAlertsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countAlertsSelect + whereClause

	return dataSQL, countSQL, args
}
