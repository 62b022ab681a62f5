package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/card-ledger/tools/dashgen/rules"
)

var known = map[string]bool{
	"card_ledger_http_requests_total":           true,
	"card_ledger_http_request_duration_seconds": true,
	"card_ledger_readyz_up":                     true,
	"card_ledger:http_requests:rate5m":          true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		expr         string
		wantErrors   int
		wantWarnings int
	}{
		{name: "gauge", expr: `card_ledger_readyz_up == 0`},
		{name: "counter under rate", expr: `sum(rate(card_ledger_http_requests_total{status=~"5.."}[5m]))`},
		{
			name: "histogram bucket",
			expr: `histogram_quantile(0.95, sum(rate(card_ledger_http_request_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "recording rule", expr: `card_ledger:http_requests:rate5m * 100`},
		{name: "syntax error", expr: `sum(rate(card_ledger_http_requests_total[5m])`, wantErrors: 1},
		{name: "unknown metric", expr: `card_ledger_missing_total`, wantErrors: 1},
		{name: "raw counter", expr: `card_ledger_http_requests_total`, wantWarnings: 1},
		{name: "name matcher", expr: `{__name__="card_ledger_readyz_up"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr("test", tt.expr, known)
			assert.Len(t, res.Errors, tt.wantErrors, "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.wantWarnings, "warnings: %v", res.Warnings)
			assert.Equal(t, tt.wantErrors == 0, res.Ok())
		})
	}
}

func TestRules_UnknownRecordingName(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Metadata: rules.PrometheusRuleMetadata{Name: "test-rules"},
		Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
			Name: "g",
			Rules: []rules.Rule{
				{Record: "card_ledger:unlisted:rate5m", Expr: `sum(rate(card_ledger_http_requests_total[5m]))`},
				{Alert: "Down", Expr: `card_ledger_readyz_up == 0`},
			},
		}}},
	}

	res := Rules(cr, known)
	assert.False(t, res.Ok())
	assert.Equal(t, []string{"test-rules/card_ledger:unlisted:rate5m: recording rule not in known metrics"}, res.Errors)
}

func TestCollectExprs(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"title": "dash",
		"panels": []any{
			map[string]any{
				"title": "Requests",
				"targets": []any{
					map[string]any{"expr": "a", "refId": "A"},
					map[string]any{"expr": "b", "refId": "B"},
				},
			},
			map[string]any{"title": "Empty", "targets": []any{map[string]any{"expr": ""}}},
		},
	}

	got := collectExprs(tree, "")
	assert.Equal(t, []query{
		{location: "panel Requests", expr: "a"},
		{location: "panel Requests", expr: "b"},
	}, got)
}
