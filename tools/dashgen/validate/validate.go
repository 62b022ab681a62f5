// Package validate checks generated dashboards and rules against the PromQL
// grammar and the set of metrics card-ledger exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/card-ledger/tools/dashgen/rules"
)

// Result collects validation findings. Errors make an artifact unusable;
// warnings flag queries that parse but are likely wrong.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogram and summary series suffixes that resolve to a base metric.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// counter functions that make a _total selector meaningful.
var rateFuncs = map[string]bool{
	"rate":     true,
	"irate":    true,
	"increase": true,
	"resets":   true,
}

// Expr parses expr and checks every selector against known. The location
// prefixes each finding.
func Expr(location, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parse %q: %v", location, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, path []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := selectorName(vs)
		if name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: selector without metric name", location))
			return nil
		}
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", location, name))
			return nil
		}
		if strings.HasSuffix(name, "_total") && !underRate(path) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: counter %q used without rate or increase", location, name))
		}
		return nil
	})

	return res
}

// Dashboard validates every Prometheus query in the built dashboard.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshal dashboard: %v", err))
		return res
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decode dashboard: %v", err))
		return res
	}

	for _, q := range collectExprs(tree, "") {
		res.merge(Expr(q.location, q.expr, known))
	}
	return res
}

// Rules validates every rule expression in the resource. Recording rule
// names must themselves be known so dashboards can reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			location := cr.Metadata.Name + "/" + name
			if r.Record != "" && !known[r.Record] {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: recording rule not in known metrics", location))
			}
			res.merge(Expr(location, r.Expr, known))
		}
	}
	return res
}

type query struct {
	location string
	expr     string
}

// collectExprs walks decoded dashboard JSON and returns every "expr" value
// with the title of the enclosing panel.
func collectExprs(node any, title string) []query {
	var out []query

	switch v := node.(type) {
	case map[string]any:
		if t, ok := v["title"].(string); ok {
			title = t
		}
		if e, ok := v["expr"].(string); ok && e != "" {
			out = append(out, query{location: "panel " + title, expr: e})
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, collectExprs(v[k], title)...)
		}
	case []any:
		for _, item := range v {
			out = append(out, collectExprs(item, title)...)
		}
	}
	return out
}

func selectorName(vs *parser.VectorSelector) string {
	if vs.Name != "" {
		return vs.Name
	}
	for _, m := range vs.LabelMatchers {
		if m.Name == "__name__" {
			return m.Value
		}
	}
	return ""
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, s := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, s); ok && known[base] {
			return true
		}
	}
	return false
}

func underRate(path []parser.Node) bool {
	for _, n := range path {
		if c, ok := n.(*parser.Call); ok && rateFuncs[c.Func.Name] {
			return true
		}
	}
	return false
}
