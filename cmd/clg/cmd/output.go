package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/card-ledger/internal/api/client"
	"github.com/donaldgifford/card-ledger/internal/catalog"
	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertTable(w io.Writer, alerts []domain.PriceAlert) error {
	tw := newTabWriter(w)
	tw.writef("ID\tITEM\tDIRECTION\tTARGET\tCURRENT\tTRIGGERED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%s\t$%.2f\t%s\t%s\n",
			a.ID,
			truncate(a.ItemName, 40),
			a.Direction,
			a.TargetPrice,
			money(a.CurrentPrice),
			timestamp(a.TriggeredAt),
		)
	}
	return tw.finish()
}

func printImportSummary(w io.Writer, kind string, r domain.ImportResult) error {
	tw := newTabWriter(w)
	tw.writef("Import:\t%s\n", kind)
	tw.writef("Pages:\t%d\n", r.Pages)
	tw.writef("Fetched:\t%d\n", r.Fetched)
	tw.writef("Needs review:\t%d\n", r.NeedsReview)
	tw.writef("Materialized:\t%d\n", r.Materialized)
	if r.StoppedAt != "" {
		tw.writef("Stopped at:\t%s\n", r.StoppedAt)
	}
	return tw.finish()
}

func printInventoryTable(w io.Writer, items []domain.InventoryItemDraft) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tNAME\tNUMBER\tCONDITION\tGRADE\tQTY\tREVIEW\n")
	for i := range items {
		it := &items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			it.SourceID,
			truncate(it.Name, 40),
			dash(it.CardNumber),
			it.Condition,
			grade(it.GradingCompany, it.Grade),
			it.Quantity,
			reviewMark(it.NeedsReview, it.ReviewReasons),
		)
	}
	return tw.finish()
}

func printSalesTable(w io.Writer, sales []domain.SaleDraft) error {
	tw := newTabWriter(w)
	tw.writef("ORDER\tNAME\tPRICE\tFEES\tQTY\tSOLD\tREVIEW\n")
	for i := range sales {
		s := &sales[i]
		tw.writef("%s\t%s\t$%.2f\t$%.2f\t%d\t%s\t%s\n",
			s.OrderID,
			truncate(s.Name, 40),
			s.SalePrice,
			s.Fees,
			s.Quantity,
			s.SoldAt.Format(timeLayout),
			reviewMark(s.NeedsReview, s.ReviewReasons),
		)
	}
	return tw.finish()
}

func printCatalogTable(w io.Writer, page *catalog.Page) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tNUMBER\tSET\tRARITY\tPRICE\n")
	for i := range page.Cards {
		c := &page.Cards[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			truncate(c.Name, 40),
			dash(c.Number),
			truncate(dash(c.SetName), 30),
			dash(c.Rarity),
			money(c.MarketPrice),
		)
	}
	return tw.finish()
}

func printMarketTable(w io.Writer, res *apiclient.MarketResults) error {
	tw := newTabWriter(w)
	tw.writef("ITEM\tTITLE\tPRICE\tCONDITION\n")
	for i := range res.Items {
		it := &res.Items[i]
		tw.writef("%s\t%s\t%s %s\t%s\n",
			it.ItemID,
			truncate(it.Title, 50),
			it.Price.Value,
			it.Price.Currency,
			dash(it.Condition),
		)
	}
	return tw.finish()
}

func printPreferenceTable(w io.Writer, prefs []domain.Preference) error {
	tw := newTabWriter(w)
	tw.writef("KEY\tVALUE\tUPDATED\n")
	for i := range prefs {
		tw.writef("%s\t%s\t%s\n",
			prefs[i].Key,
			truncate(string(prefs[i].Value), 60),
			prefs[i].UpdatedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printConnection(w io.Writer, rec *domain.TokenRecord) error {
	tw := newTabWriter(w)
	tw.writef("Provider:\t%s\n", rec.Provider)
	tw.writef("Username:\t%s\n", dash(rec.ProviderUsername))
	tw.writef("Access token expires:\t%s\n", rec.AccessTokenExpiresAt.Format(timeLayout))
	if !rec.RefreshTokenExpiresAt.IsZero() {
		tw.writef("Refresh token expires:\t%s\n", rec.RefreshTokenExpiresAt.Format(timeLayout))
	}
	tw.writef("Updated:\t%s\n", rec.UpdatedAt.Format(timeLayout))
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.Quota) error {
	tw := newTabWriter(w)
	tw.writef("RESOURCE\tUSED\tLIMIT\tREMAINING\tRESETS\n")
	tw.writef("local\t%d\t%d\t%d\t%s\n",
		q.Local.Used, q.Local.Limit, q.Local.Remaining, q.Local.ResetAt.Format(timeLayout))
	for i := range q.Provider {
		p := &q.Provider[i]
		tw.writef("%s\t%d\t%d\t%d\t%s\n",
			p.Resource, p.Count, p.Limit, p.Remaining, p.ResetAt.Format(timeLayout))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func timestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func grade(company *domain.GradingCompany, g *string) string {
	if company == nil || g == nil {
		return "raw"
	}
	return string(*company) + " " + *g
}

func reviewMark(needsReview bool, reasons []string) string {
	switch {
	case !needsReview:
		return "-"
	case len(reasons) == 0:
		return "yes"
	default:
		return strings.Join(reasons, ",")
	}
}
