// Package digest formats ledger query results into reply text and
// chart-ready series. Pure functions, no I/O.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/shopspring/decimal"
)

// DaySummaryText renders the daily summary the /today command and the
// scheduled digest both send.
func DaySummaryText(date, currency string, summary domain.DaySummary) string {
	if summary.Total.IsZero() && len(summary.ByCategory) == 0 {
		return fmt.Sprintf("No expenses recorded today (%s).", date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summary for %s:\n", date)
	fmt.Fprintf(&b, "Total: %s%s\n", currency, summary.Total.StringFixed(2))

	if len(summary.ByCategory) > 0 {
		b.WriteString("\nBy category:\n")
		for _, ct := range summary.ByCategory {
			fmt.Fprintf(&b, "- %s: %s%s\n", ct.Category, currency, ct.Total.StringFixed(2))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RecordedText confirms a freshly recorded entry.
func RecordedText(currency string, amount decimal.Decimal, category, description string) string {
	if description == "" {
		description = "(no description)"
	}
	return fmt.Sprintf(
		"Expense recorded:\nAmount: %s%s\nCategory: %s\nDescription: %s",
		currency, amount.StringFixed(2), category, description,
	)
}

// CategorySeries splits a breakdown into the parallel label/value slices the
// bar chart renderer takes. Order is preserved.
func CategorySeries(totals []domain.CategoryTotal) ([]string, []float64) {
	labels := make([]string, 0, len(totals))
	values := make([]float64, 0, len(totals))
	for _, ct := range totals {
		labels = append(labels, ct.Category)
		values = append(values, ct.Total.InexactFloat64())
	}
	return labels, values
}

// WeekSeries densifies a sparse daily series into exactly seven DD/MM points
// ending at end, zero-filling days with no entries.
func WeekSeries(end time.Time, totals []domain.DayTotal) ([]string, []float64) {
	perDay := make(map[string]decimal.Decimal, len(totals))
	for _, dt := range totals {
		perDay[dt.Date] = dt.Total
	}

	labels := make([]string, 0, 7)
	values := make([]float64, 0, 7)
	for i := 6; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		labels = append(labels, day.Format("02/01"))
		values = append(values, perDay[day.Format(domain.DateLayout)].InexactFloat64())
	}
	return labels, values
}

// DayLabel formats a stored date as DD/MM/YYYY for chart titles.
func DayLabel(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// MonthLabel formats a stored date as MM/YYYY for chart titles.
func MonthLabel(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("01/2006")
}
