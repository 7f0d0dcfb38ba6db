package digest

import (
	"testing"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDaySummaryTextQuietDay(t *testing.T) {
	text := DaySummaryText("2026-08-28", "$", domain.DaySummary{Total: decimal.Zero})
	require.Equal(t, "No expenses recorded today (2026-08-28).", text)
}

func TestDaySummaryTextWithCategories(t *testing.T) {
	summary := domain.DaySummary{
		Total: decimal.RequireFromString("450"),
		ByCategory: []domain.CategoryTotal{
			{Category: "food", Total: decimal.RequireFromString("300")},
			{Category: "health", Total: decimal.RequireFromString("150")},
		},
	}

	text := DaySummaryText("2026-08-28", "$", summary)
	require.Equal(t,
		"Summary for 2026-08-28:\nTotal: $450.00\n\nBy category:\n- food: $300.00\n- health: $150.00",
		text)
}

func TestRecordedText(t *testing.T) {
	text := RecordedText("$", decimal.RequireFromString("150"), "comida", "tacos")
	require.Contains(t, text, "Amount: $150.00")
	require.Contains(t, text, "Category: comida")
	require.Contains(t, text, "Description: tacos")

	text = RecordedText("$", decimal.RequireFromString("150"), "comida", "")
	require.Contains(t, text, "Description: (no description)")
}

func TestCategorySeriesPreservesOrder(t *testing.T) {
	labels, values := CategorySeries([]domain.CategoryTotal{
		{Category: "food", Total: decimal.RequireFromString("300")},
		{Category: "transport", Total: decimal.RequireFromString("120.50")},
	})
	require.Equal(t, []string{"food", "transport"}, labels)
	require.Equal(t, []float64{300, 120.5}, values)
}

func TestWeekSeriesZeroFillsMissingDays(t *testing.T) {
	end := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	totals := []domain.DayTotal{
		{Date: "2026-08-22", Total: decimal.RequireFromString("10")},
		{Date: "2026-08-26", Total: decimal.RequireFromString("30")},
	}

	labels, values := WeekSeries(end, totals)
	require.Equal(t, []string{"22/08", "23/08", "24/08", "25/08", "26/08", "27/08", "28/08"}, labels)
	require.Equal(t, []float64{10, 0, 0, 0, 30, 0, 0}, values)
}

func TestWeekSeriesEmptyInputIsAllZeroes(t *testing.T) {
	end := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	labels, values := WeekSeries(end, nil)
	require.Len(t, labels, 7)
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0}, values)
}

func TestDateLabels(t *testing.T) {
	require.Equal(t, "28/08/2026", DayLabel("2026-08-28"))
	require.Equal(t, "08/2026", MonthLabel("2026-08-28"))
	// Malformed dates pass through untouched.
	require.Equal(t, "garbage", DayLabel("garbage"))
}
