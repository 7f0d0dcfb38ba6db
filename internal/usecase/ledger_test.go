package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	created []domain.Expense
}

func (f *fakeExpenseRepo) Create(_ context.Context, expense *domain.Expense) error {
	expense.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *expense)
	return nil
}

func (f *fakeExpenseRepo) SummarizeDay(context.Context, int64, string) (domain.DaySummary, error) {
	return domain.DaySummary{Total: decimal.Zero}, nil
}

func (f *fakeExpenseRepo) CategoriesInRange(context.Context, int64, string, string) ([]domain.CategoryTotal, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) DailyTotalsInRange(context.Context, int64, string, string) ([]domain.DayTotal, error) {
	return nil, nil
}

func newTestLedger(repo domain.ExpenseRepository) *Ledger {
	ledger := NewLedger(repo, time.UTC)
	ledger.now = func() time.Time {
		return time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	}
	return ledger
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("150")
	require.NoError(t, err)
	require.Equal(t, "150", amount.String())

	amount, err = ParseAmount(" 12,50 ")
	require.NoError(t, err)
	require.Equal(t, "12.5", amount.String())

	amount, err = ParseAmount("-40")
	require.NoError(t, err)
	require.True(t, amount.IsNegative())

	_, err = ParseAmount("tacos")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNormalizeCategory(t *testing.T) {
	require.Equal(t, "comida", NormalizeCategory("  Comida "))
	require.Equal(t, "comida", NormalizeCategory("comida"))
}

func TestRecordStampsTodayAndNormalizes(t *testing.T) {
	repo := &fakeExpenseRepo{}
	ledger := newTestLedger(repo)

	expense, err := ledger.Record(context.Background(), 42, decimal.RequireFromString("150"), "Comida", " tacos ")
	require.NoError(t, err)
	require.Equal(t, uint(1), expense.ID)
	require.Equal(t, "2026-08-28", expense.Date)
	require.Equal(t, "comida", expense.Category)
	require.Equal(t, "tacos", expense.Description)
	require.Len(t, repo.created, 1)
}

func TestRangeQueriesRejectInvertedRanges(t *testing.T) {
	ledger := newTestLedger(&fakeExpenseRepo{})

	_, err := ledger.SummarizeCategoriesInRange(context.Background(), 1, "2026-08-28", "2026-08-01")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = ledger.SummarizeDailyTotalsInRange(context.Background(), 1, "2026-08-28", "2026-08-01")
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestTodayUsesConfiguredLocation(t *testing.T) {
	ledger := NewLedger(&fakeExpenseRepo{}, time.FixedZone("UTC+14", 14*3600))
	ledger.now = func() time.Time {
		return time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	}
	require.Equal(t, "2026-08-29", ledger.Today())
}
