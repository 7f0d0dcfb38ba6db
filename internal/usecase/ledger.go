package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidRange  = errors.New("invalid date range")
)

// ParseAmount parses a user-supplied amount. A decimal comma is accepted as
// a separator. Negative amounts pass: they are credits/refunds.
func ParseAmount(text string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}

// NormalizeCategory trims and lower-cases so the same category always
// aggregates into one group regardless of entry path.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Ledger records expenses and answers aggregation queries. It does not check
// authorization; callers gate access before reaching it.
type Ledger struct {
	expenses domain.ExpenseRepository
	loc      *time.Location
	now      func() time.Time
}

func NewLedger(expenses domain.ExpenseRepository, loc *time.Location) *Ledger {
	return &Ledger{expenses: expenses, loc: loc, now: time.Now}
}

func (l *Ledger) Now() time.Time {
	return l.now().In(l.loc)
}

func (l *Ledger) Today() string {
	return l.Now().Format(domain.DateLayout)
}

// Record appends one entry stamped with the current date and returns it.
// Entries are immutable afterwards.
func (l *Ledger) Record(ctx context.Context, chatID int64, amount decimal.Decimal, category, description string) (*domain.Expense, error) {
	expense := &domain.Expense{
		ChatID:      chatID,
		Date:        l.Today(),
		Amount:      amount,
		Category:    NormalizeCategory(category),
		Description: strings.TrimSpace(description),
	}
	if err := l.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (l *Ledger) SummarizeDay(ctx context.Context, chatID int64, date string) (domain.DaySummary, error) {
	return l.expenses.SummarizeDay(ctx, chatID, date)
}

func (l *Ledger) SummarizeCategoriesInRange(ctx context.Context, chatID int64, start, end string) ([]domain.CategoryTotal, error) {
	if start > end {
		return nil, ErrInvalidRange
	}
	return l.expenses.CategoriesInRange(ctx, chatID, start, end)
}

func (l *Ledger) SummarizeDailyTotalsInRange(ctx context.Context, chatID int64, start, end string) ([]domain.DayTotal, error) {
	if start > end {
		return nil, ErrInvalidRange
	}
	return l.expenses.DailyTotalsInRange(ctx, chatID, start, end)
}
