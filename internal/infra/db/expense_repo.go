package db

import (
	"context"
	"sort"

	"github.com/jortega/gastobot/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	model := expenseModel{
		ChatID:      expense.ChatID,
		Date:        expense.Date,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	expense.ID = model.ID
	return nil
}

func (r *ExpenseRepository) SummarizeDay(ctx context.Context, chatID int64, date string) (domain.DaySummary, error) {
	byCategory, err := r.CategoriesInRange(ctx, chatID, date, date)
	if err != nil {
		return domain.DaySummary{}, err
	}

	total := decimal.Zero
	for _, ct := range byCategory {
		total = total.Add(ct.Total)
	}
	return domain.DaySummary{Total: total, ByCategory: byCategory}, nil
}

// CategoriesInRange filters rows in SQL and sums in Go with decimal
// arithmetic: sqlite's SUM coerces to float and would not keep 2-decimal
// totals exact.
func (r *ExpenseRepository) CategoriesInRange(ctx context.Context, chatID int64, start, end string) ([]domain.CategoryTotal, error) {
	models, err := r.rowsInRange(ctx, chatID, start, end)
	if err != nil {
		return nil, err
	}

	subtotals := make(map[string]decimal.Decimal)
	for _, m := range models {
		subtotals[m.Category] = subtotals[m.Category].Add(m.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(subtotals))
	for category, total := range subtotals {
		totals = append(totals, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

func (r *ExpenseRepository) DailyTotalsInRange(ctx context.Context, chatID int64, start, end string) ([]domain.DayTotal, error) {
	models, err := r.rowsInRange(ctx, chatID, start, end)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]decimal.Decimal)
	for _, m := range models {
		perDay[m.Date] = perDay[m.Date].Add(m.Amount)
	}

	totals := make([]domain.DayTotal, 0, len(perDay))
	for date, total := range perDay {
		totals = append(totals, domain.DayTotal{Date: date, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals, nil
}

func (r *ExpenseRepository) rowsInRange(ctx context.Context, chatID int64, start, end string) ([]expenseModel, error) {
	var models []expenseModel
	err := r.db.WithContext(ctx).
		Where("chat_id = ? AND date BETWEEN ? AND ?", chatID, start, end).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}
