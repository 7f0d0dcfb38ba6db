package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	// Authorize inserts a row for chatID with the given creation time. It is
	// idempotent: re-authorizing an existing id is a no-op and leaves
	// created_at untouched.
	Authorize(ctx context.Context, chatID int64, createdAt time.Time) error
	GetByChatID(ctx context.Context, chatID int64) (*User, error)
	Exists(ctx context.Context, chatID int64) (bool, error)
	// UpdateProfile overwrites username and display name. It does not create
	// a row; updating an unknown id is a no-op.
	UpdateProfile(ctx context.Context, chatID int64, username, displayName string) error
	ListChatIDs(ctx context.Context) ([]int64, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	SummarizeDay(ctx context.Context, chatID int64, date string) (DaySummary, error)
	// CategoriesInRange groups by category over date in [start, end],
	// ordered by subtotal descending, then category ascending.
	CategoriesInRange(ctx context.Context, chatID int64, start, end string) ([]CategoryTotal, error)
	// DailyTotalsInRange groups by date over [start, end], ordered by date
	// ascending. Dates with no entries are absent.
	DailyTotalsInRange(ctx context.Context, chatID int64, start, end string) ([]DayTotal, error)
}
