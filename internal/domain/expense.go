package domain

import "github.com/shopspring/decimal"

// DateLayout is the calendar-date form expenses are stamped and queried
// with. Lexicographic order on this layout matches date order.
const DateLayout = "2006-01-02"

type Expense struct {
	ID          uint
	ChatID      int64
	Date        string
	Amount      decimal.Decimal
	Category    string
	Description string
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DayTotal is one row of a per-day breakdown.
type DayTotal struct {
	Date  string
	Total decimal.Decimal
}

// DaySummary aggregates one user's expenses for a single date. Total is zero
// and ByCategory empty when nothing was recorded.
type DaySummary struct {
	Total      decimal.Decimal
	ByCategory []CategoryTotal
}
