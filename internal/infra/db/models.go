package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type userModel struct {
	ChatID         int64  `gorm:"primaryKey"`
	Username       string `gorm:""`
	DisplayName    string `gorm:""`
	CurrencySymbol string `gorm:"not null;default:$"`
	CreatedAt      time.Time
}

func (userModel) TableName() string { return "users" }

type expenseModel struct {
	ID          uint            `gorm:"primaryKey"`
	ChatID      int64           `gorm:"index:idx_expenses_chat_date,priority:1;not null"`
	Date        string          `gorm:"index:idx_expenses_chat_date,priority:2;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	Category    string          `gorm:"not null"`
	Description string          `gorm:""`
}

func (expenseModel) TableName() string { return "expenses" }
