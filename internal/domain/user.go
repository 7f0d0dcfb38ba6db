package domain

import "time"

// User is an authorized chat. The existence of the row is the authorization
// predicate: there is no separate flag.
type User struct {
	ChatID         int64
	Username       string
	DisplayName    string
	CurrencySymbol string
	CreatedAt      time.Time
}
