package models

import "spendwise/internal/period"

// Budget is a spending target for one period type. A user holds at most one
// budget per period; setting it again replaces the amount in place.
type Budget struct {
	Base
	UserID string        `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_period" json:"userId"`
	Period period.Period `gorm:"not null;uniqueIndex:idx_budgets_user_period" json:"period"`
	Amount float64       `gorm:"not null" json:"amount"`
}
