package models

import "time"

// Expense is a single dated, categorized money-out record owned by a user.
// Amount is always strictly positive. Deletes are hard deletes.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index:idx_expenses_user_date" json:"userId"`
	CategoryID  string    `gorm:"type:uuid;not null" json:"categoryId"`
	Title       string    `gorm:"not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"not null;index:idx_expenses_user_date" json:"date"`
	Description string    `json:"description"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
