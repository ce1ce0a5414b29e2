package models

// Category is a spending category an expense is recorded against.
// Default categories are shared by all users and have no owner (UserID is
// NULL); custom categories belong to exactly one user.
type Category struct {
	Base
	UserID    *string `gorm:"type:uuid;index" json:"userId,omitempty"`
	Name      string  `gorm:"not null" json:"name"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	IsDefault bool    `gorm:"not null;default:false" json:"isDefault"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
