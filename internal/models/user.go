package models

// User is the local record for an externally authenticated identity.
// It is created lazily the first time the identity provider presents an
// external id the API has not seen before.
type User struct {
	Base
	ExternalID string `gorm:"uniqueIndex;not null" json:"externalId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`

	Categories []Category `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Expenses   []Expense  `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets    []Budget   `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}
