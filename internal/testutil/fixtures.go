package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"
	"spendwise/internal/period"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique external id and email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		ExternalID: fmt.Sprintf("ext_%d", n),
		Email:      fmt.Sprintf("user%d@test.com", n),
		Name:       fmt.Sprintf("Test User %d", n),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a custom category owned by the given user.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Icon:   "🧪",
		Color:  "#123456",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDefaultCategory creates a shared default category with no owner.
func CreateTestDefaultCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:      name,
		Icon:      "📦",
		Color:     "#6B7280",
		IsDefault: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test default category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense with the given amount on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      fmt.Sprintf("Test Expense %d", nextID()),
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget for the given period.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, p period.Period, amount float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: userID,
		Period: p,
		Amount: amount,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
