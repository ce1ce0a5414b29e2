package services

import (
	"time"

	"spendwise/internal/models"
	"spendwise/internal/period"
	"spendwise/internal/stats"
)

// Identity is what the external identity provider asserts about the caller.
type Identity struct {
	ExternalID string
	Email      string
	Name       string
	ImageURL   string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	// ResolveLocalUser returns the local user for an external identity,
	// creating it on first sight. The call is idempotent and safe to run
	// once per request.
	ResolveLocalUser(identity Identity) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	// ListForUser returns the union of default categories and the user's
	// custom categories, sorted by name.
	ListForUser(userID string) ([]models.Category, error)
	CreateCustom(userID, name, icon, color string) (*models.Category, error)
	// GetVisibleByID returns the category if it is a default or owned by the
	// user; anything else is not found.
	GetVisibleByID(userID, categoryID string) (*models.Category, error)
	// SeedDefaults installs the shared default categories. Re-running updates
	// icon/color of existing defaults by name instead of duplicating them.
	SeedDefaults(defaults []models.Category) error
}

// ExpenseFilter holds the server-side filters for listing expenses.
type ExpenseFilter struct {
	Range      period.Range
	Search     string
	CategoryID string
}

// ExpenseUpdate holds the optional fields of an expense update. Nil fields
// are left unchanged.
type ExpenseUpdate struct {
	Title       *string
	Amount      *float64
	CategoryID  *string
	Date        *time.Time
	Description *string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, title string, amount float64, categoryID string, date *time.Time, description string) (*models.Expense, error)
	ListExpenses(userID string, filter ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	// GetBudget returns the budget for the period, or a zero-amount
	// placeholder when none has been set, so callers never see a 404.
	GetBudget(userID string, p period.Period) (*models.Budget, error)
	// SetBudget upserts the budget keyed on (user, period).
	SetBudget(userID string, p period.Period, amount float64) (*models.Budget, error)
	GetUsage(userID string, p period.Period, now time.Time) (*stats.Usage, error)
}

// StatsReport is the aggregated view of a user's spending for one period.
type StatsReport struct {
	TotalSum          float64               `json:"totalSum"`
	AvgExpense        float64               `json:"avgExpense"`
	MaxExpense        float64               `json:"maxExpense"`
	TransactionCount  int                   `json:"transactionCount"`
	CategoryBreakdown []stats.CategoryTotal `json:"categoryBreakdown"`
	MonthlyTrend      []stats.TrendPoint    `json:"monthlyTrend"`
}

// StatsServicer defines the contract for the stats endpoint.
type StatsServicer interface {
	GetStats(userID string, p period.Period, now time.Time) (*StatsReport, error)
}
