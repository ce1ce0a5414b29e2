package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db         *gorm.DB
	categories CategoryServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, categories CategoryServicer) ExpenseServicer {
	return &expenseService{db: db, categories: categories}
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// CreateExpense creates a new expense for the user. The category must be
// visible to the user; a missing date defaults to now.
func (s *expenseService) CreateExpense(
	userID, title string,
	amount float64,
	categoryID string,
	date *time.Time,
	description string,
) (*models.Expense, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense title is required")
	}
	if !validAmount(amount) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}

	if _, err := s.categories.GetVisibleByID(userID, categoryID); err != nil {
		return nil, err
	}

	expenseDate := time.Now()
	if date != nil {
		expenseDate = *date
	}

	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Title:       title,
		Amount:      amount,
		Date:        expenseDate,
		Description: description,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Return with the category joined, like every other expense read.
	return s.GetExpenseByID(userID, expense.ID)
}

// ListExpenses returns the user's expenses within the filter's date range,
// newest first, with categories joined. Search matches title or category
// name case-insensitively; CategoryID narrows to a single category.
func (s *expenseService) ListExpenses(userID string, filter ExpenseFilter) ([]models.Expense, error) {
	query := s.db.
		Where("expenses.user_id = ?", userID).
		Where("expenses.date BETWEEN ? AND ?", filter.Range.Start, filter.Range.End)

	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		query = query.
			Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
			Where("LOWER(expenses.title) LIKE ? OR LOWER(categories.name) LIKE ?", needle, needle)
	}
	if filter.CategoryID != "" {
		query = query.Where("expenses.category_id = ?", filter.CategoryID)
	}

	var expenses []models.Expense
	if err := query.
		Preload("Category").
		Order("expenses.date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user. Ownership is
// part of the query, so another user's expense is indistinguishable from a
// missing one.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.
		Preload("Category").
		Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates an existing expense's provided fields.
func (s *expenseService) UpdateExpense(userID, expenseID string, update ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense title is required")
		}
		updates["title"] = *update.Title
	}
	if update.Amount != nil {
		if !validAmount(*update.Amount) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
		}
		updates["amount"] = *update.Amount
	}
	if update.CategoryID != nil {
		if _, err := s.categories.GetVisibleByID(userID, *update.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *update.CategoryID
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetExpenseByID(userID, expenseID)
}

// DeleteExpense hard-deletes an expense. Deleting an already-gone expense
// reports not found.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
