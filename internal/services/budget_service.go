package services

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/period"
	"spendwise/internal/stats"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns the user's budget for the period. When none has been set
// yet it returns a zero-amount placeholder instead of not-found, so clients
// can always render a budget card.
func (s *budgetService) GetBudget(userID string, p period.Period) (*models.Budget, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	var budget models.Budget
	err := s.db.Where("user_id = ? AND period = ?", userID, p).First(&budget).Error
	if err == nil {
		return &budget, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Budget{UserID: userID, Period: p, Amount: 0}, nil
	}
	return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// SetBudget upserts the budget keyed on (user, period): the first call
// creates the row, later calls replace the amount in place.
func (s *budgetService) SetBudget(userID string, p period.Period, amount float64) (*models.Budget, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}
	if amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, apperrors.ErrNegativeBudget
	}

	budget := &models.Budget{UserID: userID, Period: p, Amount: amount}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "period"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"amount": amount, "updated_at": time.Now()}),
	}).Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Re-read so the caller sees the surviving row, not the candidate insert.
	var saved models.Budget
	if err := s.db.Where("user_id = ? AND period = ?", userID, p).First(&saved).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}

// GetUsage calculates spending against the budget for the period containing
// now. The spend window comes from the same period resolver the expense
// filter uses, so utilization never disagrees with the list view.
func (s *budgetService) GetUsage(userID string, p period.Period, now time.Time) (*stats.Usage, error) {
	budget, err := s.GetBudget(userID, p)
	if err != nil {
		return nil, err
	}

	r := period.Resolve(p, now)

	var spent float64
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, r.Start, r.End).
		Scan(&spent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	usage := stats.ComputeUsage(spent, budget.Amount)
	return &usage, nil
}
