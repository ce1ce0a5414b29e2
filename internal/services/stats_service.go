package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/period"
	"spendwise/internal/stats"
)

// statsService aggregates a user's spending for the stats endpoint.
type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(db *gorm.DB) StatsServicer {
	return &statsService{db: db}
}

// GetStats loads the user's full expense history once and runs every
// reduction over it in memory. The scalar aggregates and the category
// breakdown cover the resolved period; the monthly trend always covers the
// trailing six months of the full set.
func (s *statsService) GetStats(userID string, p period.Period, now time.Time) (*StatsReport, error) {
	if !p.Valid() {
		return nil, apperrors.ErrInvalidPeriod
	}

	var expenses []models.Expense
	if err := s.db.
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	inPeriod := stats.FilterByRange(expenses, period.Resolve(p, now))
	summary := stats.Summarize(inPeriod)

	return &StatsReport{
		TotalSum:          summary.TotalSum,
		AvgExpense:        summary.AvgExpense,
		MaxExpense:        summary.MaxExpense,
		TransactionCount:  summary.TransactionCount,
		CategoryBreakdown: stats.BreakdownByCategory(inPeriod),
		MonthlyTrend:      stats.MonthlyTrend(expenses, now),
	}, nil
}
