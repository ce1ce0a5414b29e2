// Package stats is the aggregation engine: pure reductions over a user's
// expenses. Both the stats endpoint and budget utilization are computed
// here so there is a single implementation of each reduction.
package stats

import (
	"sort"
	"strings"
	"time"

	"spendwise/internal/models"
	"spendwise/internal/period"
)

// TrendMonths is the number of calendar months in the monthly trend,
// counting the current month.
const TrendMonths = 6

// Summary holds the scalar aggregates for a filtered expense set.
type Summary struct {
	TotalSum         float64 `json:"totalSum"`
	AvgExpense       float64 `json:"avgExpense"`
	MaxExpense       float64 `json:"maxExpense"`
	TransactionCount int     `json:"transactionCount"`
}

// CategoryTotal is one row of the category breakdown.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
}

// TrendPoint is one month of the trailing monthly trend.
type TrendPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Usage is the spend-to-budget derivation for one period.
type Usage struct {
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	UsedPct    float64 `json:"usedPct"`
	OverBudget bool    `json:"isOverBudget"`
}

// FilterByRange keeps expenses whose date falls within r, boundary-inclusive.
func FilterByRange(expenses []models.Expense, r period.Range) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// FilterBySearch keeps expenses whose title or category name contains term,
// case-insensitively. An empty term keeps everything.
func FilterBySearch(expenses []models.Expense, term string) []models.Expense {
	if term == "" {
		return expenses
	}
	needle := strings.ToLower(term)
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Category.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Summarize reduces a filtered expense set to its scalar aggregates.
// The empty set yields all zeros; average never divides by zero.
func Summarize(expenses []models.Expense) Summary {
	s := Summary{TransactionCount: len(expenses)}
	for _, e := range expenses {
		s.TotalSum += e.Amount
		if e.Amount > s.MaxExpense {
			s.MaxExpense = e.Amount
		}
	}
	if s.TransactionCount > 0 {
		s.AvgExpense = s.TotalSum / float64(s.TransactionCount)
	}
	return s
}

// BreakdownByCategory groups expenses by category, sums amounts per group,
// and joins category metadata from the preloaded association. Expenses whose
// category could not be resolved fall into an "Unknown" placeholder instead
// of failing. Groups with a non-positive total are dropped and the result is
// ranked by total descending (name ascending on ties, for determinism).
func BreakdownByCategory(expenses []models.Expense) []CategoryTotal {
	groups := make(map[string]*CategoryTotal)
	for _, e := range expenses {
		g, ok := groups[e.CategoryID]
		if !ok {
			g = &CategoryTotal{CategoryID: e.CategoryID}
			if e.Category.ID != "" {
				g.Name = e.Category.Name
				g.Icon = e.Category.Icon
				g.Color = e.Category.Color
			} else {
				g.Name = "Unknown"
				g.Icon = "?"
				g.Color = "#cccccc"
			}
			groups[e.CategoryID] = g
		}
		g.Total += e.Amount
	}

	out := make([]CategoryTotal, 0, len(groups))
	for _, g := range groups {
		if g.Total > 0 {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MonthlyTrend sums expenses per calendar month for the trailing TrendMonths
// months including now's month. It always returns exactly TrendMonths points,
// oldest to newest, with zero totals for empty months. The input is the full
// expense set: the trend is never filtered by the active period.
func MonthlyTrend(expenses []models.Expense, now time.Time) []TrendPoint {
	type ym struct {
		year  int
		month time.Month
	}

	totals := make(map[ym]float64, len(expenses))
	for _, e := range expenses {
		totals[ym{e.Date.Year(), e.Date.Month()}] += e.Amount
	}

	points := make([]TrendPoint, 0, TrendMonths)
	// Anchor to the first of the month so AddDate cannot skip short months.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := TrendMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		points = append(points, TrendPoint{
			Month: m.Format("Jan"),
			Total: totals[ym{m.Year(), m.Month()}],
		})
	}
	return points
}

// ComputeUsage derives budget utilization from total spend and the budget
// amount for the active period. UsedPct is 0 whenever the budget amount is 0,
// regardless of spend. Remaining may go negative to signal overage.
func ComputeUsage(spent, amount float64) Usage {
	u := Usage{
		Amount:     amount,
		Spent:      spent,
		Remaining:  amount - spent,
		OverBudget: spent > amount,
	}
	if amount > 0 {
		u.UsedPct = spent / amount * 100
	}
	return u
}
