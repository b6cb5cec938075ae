package service

import (
	"context"
	"time"

	"github.com/Debanga-06/Expense-Tracker/internal/repository"
	"github.com/google/uuid"
)

// monthLabels maps 1-based month numbers to their fixed three-letter labels.
var monthLabels = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MonthlyTotal struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// AnalyticsService derives dashboard summaries from an owner's expenses.
// The sums themselves run as GROUP BY queries in the database.
type AnalyticsService struct {
	expenseRepo repository.ExpenseRepository
}

func NewAnalyticsService(expenseRepo repository.ExpenseRepository) *AnalyticsService {
	return &AnalyticsService{expenseRepo: expenseRepo}
}

func (s *AnalyticsService) CategoryTotals(ctx context.Context, ownerID uuid.UUID) ([]CategoryTotal, error) {
	rows, err := s.expenseRepo.SumByCategory(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	totals := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, CategoryTotal{Category: row.Category, Amount: row.Total})
	}
	return totals, nil
}

// MonthlyTotals returns per-month sums for expenses dated in year, in
// ascending calendar order. Months without expenses are omitted.
func (s *AnalyticsService) MonthlyTotals(ctx context.Context, ownerID uuid.UUID, year int) ([]MonthlyTotal, error) {
	rows, err := s.expenseRepo.SumByMonth(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}

	totals := make([]MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		totals = append(totals, MonthlyTotal{Month: monthLabels[row.Month-1], Amount: row.Total})
	}
	return totals, nil
}

// TotalExpenses returns the sum over all of the owner's expenses, 0 when
// there are none.
func (s *AnalyticsService) TotalExpenses(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	return s.expenseRepo.SumAll(ctx, ownerID)
}

// CurrentYear is the default year for the monthly dashboard view.
func CurrentYear() int {
	return time.Now().Year()
}
