package postgres

import (
	"context"

	"github.com/Debanga-06/Expense-Tracker/internal/domain"
	"github.com/Debanga-06/Expense-Tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *expenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// DeleteByOwnerAndID deletes only rows owned by ownerID. The bool result
// reports whether a row was actually deleted, so callers cannot tell a
// missing expense apart from one owned by somebody else.
func (r *expenseRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, expenseID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", expenseID, ownerID).
		Delete(&domain.Expense{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *expenseRepository) SumByCategory(ctx context.Context, ownerID uuid.UUID) ([]repository.CategoryTotal, error) {
	var totals []repository.CategoryTotal
	err := r.db.WithContext(ctx).
		Model(&domain.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("owner_id = ?", ownerID).
		Group("category").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *expenseRepository) SumByMonth(ctx context.Context, ownerID uuid.UUID, year int) ([]repository.MonthTotal, error) {
	var totals []repository.MonthTotal
	err := r.db.WithContext(ctx).
		Model(&domain.Expense{}).
		Select("EXTRACT(MONTH FROM date)::int AS month, SUM(amount) AS total").
		Where("owner_id = ? AND EXTRACT(YEAR FROM date) = ?", ownerID, year).
		Group("month").
		Order("month ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *expenseRepository) SumAll(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("owner_id = ?", ownerID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
