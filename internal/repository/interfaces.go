package repository

import (
	"context"

	"github.com/Debanga-06/Expense-Tracker/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CategoryTotal is a per-category sum over an owner's expenses.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthTotal is a per-calendar-month sum; Month is 1-12.
type MonthTotal struct {
	Month int
	Total float64
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Expense, error)
	DeleteByOwnerAndID(ctx context.Context, ownerID, expenseID uuid.UUID) (bool, error)
	SumByCategory(ctx context.Context, ownerID uuid.UUID) ([]CategoryTotal, error)
	SumByMonth(ctx context.Context, ownerID uuid.UUID, year int) ([]MonthTotal, error)
	SumAll(ctx context.Context, ownerID uuid.UUID) (float64, error)
}

type Repositories struct {
	User    UserRepository
	Expense ExpenseRepository
}
