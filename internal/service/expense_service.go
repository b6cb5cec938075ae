package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Debanga-06/Expense-Tracker/internal/domain"
	"github.com/Debanga-06/Expense-Tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

type AddExpenseInput struct {
	Amount      float64
	Category    string
	Date        string
	Description string
}

func (s *ExpenseService) Add(ctx context.Context, ownerID uuid.UUID, input AddExpenseInput) (*domain.Expense, error) {
	if input.Amount <= 0 || math.IsInf(input.Amount, 0) || math.IsNaN(input.Amount) {
		return nil, domain.ErrInvalidAmount
	}
	if input.Category == "" {
		return nil, domain.ErrMissingCategory
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	expense := &domain.Expense{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        datatypes.Date(date),
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// List returns the owner's expenses ordered by date descending. An owner
// with no expenses gets an empty slice, never an error.
func (s *ExpenseService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Expense, error) {
	return s.expenseRepo.GetByOwner(ctx, ownerID)
}

// Delete removes the expense only when it belongs to ownerID. A missing id
// and an id owned by another user both report ErrExpenseNotFound.
func (s *ExpenseService) Delete(ctx context.Context, ownerID, expenseID uuid.UUID) error {
	deleted, err := s.expenseRepo.DeleteByOwnerAndID(ctx, ownerID, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}
