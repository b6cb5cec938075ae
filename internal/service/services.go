package service

import (
	"github.com/Debanga-06/Expense-Tracker/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Expense   *ExpenseService
	Analytics *AnalyticsService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User),
		Expense:   NewExpenseService(repos.Expense),
		Analytics: NewAnalyticsService(repos.Expense),
	}
}
