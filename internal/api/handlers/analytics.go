package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/Debanga-06/Expense-Tracker/internal/api/middleware"
	"github.com/Debanga-06/Expense-Tracker/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

type AnalyticsResponse struct {
	TotalExpenses float64                 `json:"total_expenses"`
	CategoryData  []service.CategoryTotal `json:"category_data"`
	MonthlyData   []service.MonthlyTotal  `json:"monthly_data"`
}

// Get returns the dashboard summary: per-category totals, per-month totals
// for the requested year (defaults to the current one) and the grand total.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	year := service.CurrentYear()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	categoryData, err := h.analyticsService.CategoryTotals(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR [analytics.Get] category totals: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	monthlyData, err := h.analyticsService.MonthlyTotals(r.Context(), identity.UserID, year)
	if err != nil {
		log.Printf("ERROR [analytics.Get] monthly totals: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	total, err := h.analyticsService.TotalExpenses(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR [analytics.Get] total: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyticsResponse{
		TotalExpenses: total,
		CategoryData:  categoryData,
		MonthlyData:   monthlyData,
	})
}
