package destination

import "travelhub/internal/domain"

type ListQuery struct {
	Page      int     `form:"page"`
	Limit     int     `form:"limit"`
	Sort      string  `form:"sort"`
	Country   string  `form:"country"`
	Category  string  `form:"category"`
	Q         string  `form:"q"`
	MinBudget float64 `form:"minBudget"`
	MaxBudget float64 `form:"maxBudget"`
}

type CreateDestinationRequest struct {
	Name              string                 `json:"name" binding:"required"`
	Description       string                 `json:"description"`
	Country           string                 `json:"country" binding:"required"`
	City              string                 `json:"city"`
	Category          string                 `json:"category" binding:"required"`
	Images            []string               `json:"images"`
	Coordinates       *domain.Coordinates    `json:"coordinates"`
	PopularActivities []string               `json:"popular_activities"`
	BestTimeToVisit   string                 `json:"best_time_to_visit"`
	EstimatedBudget   *domain.BudgetEstimate `json:"estimated_budget"`
}

type UpdateDestinationRequest struct {
	Name              *string                `json:"name"`
	Description       *string                `json:"description"`
	Country           *string                `json:"country"`
	City              *string                `json:"city"`
	Category          *string                `json:"category"`
	Images            []string               `json:"images"`
	Coordinates       *domain.Coordinates    `json:"coordinates"`
	PopularActivities []string               `json:"popular_activities"`
	BestTimeToVisit   *string                `json:"best_time_to_visit"`
	EstimatedBudget   *domain.BudgetEstimate `json:"estimated_budget"`
	IsActive          *bool                  `json:"is_active"`
}
