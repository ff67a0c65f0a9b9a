package domain

import "time"

type DestinationCategory string

const (
	CategoryBeach      DestinationCategory = "beach"
	CategoryMountain   DestinationCategory = "mountain"
	CategoryCity       DestinationCategory = "city"
	CategoryCultural   DestinationCategory = "cultural"
	CategoryAdventure  DestinationCategory = "adventure"
	CategoryRelaxation DestinationCategory = "relaxation"
)

func ParseDestinationCategory(s string) (DestinationCategory, bool) {
	switch DestinationCategory(s) {
	case CategoryBeach, CategoryMountain, CategoryCity, CategoryCultural, CategoryAdventure, CategoryRelaxation:
		return DestinationCategory(s), true
	}
	return "", false
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BudgetEstimate is the per-person estimate range: Budget is the lower
// bound, Luxury the upper.
type BudgetEstimate struct {
	Budget float64 `json:"budget"`
	Luxury float64 `json:"luxury"`
}

type Destination struct {
	ID                int64               `json:"id"`
	Name              string              `json:"name" validate:"required"`
	Description       string              `json:"description"`
	Country           string              `json:"country" validate:"required"`
	City              string              `json:"city,omitempty"`
	Category          DestinationCategory `json:"category"`
	Images            []string            `json:"images" gorm:"serializer:json"`
	Coordinates       *Coordinates        `json:"coordinates,omitempty" gorm:"serializer:json"`
	AverageRating     float64             `json:"average_rating"`
	TotalReviews      int                 `json:"total_reviews"`
	PopularActivities []string            `json:"popular_activities" gorm:"serializer:json"`
	BestTimeToVisit   string              `json:"best_time_to_visit,omitempty"`
	EstimatedBudget   *BudgetEstimate     `json:"estimated_budget,omitempty" gorm:"serializer:json"`
	IsActive          bool                `json:"is_active"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
