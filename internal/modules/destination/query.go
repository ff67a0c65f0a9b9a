package destination

import (
	"sort"
	"strings"

	"travelhub/internal/domain"
)

// Sort keys accepted by SortBy.
const (
	SortRating     = "rating"
	SortPopular    = "popular"
	SortName       = "name"
	SortBudgetLow  = "budget-low"
	SortBudgetHigh = "budget-high"
)

// Filters narrows a destination set. Zero values mean "not set": an empty
// Category (or "all") matches everything, budget bounds of 0 are ignored.
type Filters struct {
	Category  string
	MinBudget float64
	MaxBudget float64
}

func (f Filters) hasBudget() bool { return f.MinBudget > 0 || f.MaxBudget > 0 }

// Filter returns the subset of list matching the search text and filters.
// A destination is kept iff:
//   - query is empty or a case-insensitive substring of its name,
//     description or country,
//   - the category filter is unset or equal to its category,
//   - the budget filter is unset, or the destination has no budget
//     estimate (estimate-less records always pass), or the estimate's
//     lower bound lies within the requested range.
func Filter(list []domain.Destination, query string, f Filters) []domain.Destination {
	out := make([]domain.Destination, 0, len(list))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, d := range list {
		if q != "" && !matchesQuery(d, q) {
			continue
		}
		if f.Category != "" && f.Category != "all" && string(d.Category) != f.Category {
			continue
		}
		if f.hasBudget() && !matchesBudget(d, f) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesQuery(d domain.Destination, q string) bool {
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Description), q) ||
		strings.Contains(strings.ToLower(d.Country), q)
}

func matchesBudget(d domain.Destination, f Filters) bool {
	if d.EstimatedBudget == nil {
		return true
	}
	budget := d.EstimatedBudget.Budget
	if f.MinBudget > 0 && budget < f.MinBudget {
		return false
	}
	if f.MaxBudget > 0 && budget > f.MaxBudget {
		return false
	}
	return true
}

// SortBy returns a sorted copy of list. The sort is stable, so equal keys
// keep their input order and re-sorting is a no-op. An unknown key returns
// the copy unordered.
func SortBy(list []domain.Destination, key string) []domain.Destination {
	sorted := make([]domain.Destination, len(list))
	copy(sorted, list)

	switch key {
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AverageRating > sorted[j].AverageRating
		})
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalReviews > sorted[j].TotalReviews
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case SortBudgetLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return budgetLowerBound(sorted[i]) < budgetLowerBound(sorted[j])
		})
	case SortBudgetHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return budgetLowerBound(sorted[i]) > budgetLowerBound(sorted[j])
		})
	}
	return sorted
}

// Destinations without an estimate sort as 0.
func budgetLowerBound(d domain.Destination) float64 {
	if d.EstimatedBudget == nil {
		return 0
	}
	return d.EstimatedBudget.Budget
}
