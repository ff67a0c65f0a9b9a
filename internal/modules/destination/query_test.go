package destination

import (
	"testing"

	"travelhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testDestinations() []domain.Destination {
	return []domain.Destination{
		{
			ID:            1,
			Name:          "Santorini",
			Description:   "Whitewashed villages over the Aegean",
			Country:       "Greece",
			Category:      domain.CategoryBeach,
			AverageRating: 4.8,
			TotalReviews:  320,
			EstimatedBudget: &domain.BudgetEstimate{
				Budget: 1500,
				Luxury: 4000,
			},
		},
		{
			ID:            2,
			Name:          "Chamonix",
			Description:   "Alpine climbing below Mont Blanc",
			Country:       "France",
			Category:      domain.CategoryMountain,
			AverageRating: 4.6,
			TotalReviews:  210,
			EstimatedBudget: &domain.BudgetEstimate{
				Budget: 900,
				Luxury: 2500,
			},
		},
		{
			ID:            3,
			Name:          "Kyoto",
			Description:   "Temples and tea houses",
			Country:       "Japan",
			Category:      domain.CategoryCultural,
			AverageRating: 4.9,
			TotalReviews:  510,
			EstimatedBudget: &domain.BudgetEstimate{
				Budget: 1200,
				Luxury: 3000,
			},
		},
		{
			ID:            4,
			Name:          "Banff",
			Description:   "Turquoise lakes in the Rockies",
			Country:       "Canada",
			Category:      domain.CategoryMountain,
			AverageRating: 4.7,
			TotalReviews:  180,
			// no estimate on purpose
		},
	}
}

func TestFilter_EmptyQueryAndFilters_ReturnsAll(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "", Filters{})

	assert.Len(t, out, len(list))
	for i := range list {
		assert.Equal(t, list[i].ID, out[i].ID)
	}
}

func TestFilter_QueryMatchesNameDescriptionCountry(t *testing.T) {
	list := testDestinations()

	byName := Filter(list, "kyoto", Filters{})
	assert.Len(t, byName, 1)
	assert.Equal(t, int64(3), byName[0].ID)

	byDescription := Filter(list, "alpine", Filters{})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, int64(2), byDescription[0].ID)

	byCountry := Filter(list, "greece", Filters{})
	assert.Len(t, byCountry, 1)
	assert.Equal(t, int64(1), byCountry[0].ID)
}

func TestFilter_QueryCaseInsensitive(t *testing.T) {
	list := testDestinations()

	lower := Filter(list, "santorini", Filters{})
	upper := Filter(list, "SANTORINI", Filters{})
	mixed := Filter(list, "SaNtOrInI", Filters{})

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
	assert.Len(t, lower, 1)
}

func TestFilter_CategoryAllMatchesEverything(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "", Filters{Category: "all"})

	assert.Len(t, out, len(list))
}

func TestFilter_CategoryNarrows(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "", Filters{Category: "mountain"})

	assert.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, int64(4), out[1].ID)
}

func TestFilter_BudgetRange(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "", Filters{MinBudget: 1000, MaxBudget: 1300})

	// Kyoto (1200) is in range, Banff has no estimate and always passes
	assert.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(4), out[1].ID)
}

func TestFilter_MissingEstimatePassesBudgetFilter(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "", Filters{MinBudget: 5000, MaxBudget: 9000})

	assert.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ID)
}

func TestFilter_ZeroBoundsMeanUnset(t *testing.T) {
	list := testDestinations()

	minOnly := Filter(list, "", Filters{MinBudget: 1000})
	assert.Len(t, minOnly, 3) // Santorini, Kyoto, Banff

	maxOnly := Filter(list, "", Filters{MaxBudget: 1000})
	assert.Len(t, maxOnly, 2) // Chamonix, Banff
}

func TestFilter_QueryAndFiltersCombine(t *testing.T) {
	list := testDestinations()

	out := Filter(list, "lakes", Filters{Category: "mountain", MinBudget: 100, MaxBudget: 200})

	// Banff matches the text, the category, and passes budget with no estimate
	assert.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ID)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := testDestinations()

	Filter(list, "kyoto", Filters{})

	assert.Equal(t, testDestinations(), list)
}

func TestSortBy_Rating(t *testing.T) {
	out := SortBy(testDestinations(), SortRating)

	assert.Equal(t, int64(3), out[0].ID) // 4.9
	assert.Equal(t, int64(1), out[1].ID) // 4.8
	assert.Equal(t, int64(4), out[2].ID) // 4.7
	assert.Equal(t, int64(2), out[3].ID) // 4.6
}

func TestSortBy_Popular(t *testing.T) {
	out := SortBy(testDestinations(), SortPopular)

	assert.Equal(t, int64(3), out[0].ID) // 510 reviews
	assert.Equal(t, int64(1), out[1].ID) // 320
	assert.Equal(t, int64(2), out[2].ID) // 210
	assert.Equal(t, int64(4), out[3].ID) // 180
}

func TestSortBy_Name(t *testing.T) {
	out := SortBy(testDestinations(), SortName)

	assert.Equal(t, "Banff", out[0].Name)
	assert.Equal(t, "Chamonix", out[1].Name)
	assert.Equal(t, "Kyoto", out[2].Name)
	assert.Equal(t, "Santorini", out[3].Name)
}

func TestSortBy_BudgetLowTreatsMissingAsZero(t *testing.T) {
	out := SortBy(testDestinations(), SortBudgetLow)

	assert.Equal(t, int64(4), out[0].ID) // no estimate sorts first
	assert.Equal(t, int64(2), out[1].ID) // 900
	assert.Equal(t, int64(3), out[2].ID) // 1200
	assert.Equal(t, int64(1), out[3].ID) // 1500
}

func TestSortBy_BudgetHigh(t *testing.T) {
	out := SortBy(testDestinations(), SortBudgetHigh)

	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
	assert.Equal(t, int64(2), out[2].ID)
	assert.Equal(t, int64(4), out[3].ID)
}

func TestSortBy_UnknownKeyKeepsOrder(t *testing.T) {
	list := testDestinations()

	out := SortBy(list, "bogus")

	assert.Equal(t, list, out)
}

func TestSortBy_StableForEqualKeys(t *testing.T) {
	list := []domain.Destination{
		{ID: 1, Name: "A", AverageRating: 4.5},
		{ID: 2, Name: "B", AverageRating: 4.5},
		{ID: 3, Name: "C", AverageRating: 4.5},
	}

	out := SortBy(list, SortRating)

	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, int64(3), out[2].ID)
}

func TestSortBy_Idempotent(t *testing.T) {
	once := SortBy(testDestinations(), SortRating)
	twice := SortBy(once, SortRating)

	assert.Equal(t, once, twice)
}

func TestSortBy_ReturnsCopy(t *testing.T) {
	list := testDestinations()

	out := SortBy(list, SortName)
	out[0].Name = "mutated"

	assert.Equal(t, "Santorini", list[0].Name)
}
