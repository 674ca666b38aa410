package history

import (
	"sort"

	"github.com/nutriapp/nutricli/internal/client/models"
)

// SortKey selects the primary ordering of the filtered list.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByCalories SortKey = "calories"
	SortByProtein  SortKey = "protein"
	SortByCarbs    SortKey = "carbs"
	SortByFat      SortKey = "fat"
)

// SortDir is the direction of the primary key comparison.
type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

// Apply filters meals to those whose creation time falls within r, then
// orders them by key/dir. Ties on the primary key always break by
// descending creation time, so output order is deterministic regardless
// of input order. The input slice is never modified.
func Apply(meals []models.Meal, r Range, key SortKey, dir SortDir) []models.Meal {
	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if r.Contains(m.CreatedAt.Time) {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var cmp int
		switch key {
		case SortByCalories:
			cmp = compareFloat(a.TotalCalories.Float64(), b.TotalCalories.Float64())
		case SortByProtein:
			cmp = compareFloat(a.TotalProteinG.Float64(), b.TotalProteinG.Float64())
		case SortByCarbs:
			cmp = compareFloat(a.TotalCarbsG.Float64(), b.TotalCarbsG.Float64())
		case SortByFat:
			cmp = compareFloat(a.TotalFatG.Float64(), b.TotalFatG.Float64())
		default: // SortByDate
			cmp = a.CreatedAt.Compare(b.CreatedAt.Time)
		}
		if cmp == 0 {
			// Later meals first on ties, whatever the chosen direction.
			return a.CreatedAt.After(b.CreatedAt.Time)
		}
		if dir == Ascending {
			return cmp < 0
		}
		return cmp > 0
	})

	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
