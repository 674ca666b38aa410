package models

// DailyTargets are the user's daily nutrition goals. A zero value on any
// axis means no target is set for it.
type DailyTargets struct {
	Calories FlexFloat `json:"required_calories"`
	ProteinG FlexFloat `json:"required_protein_g"`
	CarbsG   FlexFloat `json:"required_carbs_g"`
	FatG     FlexFloat `json:"required_fat_g"`
}

// DayTotals are the nutrients actually consumed on one calendar date.
type DayTotals struct {
	Calories FlexFloat `json:"calories"`
	ProteinG FlexFloat `json:"protein_g"`
	CarbsG   FlexFloat `json:"carbs_g"`
	FatG     FlexFloat `json:"fat_g"`
}

// DaySummary is the payload of GET /meals/day: the server-computed
// aggregate of one calendar date against the user's targets.
type DaySummary struct {
	Date      string       `json:"date"`
	Timezone  string       `json:"timezone"`
	Targets   DailyTargets `json:"targets"`
	Totals    DayTotals    `json:"totals"`
	MealCount int          `json:"meal_count"`
	Meals     []Meal       `json:"meals"`
}
