package models

// DetectedFood is one food item recognized by the remote image analysis.
// Field names follow the analysis service's output.
type DetectedFood struct {
	Name             string    `json:"nombre"`
	EstimatedWeightG FlexFloat `json:"cantidad_estimada_gramos"`
	CaloriesKcal     FlexFloat `json:"calorias"`
	ProteinG         FlexFloat `json:"proteinas_g"`
	CarbsG           FlexFloat `json:"carbohidratos_g"`
	FatG             FlexFloat `json:"grasas_g"`
}

// Analysis is the food list returned by POST /analyse_meal. It exists only
// in memory between the analysis call and a confirmed save.
type Analysis struct {
	Foods []DetectedFood `json:"alimentos"`
}

// AnalysisResult is the full payload of POST /analyse_meal.
type AnalysisResult struct {
	Analysis       Analysis `json:"analysis"`
	Recommendation string   `json:"recommendation"`
}

// Totals sums the detected foods into a pre-save DayTotals-shaped record.
func (a Analysis) Totals() DayTotals {
	var t DayTotals
	for _, f := range a.Foods {
		t.Calories += f.CaloriesKcal
		t.ProteinG += f.ProteinG
		t.CarbsG += f.CarbsG
		t.FatG += f.FatG
	}
	return t
}

// Empty reports whether the analysis detected no food at all.
func (a Analysis) Empty() bool { return len(a.Foods) == 0 }
