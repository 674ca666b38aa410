// Package models defines the wire types exchanged with the nutriapp
// backend. The client never constructs Meal records itself; it decodes
// them, renders them, and hands them back untouched.
package models

// Meal is one logged eating event with its aggregate nutrient totals.
// Totals are maintained server-side as the sum of the meal's items.
type Meal struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CreatedAt      Timestamp `json:"date_creation"`
	ImageURL       string    `json:"img_url"`
	Recommendation string    `json:"recommendation"`
	TotalCalories  FlexFloat `json:"total_calories"`
	TotalProteinG  FlexFloat `json:"total_protein_g"`
	TotalCarbsG    FlexFloat `json:"total_carbs_g"`
	TotalFatG      FlexFloat `json:"total_fat_g"`
}

// MealItem is one food component of a meal. Items only exist within a
// meal detail response and never outlive it.
type MealItem struct {
	Name             string    `json:"name"`
	EstimatedWeightG FlexFloat `json:"estimated_weight_g"`
	CaloriesKcal     FlexFloat `json:"calories_kcal"`
	ProteinG         FlexFloat `json:"protein_g"`
	CarbsG           FlexFloat `json:"carbs_g"`
	FatG             FlexFloat `json:"fat_g"`
}

// MealDetail is the payload of GET /history_meals/{id}.
type MealDetail struct {
	Meal  Meal       `json:"meal"`
	Items []MealItem `json:"items"`
}
