package models

import (
	"errors"
	"fmt"
	"strings"
)

// UserProfile is the server view of the signed-in user, including the
// daily targets derived from the profile (Mifflin-St Jeor on the
// backend). Targets are read-only on the client.
type UserProfile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	WeightKg         FlexFloat `json:"weight_kg"`
	HeightCm         FlexFloat `json:"height_cm"`
	Gender           string    `json:"gender"`
	ActivityLevel    string    `json:"activity_level"`
	Objective        string    `json:"objective"`
	RequiredCalories FlexFloat `json:"required_calories"`
	RequiredProteinG FlexFloat `json:"required_protein_g"`
	RequiredCarbsG   FlexFloat `json:"required_carbs_g"`
	RequiredFatG     FlexFloat `json:"required_fat_g"`
}

// Targets extracts the daily targets portion of the profile.
func (p UserProfile) Targets() DailyTargets {
	return DailyTargets{
		Calories: p.RequiredCalories,
		ProteinG: p.RequiredProteinG,
		CarbsG:   p.RequiredCarbsG,
		FatG:     p.RequiredFatG,
	}
}

// ProfileInput is the payload for POST /users and PUT /users/edit_profile.
// Activity level ids run 1 (sedentary) to 5 (very intense); objective ids
// are 1 gain muscle, 2 lose fat, 3 maintain.
type ProfileInput struct {
	Name            string  `json:"name"`
	Age             int     `json:"age"`
	WeightKg        float64 `json:"weight_kg"`
	HeightCm        float64 `json:"height_cm"`
	Gender          string  `json:"gender"`
	ActivityLevelID int     `json:"activity_level_id"`
	ObjectiveID     int     `json:"objective_id"`
}

var ErrInvalidProfile = errors.New("invalid profile")

// Validate checks the assembled input and reports every problem at once.
// A non-nil result must block submission.
func (in ProfileInput) Validate() error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name is required")
	}
	if in.Age < 1 || in.Age > 120 {
		problems = append(problems, "age must be between 1 and 120")
	}
	if in.WeightKg <= 0 {
		problems = append(problems, "weight must be positive")
	}
	if in.HeightCm <= 0 {
		problems = append(problems, "height must be positive")
	}
	switch strings.ToLower(in.Gender) {
	case "male", "female", "other":
	default:
		problems = append(problems, "gender must be male, female or other")
	}
	if in.ActivityLevelID < 1 || in.ActivityLevelID > 5 {
		problems = append(problems, "activity level must be between 1 and 5")
	}
	if in.ObjectiveID < 1 || in.ObjectiveID > 3 {
		problems = append(problems, "objective must be between 1 and 3")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(problems, "; "))
	}
	return nil
}
