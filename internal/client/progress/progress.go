// Package progress computes percent-of-target values for the daily
// summary view: calories, protein, carbs and fat against the user's
// daily targets.
package progress

import "github.com/nutriapp/nutricli/internal/client/models"

// Axis is the progress of one nutrient axis.
//
// Percent is the raw ratio (current/target*100, 0 when no target is
// set); Display is the same value clamped to [0,100] for gauges.
// Overshoot is computed on the unclamped comparison, so a 150% day
// reads Display=100, Overshoot=true.
type Axis struct {
	Current   float64
	Target    float64
	Percent   float64
	Display   float64
	Overshoot bool
}

// Day is the per-axis progress of one calendar date.
type Day struct {
	Calories Axis
	Protein  Axis
	Carbs    Axis
	Fat      Axis
}

// ComputeAxis derives a single axis. A zero or negative target means no
// target is set: percent stays 0 and overshoot is never flagged.
func ComputeAxis(current, target float64) Axis {
	a := Axis{Current: current, Target: target}
	if target > 0 {
		a.Percent = current / target * 100
		a.Overshoot = current > target
	}
	a.Display = a.Percent
	if a.Display < 0 {
		a.Display = 0
	}
	if a.Display > 100 {
		a.Display = 100
	}
	return a
}

// Compute combines a day's totals with the user's targets.
func Compute(totals models.DayTotals, targets models.DailyTargets) Day {
	return Day{
		Calories: ComputeAxis(totals.Calories.Float64(), targets.Calories.Float64()),
		Protein:  ComputeAxis(totals.ProteinG.Float64(), targets.ProteinG.Float64()),
		Carbs:    ComputeAxis(totals.CarbsG.Float64(), targets.CarbsG.Float64()),
		Fat:      ComputeAxis(totals.FatG.Float64(), targets.FatG.Float64()),
	}
}
