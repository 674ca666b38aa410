package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nutriapp/nutricli/internal/client/api"
)

// Analyse sends a meal photo to the backend analysis and shows the
// detected foods. Nothing is persisted; the result is held in memory
// until the user confirms with "save" or replaces it with a new analysis.
func (a *App) Analyse(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	path, err := a.argOrPrompt(args, "Enter image path")
	if err != nil {
		return err
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	result, err := a.mealService.Analyse(ctx, filepath.Base(path), image)
	if err != nil {
		if errors.Is(err, api.ErrNoFoodDetected) {
			printlnFn("No food detected in the image. Try another photo.")
			return nil
		}
		return err
	}

	a.pending = &pendingAnalysis{filename: filepath.Base(path), image: image, result: result}

	for _, f := range result.Analysis.Foods {
		printlnFn(fmt.Sprintf("  %-24s %5.0f g  %5.0f kcal  P %5.1f  C %5.1f  F %5.1f",
			f.Name,
			f.EstimatedWeightG.Float64(),
			f.CaloriesKcal.Float64(),
			f.ProteinG.Float64(),
			f.CarbsG.Float64(),
			f.FatG.Float64()))
	}
	t := result.Analysis.Totals()
	printlnFn(fmt.Sprintf("Total: %.0f kcal, P %.1f g, C %.1f g, F %.1f g",
		t.Calories.Float64(), t.ProteinG.Float64(), t.CarbsG.Float64(), t.FatG.Float64()))
	if result.Recommendation != "" {
		printlnFn("Recommendation: " + result.Recommendation)
	}
	printlnFn("Type 'save' to log this meal.")
	return nil
}

// SaveMeal persists the last analysed meal. The pending analysis is
// dropped only after the server confirms the save.
func (a *App) SaveMeal(ctx context.Context) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}
	if a.pending == nil {
		printlnFn("Nothing to save. Run 'analyse' first.")
		return nil
	}

	meal, err := a.mealService.Save(ctx,
		a.pending.filename, a.pending.image,
		a.pending.result.Analysis, a.pending.result.Recommendation)
	if err != nil {
		return err
	}

	a.pending = nil
	printlnFn("Meal saved: " + meal.ID)
	return nil
}
