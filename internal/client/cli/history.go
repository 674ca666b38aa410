package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nutriapp/nutricli/internal/client/history"
	"github.com/nutriapp/nutricli/internal/client/models"
	"github.com/nutriapp/nutricli/internal/client/progress"
)

// parseHistoryArgs turns REPL arguments into a range spec and sort order.
//
// Accepted tokens, in any order:
//
//	all | today | week | month      range preset
//	YYYY-MM-DD [YYYY-MM-DD]         custom bounds (from, then to)
//	date | calories | protein | carbs | fat   sort key
//	asc | desc                      sort direction
//
// Defaults: all history, sorted by date descending.
func parseHistoryArgs(args []string) (history.RangeSpec, history.SortKey, history.SortDir, error) {
	spec := history.RangeSpec{Preset: history.PresetAll}
	key := history.SortByDate
	dir := history.Descending

	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "all":
			spec.Preset = history.PresetAll
		case "today":
			spec.Preset = history.PresetToday
		case "week":
			spec.Preset = history.PresetThisWeek
		case "month":
			spec.Preset = history.PresetThisMonth
		case "date":
			key = history.SortByDate
		case "calories":
			key = history.SortByCalories
		case "protein":
			key = history.SortByProtein
		case "carbs":
			key = history.SortByCarbs
		case "fat":
			key = history.SortByFat
		case "asc":
			dir = history.Ascending
		case "desc":
			dir = history.Descending
		default:
			if err := history.ValidateDate(arg); err != nil {
				return spec, key, dir, fmt.Errorf("unknown argument %q", arg)
			}
			spec.Preset = history.PresetCustom
			if spec.FromDate == "" {
				spec.FromDate = arg
			} else if spec.ToDate == "" {
				spec.ToDate = arg
			} else {
				return spec, key, dir, fmt.Errorf("too many dates: %q", arg)
			}
		}
	}
	return spec, key, dir, nil
}

// History refreshes the meal list and prints the filtered, sorted view.
// When the backend is unreachable and a cached snapshot exists, the
// snapshot is shown and the app switches to offline mode.
func (a *App) History(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	spec, key, dir, err := parseHistoryArgs(args)
	if err != nil {
		return err
	}
	r, err := spec.Resolve(time.Now())
	if err != nil {
		return err
	}

	meals, fromCache, err := a.mealService.RefreshHistory(ctx)
	if err != nil {
		return err
	}
	if fromCache {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}

	filtered := history.Apply(meals, r, key, dir)
	if len(filtered) == 0 {
		printlnFn("No meals in the selected range.")
		return nil
	}

	for _, m := range filtered {
		printlnFn(formatMealLine(m))
	}
	printlnFn(fmt.Sprintf("%d meal(s)", len(filtered)))
	return nil
}

func formatMealLine(m models.Meal) string {
	return fmt.Sprintf("%s  %6.0f kcal  P %5.1f  C %5.1f  F %5.1f  %s",
		m.CreatedAt.Time.Format("2006-01-02 15:04"),
		m.TotalCalories.Float64(),
		m.TotalProteinG.Float64(),
		m.TotalCarbsG.Float64(),
		m.TotalFatG.Float64(),
		m.ID)
}

// Show fetches and displays a single meal with its food items.
func (a *App) Show(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := a.argOrPrompt(args, "Enter meal id to show")
	if err != nil {
		return err
	}

	detail, err := a.mealService.Detail(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(formatMealLine(detail.Meal))
	for _, item := range detail.Items {
		printlnFn(fmt.Sprintf("  %-24s %5.0f g  %5.0f kcal  P %5.1f  C %5.1f  F %5.1f",
			item.Name,
			item.EstimatedWeightG.Float64(),
			item.CaloriesKcal.Float64(),
			item.ProteinG.Float64(),
			item.CarbsG.Float64(),
			item.FatG.Float64()))
	}
	if detail.Meal.Recommendation != "" {
		printlnFn("Recommendation: " + detail.Meal.Recommendation)
	}
	return nil
}

// Delete removes a meal. The local state changes only after the server
// acknowledges the deletion.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	id, err := a.argOrPrompt(args, "Enter meal id to delete")
	if err != nil {
		return err
	}

	if err := a.mealService.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Day prints the totals of one calendar date against the daily targets.
// Without an argument it shows the current day.
func (a *App) Day(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	date := time.Now().Format("2006-01-02")
	if len(args) > 0 {
		date = args[0]
	}
	if err := history.ValidateDate(date); err != nil {
		return err
	}

	summary, err := a.mealService.DaySummary(ctx, date)
	if err != nil {
		return err
	}

	day := progress.Compute(summary.Totals, summary.Targets)
	printlnFn(fmt.Sprintf("%s: %d meal(s)", summary.Date, summary.MealCount))
	printlnFn("Calories " + renderAxis(day.Calories, "kcal"))
	printlnFn("Protein  " + renderAxis(day.Protein, "g"))
	printlnFn("Carbs    " + renderAxis(day.Carbs, "g"))
	printlnFn("Fat      " + renderAxis(day.Fat, "g"))
	return nil
}

// renderAxis draws a 20-cell gauge for one nutrient axis. The bar fill is
// capped at 100% while the printed percentage is not; overshot targets
// are marked with "over".
func renderAxis(a progress.Axis, unit string) string {
	const width = 20
	filled := int(a.Display / 100 * width)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)

	s := fmt.Sprintf("[%s] %3.0f%% %.0f/%.0f %s", bar, a.Percent, a.Current, a.Target, unit)
	if a.Target <= 0 {
		s = fmt.Sprintf("[%s]  --%% %.0f %s (no target)", bar, a.Current, unit)
	}
	if a.Overshoot {
		s += " over"
	}
	return s
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, os.Stdout)
}
