package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nutriapp/nutricli/internal/client/models"
)

const sheetName = "Meals"

// WriteLocalXLSX renders meals into a spreadsheet at path, mirroring the
// server report's columns. Used when exporting from the cached history.
func WriteLocalXLSX(meals []models.Meal, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Date", "Calories (kcal)", "Protein (g)", "Carbs (g)", "Fat (g)", "Recommendation"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, m := range meals {
		values := []any{
			m.CreatedAt.Format(time.RFC3339),
			m.TotalCalories.Float64(),
			m.TotalProteinG.Float64(),
			m.TotalCarbsG.Float64(),
			m.TotalFatG.Float64(),
			m.Recommendation,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}
