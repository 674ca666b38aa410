package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nutriapp/nutricli/internal/client/export"
	"github.com/nutriapp/nutricli/internal/client/history"
)

// parseExportArgs splits REPL arguments into date bounds and a format.
// Date-shaped tokens become from, then to; anything else is the format.
func parseExportArgs(args []string) (fromDate, toDate, format string, err error) {
	for _, arg := range args {
		if history.ValidateDate(arg) == nil {
			if fromDate == "" {
				fromDate = arg
				continue
			}
			if toDate == "" {
				toDate = arg
				continue
			}
			return "", "", "", fmt.Errorf("too many dates: %q", arg)
		}
		if format != "" {
			return "", "", "", fmt.Errorf("unknown argument %q", arg)
		}
		format = strings.ToLower(arg)
	}
	return fromDate, toDate, format, nil
}

// Export downloads a server-rendered history report. Without date
// arguments the full history is exported.
func (a *App) Export(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	fromDate, toDate, format, err := parseExportArgs(args)
	if err != nil {
		return err
	}

	path, err := a.exporter.Download(ctx, fromDate, toDate, format)
	if err != nil {
		return err
	}
	printlnFn("Report saved to: " + path)
	return nil
}

// ExportLocal renders a spreadsheet from the locally held meal list,
// without contacting the backend. It accepts the same range arguments as
// the history command and is the export of last resort in offline mode.
func (a *App) ExportLocal(ctx context.Context, args []string) error {
	if !a.sessionAlive() {
		printlnFn("Please log in first.")
		return nil
	}

	spec, _, _, err := parseHistoryArgs(args)
	if err != nil {
		return err
	}
	r, err := spec.Resolve(time.Now())
	if err != nil {
		return err
	}

	meals := a.mealService.Current()
	if len(meals) == 0 {
		printlnFn("No local history. Run 'history' first.")
		return nil
	}

	filtered := history.Apply(meals, r, history.SortByDate, history.Descending)
	if len(filtered) == 0 {
		printlnFn("No meals in the selected range.")
		return nil
	}

	fromDate, toDate := spec.FromDate, spec.ToDate
	if spec.Preset != history.PresetAll && spec.Preset != history.PresetCustom {
		fromDate = r.From.Format("2006-01-02")
		toDate = r.To.Format("2006-01-02")
	}

	if err := os.MkdirAll(a.config.ExportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(a.config.ExportDir, export.Filename(fromDate, toDate, export.DefaultFormat))
	if err := export.WriteLocalXLSX(filtered, path); err != nil {
		return err
	}
	printlnFn("Report saved to: " + path)
	return nil
}
