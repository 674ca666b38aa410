// Package export turns meal history into a report file: either by
// downloading the server-rendered spreadsheet, or by rendering the
// locally held list when the server cannot be reached.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nutriapp/nutricli/internal/client/api"
	"github.com/nutriapp/nutricli/internal/client/history"
	"github.com/nutriapp/nutricli/internal/logging"
)

// DefaultFormat is the spreadsheet format requested unless the caller
// picks another one.
const DefaultFormat = "xlsx"

// ShareFunc hands a saved file to the platform's share/open facility.
// A nil ShareFunc means the platform has none and the saved location is
// simply reported.
type ShareFunc func(path string) error

// Filename names a report deterministically: full-history exports are
// tagged "all", anything with a bound is tagged "range".
func Filename(fromDate, toDate, format string) string {
	suffix := "all"
	if fromDate != "" || toDate != "" {
		suffix = "range"
	}
	return fmt.Sprintf("nutriapp_meals_%s.%s", suffix, format)
}

// Pipeline downloads server-side reports into dir.
type Pipeline struct {
	client api.Client
	dir    string
	share  ShareFunc
	log    logging.Logger
}

func NewPipeline(client api.Client, dir string, share ShareFunc, log logging.Logger) *Pipeline {
	return &Pipeline{client: client, dir: dir, share: share, log: log}
}

// Download requests the report for the given bounds (both empty = full
// history), writes it under the pipeline's directory and invokes the
// share hook if one is configured. It returns the saved path. Any
// failure aborts before the file exists; no partial file is retained.
func (p *Pipeline) Download(ctx context.Context, fromDate, toDate, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	if err := history.ValidateDate(fromDate); err != nil {
		return "", err
	}
	if err := history.ValidateDate(toDate); err != nil {
		return "", err
	}

	data, err := p.client.ExportHistory(ctx, format, fromDate, toDate)
	if err != nil {
		return "", fmt.Errorf("report request failed: %w", err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(p.dir, Filename(fromDate, toDate, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	p.log.Info(ctx, "report saved", "path", path, "bytes", len(data))

	if p.share != nil {
		if err := p.share(path); err != nil {
			return "", fmt.Errorf("failed to share report: %w", err)
		}
	}
	return path, nil
}
