package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
)

// CSVSink writes the full row set to a single CSV file with the fixed
// 16-column header. An empty run still produces a header-only file.
type CSVSink struct {
	path   string
	logger *slog.Logger
}

func NewCSVSink(path string, logger *slog.Logger) *CSVSink {
	return &CSVSink{path: path, logger: logger}
}

func (s *CSVSink) Write(_ context.Context, rows []Row) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	s.logger.Info("report written", "path", s.path, "rows", len(rows))
	return nil
}
