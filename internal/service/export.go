package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"

	"github.com/tidechart/asv-telemetry/internal/domain"
	"github.com/tidechart/asv-telemetry/internal/repo"
)

// ExportService assembles the flattened CSV export of a trip's readings.
type ExportService struct {
	readings repo.ReadingRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(r repo.ReadingRepo) *ExportService {
	return &ExportService{readings: r}
}

// ExportCSV returns the trip's readings as a complete CSV document, each row
// joined with the trip's path name and shifted to the caller's UTC offset.
//
// The header row is written unconditionally, so an empty trip still yields a
// valid, self-describing document. A decode failure on any row aborts the
// export; partial CSV output is never returned.
func (s *ExportService) ExportCSV(ctx context.Context, tripID uuid.UUID, offsetHours int) ([]byte, error) {
	rows, err := s.readings.ListForExport(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.ExportCSV: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error
	w.Write(domain.CSVHeader)
	for _, row := range rows {
		record, err := row.Record(offsetHours)
		if err != nil {
			return nil, fmt.Errorf("service.ExportService.ExportCSV: %w", err)
		}
		//nolint:errcheck
		w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("service.ExportService.ExportCSV: %w", err)
	}

	return buf.Bytes(), nil
}
