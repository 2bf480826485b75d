package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// ExportStore is the read surface of the roster export.
type ExportStore interface {
	db.WorkerStore
	db.SlotStore
}

// ExportRoster writes the month's roster to an .xlsx workbook for printing
// and sharing. Admin-only, like all roster-wide views.
func ExportRoster(ctx context.Context, store ExportStore, logger *zap.Logger, month, year int, callerRole model.Role, path string) error {
	if callerRole != model.RoleAdmin {
		return fmt.Errorf("%w: roster export requires the %s role", ErrForbidden, model.RoleAdmin)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", ErrInvalidInput, month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	views, err := store.ListSlotsFrom(ctx, first)
	if err != nil {
		return fmt.Errorf("failed to list slots: %w", err)
	}

	names, err := workerNames(ctx, store)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := first.Format("January 2006")
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Day", "Slot", "Assigned", "Covered By", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetCellStyle(sheet, "A1", "F1", style)
	}

	row := 2
	for _, v := range views {
		if !v.Date.Before(next) {
			break
		}
		values := []any{
			v.Date.Format("2006-01-02"),
			string(v.DayType),
			v.SlotNumber,
			nameOrBlank(names, v.WorkerID),
			nameOrBlank(names, v.CoveringWorkerID),
			string(v.Status),
		}
		for i, val := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("Roster exported",
		zap.String("path", path),
		zap.Int("rows", row-2))

	return nil
}

func workerNames(ctx context.Context, store db.WorkerStore) (map[string]string, error) {
	workers, err := store.GetActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	names := make(map[string]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.Name
	}
	return names, nil
}

func nameOrBlank(names map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	if name, ok := names[*id]; ok {
		return name
	}
	// Deactivated workers fall out of the directory query but may still
	// hold historical slots.
	return *id
}
