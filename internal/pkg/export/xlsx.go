package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rndpresence/presence-backend-go/internal/domain/report"
)

// WriteCombinedXLSX encodes an HR combined report as a single-sheet workbook.
func WriteCombinedXLSX(w io.Writer, rep report.CombinedReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Attendance %d-%d", rep.Period.Month, rep.Period.Year)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, title := range combinedHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rep.Rows {
		values := []interface{}{
			row.Name,
			row.WorkingDays,
			row.PresentDays,
			row.AbsentDays,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
