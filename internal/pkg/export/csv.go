// Package export renders composed report rows into downloadable formats.
// The report composer itself never touches bytes; everything here is a pure
// encoding of already-built rows.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rndpresence/presence-backend-go/internal/domain/report"
)

var combinedHeader = []string{"Project_Staff_Name", "Total Working Days", "Present Days", "Absent Days"}

var liveHeader = []string{"Username", "Working Days", "Present Days", "Absent Days"}

// WriteCombinedCSV encodes an HR combined report. Present and absent days
// keep one decimal place.
func WriteCombinedCSV(w io.Writer, rep report.CombinedReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(combinedHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rep.Rows {
		record := []string{
			row.Name,
			strconv.Itoa(row.WorkingDays),
			fmt.Sprintf("%.1f", row.PresentDays),
			fmt.Sprintf("%.1f", row.AbsentDays),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLiveCSV encodes a live per-PI report.
func WriteLiveCSV(w io.Writer, rep report.LiveReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(liveHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rep.Rows {
		record := []string{
			row.Username,
			strconv.Itoa(row.WorkingDays),
			strconv.Itoa(row.PresentDays),
			strconv.Itoa(row.AbsentDays),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
