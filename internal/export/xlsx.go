package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/quangdm/cloudscore/internal/models"
)

const sheetName = "Điểm học sinh"

// Column widths: ordinal, name, then one width for every score column.
const (
	ordinalWidth = 5
	nameWidth    = 25
	scoreWidth   = 12
)

// WriteXLSX renders the roster as a workbook: header row
// [STT, Họ và tên, columns...], one row per student, blanks for missing
// scores. Only the given columns are exported, in their given order.
func WriteXLSX(w io.Writer, rec *models.GradeRecord, columns []string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := append([]string{"STT", "Họ và tên"}, columns...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, st := range rec.Students {
		values := make([]interface{}, 0, len(headers))
		values = append(values, row+1, st.Name)
		for _, col := range columns {
			values = append(values, st.Scores[col])
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", ordinalWidth); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "B", nameWidth); err != nil {
		return err
	}
	if len(columns) > 0 {
		first, err := excelize.ColumnNumberToName(3)
		if err != nil {
			return err
		}
		last, err := excelize.ColumnNumberToName(2 + len(columns))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, first, last, scoreWidth); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Filename suggests a download name: <record>_YYYY-MM-DD.xlsx.
func Filename(rec *models.GradeRecord, now time.Time) string {
	name := rec.RecordName
	if name == "" {
		name = "BangDiem"
	}
	return fmt.Sprintf("%s_%s.xlsx", name, now.Format("2006-01-02"))
}
