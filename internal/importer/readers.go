package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet as a raw grid, header row first. Binary format
// details stay inside this file; everything downstream works on grids.
type Sheet struct {
	Name string
	Rows [][]string
}

// ReadWorkbook parses an uploaded spreadsheet by extension: .xlsx (and
// .xlsm) via excelize, legacy .xls via the ole2 reader.
func ReadWorkbook(filename string, data []byte) ([]Sheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return readXLS(data)
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet format: %s", filepath.Ext(filename))
	}
}

func readXLSX(data []byte) ([]Sheet, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sheets []Sheet
	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	return sheets, nil
}

const xlsMaxRows = 100000

func readXLS(data []byte) ([]Sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	if workbook.NumSheets() > 1 {
		return nil, fmt.Errorf("legacy .xls import supports a single sheet, found %d", workbook.NumSheets())
	}

	rows := workbook.ReadAllCells(xlsMaxRows)
	sheet := workbook.GetSheet(0)
	name := "Sheet1"
	if sheet != nil {
		name = sheet.Name
	}
	return []Sheet{{Name: name, Rows: rows}}, nil
}

// FindSheet returns the named sheet, or the first one when name is empty.
func FindSheet(sheets []Sheet, name string) (Sheet, error) {
	if name == "" && len(sheets) > 0 {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return Sheet{}, fmt.Errorf("sheet %q not found", name)
}
