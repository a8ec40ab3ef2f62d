// Package spreadsheet turns an uploaded workbook into header-ordered rows.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// MaxRows caps the data rows accepted from one upload.
const MaxRows = 100000

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoWorksheet       = errors.New("no worksheet found")
	ErrEmptySheet        = errors.New("worksheet is empty")
	ErrTooManyRows       = fmt.Errorf("worksheet has more than %d rows", MaxRows)
)

// Sheet is the first worksheet of an upload. Headers keep their column
// order, duplicates included, and every row in Rows has exactly
// len(Headers) trimmed cells.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

// Read parses the first worksheet of r. The first non-blank row is the
// header and each following non-blank row is a data row. Source row order
// is preserved.
func Read(r io.Reader, filename string) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var grid [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		grid, err = readXLSX(data)
	case ".xls":
		grid, err = readXLS(data)
	case ".csv":
		grid, err = readCSV(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return toSheet(grid)
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}
	return file.GetRows(sheetName)
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook == nil || workbook.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}

	first := workbook.GetSheet(0)
	if first == nil || first.MaxRow == 0 {
		// header only, or nothing at all
		return nil, nil
	}

	// ReadAllCells walks the sheets in order. Capping it at the first
	// sheet's row count keeps every later sheet out of the grid.
	return workbook.ReadAllCells(int(first.MaxRow) + 1), nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func toSheet(grid [][]string) (*Sheet, error) {
	headerIdx := -1
	for i, row := range grid {
		if !blank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrEmptySheet
	}

	headers := make([]string, len(grid[headerIdx]))
	for i, h := range grid[headerIdx] {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers, Rows: make([][]string, 0, len(grid)-headerIdx-1)}
	for _, row := range grid[headerIdx+1:] {
		if blank(row) {
			continue
		}
		if len(sheet.Rows) == MaxRows {
			return nil, ErrTooManyRows
		}
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
