package spreadsheet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-hr-analytics/internal/shared/spreadsheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxBook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead_XLSX(t *testing.T) {
	buf := xlsxBook(t, [][]interface{}{
		{"", ""},
		{"Department", " Month ", "Department"},
		{"Finance", "jan", "ignored"},
		{"", "", ""},
		{"HR", "February"},
	})

	sheet, err := spreadsheet.Read(buf, "payroll.XLSX")
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "Month", "Department"}, sheet.Headers)
	assert.Equal(t, [][]string{
		{"Finance", "jan", "ignored"},
		{"HR", "February", ""},
	}, sheet.Rows)
}

func TestRead_XLSFirstSheetOnly(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "two_sheets.xls"))
	require.NoError(t, err)
	defer f.Close()

	sheet, err := spreadsheet.Read(f, "headcount.xls")
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "Month", "Headcount"}, sheet.Headers)
	assert.Equal(t, [][]string{
		{"Finance", "jan", "12"},
		{"HR", "February", "4"},
	}, sheet.Rows)
}

func TestRead_CSV(t *testing.T) {
	data := "\xef\xbb\xbfDepartment,Month,Value\nIT, March ,4.5\nSales,April\n"

	sheet, err := spreadsheet.Read(strings.NewReader(data), "metrics.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "Month", "Value"}, sheet.Headers)
	assert.Equal(t, [][]string{
		{"IT", "March", "4.5"},
		{"Sales", "April", ""},
	}, sheet.Rows)
}

func TestRead_Errors(t *testing.T) {
	_, err := spreadsheet.Read(strings.NewReader("x"), "notes.txt")
	assert.ErrorIs(t, err, spreadsheet.ErrUnsupportedFormat)

	_, err = spreadsheet.Read(strings.NewReader(",,\n , \n"), "blank.csv")
	assert.ErrorIs(t, err, spreadsheet.ErrEmptySheet)

	var big strings.Builder
	big.WriteString("Department\n")
	for i := 0; i <= spreadsheet.MaxRows; i++ {
		big.WriteString("HR\n")
	}
	_, err = spreadsheet.Read(strings.NewReader(big.String()), "big.csv")
	assert.ErrorIs(t, err, spreadsheet.ErrTooManyRows)
}
