package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-hr-analytics/internal/importer"
	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/shared/spreadsheet"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Department string
	Headcount  int
	Month      string
}

var (
	colDepartment = importer.Col("Department", "department", "Dept")
	colHeadcount  = importer.Col("Headcount", "headCount")
	colMonth      = importer.Col("Month")
)

func normalizeRecord(r importer.Row) (record, bool) {
	if !r.Require(colDepartment) {
		return record{}, false
	}
	return record{
		Department: r.String(colDepartment, ""),
		Headcount:  r.Int(colHeadcount, 0),
		Month:      r.Month(colMonth),
	}, true
}

func TestRow_Lookup(t *testing.T) {
	t.Run("header variants resolve to same key", func(t *testing.T) {
		row := importer.RowFromMap(map[string]string{"Total Payroll": "10"})
		v, ok := row.Lookup(importer.Col("totalPayroll"))
		assert.True(t, ok)
		assert.Equal(t, "10", v)

		row = importer.RowFromMap(map[string]string{"total_payroll": "11"})
		v, ok = row.Lookup(importer.Col("TotalPayroll"))
		assert.True(t, ok)
		assert.Equal(t, "11", v)
	})

	t.Run("first alias wins", func(t *testing.T) {
		row := importer.RowFromMap(map[string]string{"Dept": "Ops", "Department": "Finance"})
		assert.Equal(t, "Finance", row.String(colDepartment, ""))
	})

	t.Run("empty value falls through to next alias", func(t *testing.T) {
		row := importer.RowFromMap(map[string]string{"Department": "  ", "Dept": "Ops"})
		assert.Equal(t, "Ops", row.String(colDepartment, ""))
	})

	t.Run("exact header beats a normalized match", func(t *testing.T) {
		row := importer.NewRow([]string{"DEPARTMENT", "Department"}, []string{"IT", "HR"})
		assert.Equal(t, "HR", row.String(importer.Col("Department"), ""))
	})

	t.Run("colliding headers resolve to the leftmost column", func(t *testing.T) {
		headers := []string{"issueType", "IssueType", "Department", "department"}
		values := []string{"Payroll", "Leave", "HR", "IT"}
		for i := 0; i < 50; i++ {
			row := importer.NewRow(headers, values)
			assert.Equal(t, "Payroll", row.String(importer.Col("Issue Type", "Type"), ""))
			assert.Equal(t, "HR", row.String(importer.Col("Dept", "Department"), ""))
		}
	})

	t.Run("short value slice reads as empty", func(t *testing.T) {
		row := importer.NewRow([]string{"Department", "Month"}, []string{"Ops"})
		assert.Equal(t, "Ops", row.String(colDepartment, ""))
		assert.False(t, row.Has(colMonth))
	})

	t.Run("missing column uses default", func(t *testing.T) {
		row := importer.RowFromMap(map[string]string{})
		assert.Equal(t, "HR Operations", row.String(colDepartment, "HR Operations"))
		assert.False(t, row.Require(colDepartment))
	})
}

func TestRow_Coercion(t *testing.T) {
	row := importer.RowFromMap(map[string]string{
		"Amount":  "1,250.50",
		"Rate":    "85%",
		"Bad":     "n/a",
		"Count":   "12.9",
		"Flag":    "No",
		"Month":   "jan",
		"Unknown": "Q1",
	})

	assert.Equal(t, 1250.5, row.Float(importer.Col("Amount"), 0))
	assert.Equal(t, 85.0, row.Float(importer.Col("Rate"), 0))
	assert.Equal(t, 0.0, row.Float(importer.Col("Bad"), 0))
	assert.Equal(t, 2026, row.Int(importer.Col("Bad"), 2026))
	assert.Equal(t, 12, row.Int(importer.Col("Count"), 0))
	assert.Equal(t, 7, row.Int(importer.Col("Missing"), 7))
	assert.False(t, row.Bool(importer.Col("Flag"), true))
	assert.True(t, row.Bool(importer.Col("Missing"), true))
	assert.Equal(t, "January", row.Month(importer.Col("Month")))
	assert.Equal(t, "Q1", row.Month(importer.Col("Unknown")))

	huge := importer.RowFromMap(map[string]string{"Headcount": "1e20", "Leavers": "-9.3e18"})
	assert.Equal(t, 0, huge.Int(colHeadcount, 0))
	assert.Equal(t, 5, huge.Int(importer.Col("Leavers"), 5))
	assert.Equal(t, 1e20, huge.Float(colHeadcount, 0))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{" 3.5 ", 3.5, true},
		{"1,000", 1000, true},
		{"12%", 12, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := importer.ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalize_PreservesOrderAndDropsInvalid(t *testing.T) {
	sheet := &spreadsheet.Sheet{
		Headers: []string{"Department", "Headcount"},
		Rows: [][]string{
			{"HR", "3"},
			{"", "9"},
			{"IT", ""},
			{"HR", "3"},
		},
	}

	got := importer.Normalize(sheet, normalizeRecord)

	assert.Equal(t, []record{
		{Department: "HR", Headcount: 3},
		{Department: "IT", Headcount: 0},
		{Department: "HR", Headcount: 3},
	}, got)
}

func TestRun(t *testing.T) {
	csv := "Department,Headcount,Month\nHR,3,feb\n,4,mar\nIT,x,March\n"

	t.Run("success", func(t *testing.T) {
		var replaced []record
		res, err := importer.Run(context.Background(), "headcount", "h.csv", strings.NewReader(csv),
			normalizeRecord,
			func(_ context.Context, docs []record) (int64, error) {
				replaced = docs
				return int64(len(docs)), nil
			})

		assert.NoError(t, err)
		assert.Equal(t, importer.Result{
			Domain: "headcount", RowsRead: 3, RowsValid: 2, RowsDropped: 1, Inserted: 2,
		}, res)
		assert.Equal(t, []record{
			{Department: "HR", Headcount: 3, Month: "February"},
			{Department: "IT", Headcount: 0, Month: "March"},
		}, replaced)
	})

	t.Run("no valid rows leaves collection untouched", func(t *testing.T) {
		called := false
		_, err := importer.Run(context.Background(), "payroll", "p.csv",
			strings.NewReader("Department,Headcount\n,1\n"),
			normalizeRecord,
			func(context.Context, []record) (int64, error) {
				called = true
				return 0, nil
			})

		assert.ErrorIs(t, err, importerrors.ErrNoValidRows)
		assert.False(t, called)
	})

	t.Run("unsupported format", func(t *testing.T) {
		called := false
		_, err := importer.Run(context.Background(), "payroll", "p.pdf", strings.NewReader("x"),
			normalizeRecord,
			func(context.Context, []record) (int64, error) {
				called = true
				return 0, nil
			})

		assert.ErrorIs(t, err, importerrors.ErrUnsupportedFormat)
		assert.False(t, called)
	})

	t.Run("unreadable workbook", func(t *testing.T) {
		_, err := importer.Run(context.Background(), "payroll", "p.xlsx", strings.NewReader("not a zip"),
			normalizeRecord,
			func(context.Context, []record) (int64, error) {
				t.Fatal("replace must not be called")
				return 0, nil
			})

		assert.ErrorIs(t, err, importerrors.ErrUnreadableSpreadsheet)
	})

	t.Run("replace failure", func(t *testing.T) {
		dbErr := errors.New("delete failed")
		_, err := importer.Run(context.Background(), "headcount", "h.csv", strings.NewReader(csv),
			normalizeRecord,
			func(context.Context, []record) (int64, error) {
				return 0, dbErr
			})

		assert.ErrorIs(t, err, importerrors.ErrReplaceFailed)
		assert.ErrorIs(t, err, dbErr)
	})
}
