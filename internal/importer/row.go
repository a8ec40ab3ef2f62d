package importer

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go-hr-analytics/internal/shared/calendar"
)

// Column is the ordered list of header aliases accepted for one target
// field. Earlier aliases win when a sheet carries several of them.
type Column []string

func Col(aliases ...string) Column {
	return Column(aliases)
}

type cell struct {
	header string
	key    string
	value  string
}

// Row is one spreadsheet row with its cells in column order.
type Row struct {
	cells []cell
}

// NewRow pairs headers with values by position. Header keys are normalized
// so "Total Payroll", "total_payroll" and "TOTALPAYROLL" resolve the same
// way; the raw header is kept for exact matches.
func NewRow(headers, values []string) Row {
	row := Row{cells: make([]cell, 0, len(headers))}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		key := NormalizeHeader(h)
		if key == "" {
			continue
		}
		var v string
		if i < len(values) {
			v = strings.TrimSpace(values[i])
		}
		row.cells = append(row.cells, cell{header: h, key: key, value: v})
	}
	return row
}

// RowFromMap builds a Row from header/value pairs with headers sorted, so
// the result does not depend on map order.
func RowFromMap(raw map[string]string) Row {
	headers := make([]string, 0, len(raw))
	for h := range raw {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	values := make([]string, len(headers))
	for i, h := range headers {
		values[i] = raw[h]
	}
	return NewRow(headers, values)
}

func NormalizeHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		switch r {
		case ' ', '_', '-', '.', '\t', '(', ')', '%', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Lookup returns the value of the first alias of c that holds a non-empty
// cell. For each alias a header spelled exactly like it wins over headers
// that only normalize to it; among equals the leftmost column wins.
func (r Row) Lookup(c Column) (string, bool) {
	for _, alias := range c {
		alias = strings.TrimSpace(alias)
		if v, ok := r.find(func(cl cell) bool { return cl.header == alias }); ok {
			return v, true
		}
		key := NormalizeHeader(alias)
		if v, ok := r.find(func(cl cell) bool { return cl.key == key }); ok {
			return v, true
		}
	}
	return "", false
}

func (r Row) find(match func(cell) bool) (string, bool) {
	for _, cl := range r.cells {
		if cl.value != "" && match(cl) {
			return cl.value, true
		}
	}
	return "", false
}

func (r Row) Has(c Column) bool {
	_, ok := r.Lookup(c)
	return ok
}

// Require reports whether every column resolved to a non-empty value.
func (r Row) Require(cols ...Column) bool {
	for _, c := range cols {
		if !r.Has(c) {
			return false
		}
	}
	return true
}

func (r Row) String(c Column, def string) string {
	if v, ok := r.Lookup(c); ok {
		return v
	}
	return def
}

// Float parses a numeric cell; empty or non-numeric input yields def,
// never an error.
func (r Row) Float(c Column, def float64) float64 {
	v, ok := r.Lookup(c)
	if !ok {
		return def
	}
	if n, ok := ParseNumber(v); ok {
		return n
	}
	return def
}

func (r Row) Int(c Column, def int) int {
	v, ok := r.Lookup(c)
	if !ok {
		return def
	}
	// int(n) is undefined outside the int range, so such cells count as bad input
	if n, ok := ParseNumber(v); ok && n >= math.MinInt && n < math.MaxInt {
		return int(n)
	}
	return def
}

func (r Row) Bool(c Column, def bool) bool {
	v, ok := r.Lookup(c)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "yes", "y", "1", "voluntary":
		return true
	case "false", "no", "n", "0", "involuntary":
		return false
	}
	return def
}

// Month resolves a month column to its canonical name ("jan" -> "January").
// Unrecognised text is kept as typed.
func (r Row) Month(c Column) string {
	v, ok := r.Lookup(c)
	if !ok {
		return ""
	}
	month, _ := calendar.CanonicalMonth(v)
	return month
}

// OneOf maps the cell onto one of allowed (case-insensitive) or def.
func (r Row) OneOf(c Column, allowed []string, def string) string {
	v, ok := r.Lookup(c)
	if !ok {
		return def
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a
		}
	}
	return def
}

// ParseNumber accepts "1,250.50", "85%", " 12 ". NaN and infinities are
// rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n != n || n > 1e308 || n < -1e308 {
		return 0, false
	}
	return n, true
}
