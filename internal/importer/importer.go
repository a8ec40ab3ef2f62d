// Package importer runs the replace-import pipeline shared by every
// reporting domain: parse the upload, normalize rows, replace the
// collection.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	importerrors "go-hr-analytics/internal/importer/errors"
	"go-hr-analytics/internal/metrics"
	"go-hr-analytics/internal/shared/spreadsheet"
)

// Result is what an upload endpoint reports back.
type Result struct {
	Domain      string `json:"domain"`
	RowsRead    int    `json:"rowsRead"`
	RowsValid   int    `json:"rowsValid"`
	RowsDropped int    `json:"rowsDropped"`
	Inserted    int64  `json:"inserted"`
}

func (r Result) Message() string {
	return fmt.Sprintf("%s data uploaded successfully: %d records inserted", r.Domain, r.Inserted)
}

// NormalizeFunc converts a row into a record. ok=false drops the row.
type NormalizeFunc[T any] func(Row) (T, bool)

// ReplaceFunc swaps the whole collection for docs and returns how many
// documents made it in.
type ReplaceFunc[T any] func(ctx context.Context, docs []T) (int64, error)

// Normalize applies fn to each data row of sheet in source order.
func Normalize[T any](sheet *spreadsheet.Sheet, fn NormalizeFunc[T]) []T {
	out := make([]T, 0, len(sheet.Rows))
	for _, values := range sheet.Rows {
		if rec, ok := fn(NewRow(sheet.Headers, values)); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Run parses r, normalizes it and hands the batch to replace. Parse errors
// and empty batches return before replace is called, so the collection is
// left alone.
func Run[T any](
	ctx context.Context,
	domain string,
	filename string,
	r io.Reader,
	normalize NormalizeFunc[T],
	replace ReplaceFunc[T],
) (Result, error) {
	res := Result{Domain: domain}

	sheet, err := spreadsheet.Read(r, filename)
	if err != nil {
		metrics.ImportFailures.WithLabelValues(domain).Inc()
		switch {
		case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
			return res, importerrors.ErrUnsupportedFormat
		case errors.Is(err, spreadsheet.ErrEmptySheet):
			return res, importerrors.ErrNoValidRows
		default:
			return res, importerrors.ErrUnreadableSpreadsheet.WithErr(err)
		}
	}

	docs := Normalize(sheet, normalize)
	res.RowsRead = len(sheet.Rows)
	res.RowsValid = len(docs)
	res.RowsDropped = res.RowsRead - res.RowsValid
	metrics.ImportRows.WithLabelValues(domain, "dropped").Add(float64(res.RowsDropped))

	if len(docs) == 0 {
		metrics.ImportFailures.WithLabelValues(domain).Inc()
		return res, importerrors.ErrNoValidRows
	}

	inserted, err := replace(ctx, docs)
	res.Inserted = inserted
	if err != nil {
		metrics.ImportFailures.WithLabelValues(domain).Inc()
		return res, importerrors.ErrReplaceFailed.WithErr(err)
	}
	metrics.ImportRows.WithLabelValues(domain, "inserted").Add(float64(inserted))

	return res, nil
}
