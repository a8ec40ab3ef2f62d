// Package filter turns report query strings into MongoDB filters.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	filtererrors "go-hr-analytics/internal/filter/errors"
	"go-hr-analytics/internal/shared/calendar"

	"go.mongodb.org/mongo-driver/bson"
)

// All is the query value meaning "no constraint on this dimension".
const All = "All"

// MaxMonths bounds the months=N window.
const MaxMonths = 24

type Kind int

const (
	Text Kind = iota
	Number
)

// Dimension binds a query parameter to a document field.
type Dimension struct {
	Param string
	Field string
	Kind  Kind
}

func TextDim(param, field string) Dimension {
	return Dimension{Param: param, Field: field, Kind: Text}
}

func NumberDim(param, field string) Dimension {
	return Dimension{Param: param, Field: field, Kind: Number}
}

// Year is the year dimension every reporting domain supports.
var Year = NumberDim("year", "year")

// Value returns the trimmed parameter, or "" when it is absent or All.
func Value(q url.Values, param string) string {
	v := strings.TrimSpace(q.Get(param))
	if v == "" || strings.EqualFold(v, All) {
		return ""
	}
	return v
}

// Build adds one equality constraint per dimension present in q. Number
// dimensions must parse as integers.
func Build(q url.Values, dims ...Dimension) (bson.M, error) {
	f := bson.M{}
	for _, d := range dims {
		v := Value(q, d.Param)
		if v == "" {
			continue
		}
		switch d.Kind {
		case Number:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, filtererrors.ErrInvalidNumber.WithErr(fmt.Errorf("%s=%q", d.Param, v))
			}
			f[d.Field] = n
		default:
			f[d.Field] = v
		}
	}
	return f, nil
}

// ParseMonths reads the months parameter. Absent or All yields def; 0 means
// the window is disabled.
func ParseMonths(q url.Values, def int) (int, error) {
	v := Value(q, "months")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > MaxMonths {
		return 0, filtererrors.ErrInvalidMonths
	}
	return n, nil
}

// LastNMonths returns the names of the n calendar months before now's
// month, oldest first. Names carry no year, so windows longer than twelve
// months repeat names.
func LastNMonths(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	current := int(now.Month()) - 1
	for i := 0; i < n; i++ {
		idx := ((current-n+i)%12 + 12) % 12
		out[i] = calendar.MonthNames[idx]
	}
	return out
}

// InMonths constrains field to the given month names.
func InMonths(field string, months []string) bson.M {
	return bson.M{field: bson.M{"$in": months}}
}

// And merges two filters without clobbering a key both of them set.
func And(base, extra bson.M) bson.M {
	if len(extra) == 0 {
		return base
	}
	if len(base) == 0 {
		return extra
	}
	return bson.M{"$and": bson.A{base, extra}}
}
