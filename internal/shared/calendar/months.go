package calendar

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MonthNames in calendar order, the canonical stored form.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthLookup = func() map[string]int {
	m := make(map[string]int, 40)
	for i, name := range MonthNames {
		m[name] = i + 1
		m[name[:3]] = i + 1
	}
	m["Sept"] = 9
	return m
}()

// CanonicalMonth maps "jan", "JANUARY", "Sept" or "1" to "January". Anything
// else comes back trimmed with ok=false.
func CanonicalMonth(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return MonthNames[n-1], true
		}
		return s, false
	}
	if idx, ok := monthLookup[cases.Title(language.English).String(s)]; ok {
		return MonthNames[idx-1], true
	}
	return s, false
}

// MonthIndex returns 1-12 for a canonical or abbreviated month name, 0 if
// unknown.
func MonthIndex(name string) int {
	canonical, ok := CanonicalMonth(name)
	if !ok {
		return 0
	}
	return monthLookup[canonical]
}

func MonthName(m time.Month) string {
	return MonthNames[m-1]
}
