// Package clock abstracts "now" so month windows and year defaults can be
// pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System reads the wall clock.
var System Clock = Func(time.Now)

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// OrSystem returns c, or System when c is nil.
func OrSystem(c Clock) Clock {
	if c == nil {
		return System
	}
	return c
}
