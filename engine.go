// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"

	"gonih.org/calendar/internal/cache"
)

// An Engine converts between dates and day counts for a single calendar
// [System]. It owns a fixed-size cache of start-of-year day counts, so
// conversions are amortized O(1) even for calendars whose year lengths are
// expensive to sum.
//
// An Engine is safe for concurrent use.
type Engine struct {
	sys    System
	bounds Bounds
	// avg is AverageDaysPer10Years plus one. The upward bias makes the
	// year estimate in YearFromDays err low, so the forward correction
	// loop dominates and stays short for calendars with varying year
	// lengths.
	avg   int
	years *cache.Cache
}

// New returns an Engine for the given System. It fails if the System's
// declared bounds cannot be represented in a cache entry, which is a
// mistake in the calendar definition, not a runtime condition.
func New(sys System) (*Engine, error) {
	b := sys.Bounds()
	if b.MinYear > b.MaxYear {
		return nil, fmt.Errorf("calendar: invalid year bounds [%d, %d]", b.MinYear, b.MaxYear)
	}
	if !cache.Representable(b.MinYear-1) || !cache.Representable(b.MaxYear+1) {
		return nil, fmt.Errorf("calendar: year bounds [%d, %d] collide with the cache sentinel", b.MinYear, b.MaxYear)
	}
	if b.AverageDaysPer10Years < 1 {
		return nil, fmt.Errorf("calendar: invalid AverageDaysPer10Years %d", b.AverageDaysPer10Years)
	}
	e := &Engine{
		sys:    sys,
		bounds: b,
		avg:    b.AverageDaysPer10Years + 1,
		years:  cache.New(),
	}
	// Start-of-year day counts are monotonic in the year, so checking the
	// two extremes covers every cacheable year.
	for _, year := range []int{b.MinYear - 1, b.MaxYear + 1} {
		if days := e.StartOfYearDays(year); !cache.RepresentableDays(days) {
			return nil, fmt.Errorf("calendar: start of year %d is day %d, which overflows a cache entry", year, days)
		}
	}
	return e, nil
}

// MustNew is like [New] but panics on error. It simplifies initializing
// package-level engines for calendars that are known to be well-formed.
func MustNew(sys System) *Engine {
	e, err := New(sys)
	if err != nil {
		panic(err)
	}
	return e
}

// System returns the calendar System the engine was created with.
func (e *Engine) System() System {
	return e.sys
}

// Bounds returns the fixed parameters of the engine's calendar.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// StartOfYearDays returns the day count of the first day of the given year,
// memoizing the result. It is valid for years in [MinYear-1, MaxYear+1];
// the one year of slack lets boundary-adjacent computations (week numbers
// in the first and last supported year) avoid special cases.
//
// This is the only path by which the engine invokes
// [System.CalculateStartOfYearDays].
func (e *Engine) StartOfYearDays(year int) int {
	if days, ok := e.years.Get(year); ok {
		return days
	}
	days := e.sys.CalculateStartOfYearDays(year)
	e.years.Put(year, days)
	return days
}

// DayOfYear returns the 1-based day of the year of d.
func (e *Engine) DayOfYear(d YearMonthDay) int {
	return e.sys.DaysFromStartOfYearToStartOfMonth(d.Year, d.Month) + d.Day
}

// Days returns the day count of d. The date is trusted to be valid, see
// [Engine.Validate].
func (e *Engine) Days(d YearMonthDay) int {
	return e.StartOfYearDays(d.Year) + e.DayOfYear(d) - 1
}

// YearFromDays returns the year containing the given day count, along with
// the 0-based day of that year.
//
// The year is found by a linear estimate followed by a correction loop: the
// estimate divides by a slightly pessimistic average year length, so it
// lands at or just before the true year and the loop runs only a couple of
// iterations for any reasonable calendar.
func (e *Engine) YearFromDays(days int) (year, dayOfYear int) {
	sinceYear1 := days - e.bounds.DaysAtStartOfYear1
	candidate := sinceYear1*10/e.avg + 1
	delta := days - e.StartOfYearDays(candidate)
	if delta < 0 {
		// The estimate overshot; walk backwards.
		for delta < 0 {
			candidate--
			delta += e.sys.DaysInYear(candidate)
		}
		return candidate, delta
	}
	for n := e.sys.DaysInYear(candidate); delta >= n; n = e.sys.DaysInYear(candidate) {
		delta -= n
		candidate++
	}
	return candidate, delta
}

// FromDays returns the date of the given day count. The day count is
// trusted to lie within the calendar's bounds.
func (e *Engine) FromDays(days int) YearMonthDay {
	year, dayOfYear := e.YearFromDays(days)
	return e.sys.YearMonthDayFromDayOfYear(year, dayOfYear+1)
}

// Compare orders a and b, returning -1, 0 or +1 as a is before, equal to or
// after b. It uses the lexicographic (year, month, day) order unless the
// engine's System implements [Comparer].
func (e *Engine) Compare(a, b YearMonthDay) int {
	if c, ok := e.sys.(Comparer); ok {
		return c.Compare(a, b)
	}
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// A RangeError reports a date field lying outside its valid range.
type RangeError struct {
	Field    string // "year", "month" or "day"
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("calendar: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks that (year, month, day) is a valid date of the engine's
// calendar, returning a [*RangeError] naming the offending field if not.
//
// This is the only checked entry point; the conversion methods trust their
// input in exchange for not re-checking it on every call.
func (e *Engine) Validate(year, month, day int) error {
	if year < e.bounds.MinYear || year > e.bounds.MaxYear {
		return &RangeError{Field: "year", Value: year, Min: e.bounds.MinYear, Max: e.bounds.MaxYear}
	}
	if n := e.sys.MonthsInYear(year); month < 1 || month > n {
		return &RangeError{Field: "month", Value: month, Min: 1, Max: n}
	}
	if n := e.sys.DaysInMonth(year, month); day < 1 || day > n {
		return &RangeError{Field: "day", Value: day, Min: 1, Max: n}
	}
	return nil
}
