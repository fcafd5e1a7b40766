// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar implements day-count arithmetic for pluggable calendar
// systems.
//
// Every calendar ultimately maps a (year, month, day) triple to a single
// linear day count and back. The day count is the canonical coordinate: day
// 0 is January 1, 1970 of the proleptic Gregorian calendar, negative values
// lie before it. Once two calendar systems agree on that coordinate, any
// date can be converted between them by going through it.
//
// The package splits the work in two:
//
//   - A [System] supplies the calendar-specific facts: month lengths, leap
//     years, and the day count at the start of a year computed from first
//     principles. [Gregorian], [Julian] and [Islamic] are provided.
//   - An [Engine] wraps a System and implements the conversions on top of
//     it, memoizing start-of-year day counts so that repeated conversions
//     don't redo the expensive year-length sums.
//
// For the common case of Gregorian dates, the [Date] type wraps a
// package-level engine and can be used without any setup.
package calendar

// A YearMonthDay is a date in some calendar system. It carries no
// indication of which system it belongs to; that association is made by the
// Engine or System it is passed to.
//
// Most operations taking a YearMonthDay trust it to be valid for the system
// at hand. Validity can be established once with [Engine.Validate]; passing
// an invalid or out-of-range date to other operations yields a meaningless
// result, but never corrupts state.
type YearMonthDay struct {
	Year  int
	Month int
	Day   int
}

// Bounds describes the fixed parameters of a calendar system. They are
// determined by the calendar's definition and never change.
type Bounds struct {
	// MinYear and MaxYear delimit the inclusive range of years the system
	// supports. The system's arithmetic must additionally hold one year
	// beyond either end, as boundary computations (first week of MinYear,
	// last week of MaxYear) reach that far.
	MinYear int
	MaxYear int

	// AverageDaysPer10Years is the mean number of days per ten years,
	// rounded to an integer. It is only used to seed the year search with
	// an estimate and has no effect on correctness, but a value far off
	// the true mean slows conversions down.
	AverageDaysPer10Years int

	// DaysAtStartOfYear1 is the day count of the first day of year 1.
	DaysAtStartOfYear1 int
}

// A System provides the calendar-specific facts the engine needs. Concrete
// calendars implement it; everything else is derived by [Engine].
//
// All methods trust their arguments: year is in [MinYear, MaxYear] (one
// year of slack for CalculateStartOfYearDays and DaysInYear) and month is
// in [1, MonthsInYear(year)]. Implementations are not required to detect
// out-of-range input, but must not crash on it.
type System interface {
	// Bounds returns the fixed parameters of the calendar.
	Bounds() Bounds

	// MonthsInYear returns the number of months in the given year.
	MonthsInYear(year int) int

	// DaysInMonth returns the number of days in the given month.
	DaysInMonth(year, month int) int

	// DaysInYear returns the number of days in the given year. It must
	// hold for one year beyond the declared bounds.
	DaysInYear(year int) int

	// IsLeapYear reports whether the given year is a leap year.
	IsLeapYear(year int) bool

	// DaysFromStartOfYearToStartOfMonth returns the offset, in days, from
	// the first day of the year to the first day of the given month.
	DaysFromStartOfYearToStartOfMonth(year, month int) int

	// CalculateStartOfYearDays computes the day count of the first day of
	// the given year from first principles, without caching. It must hold
	// for one year beyond the declared bounds.
	//
	// Engines call it only through their cache, so implementations may be
	// arbitrarily expensive; use [Engine.StartOfYearDays] instead.
	CalculateStartOfYearDays(year int) int

	// YearMonthDayFromDayOfYear returns the date of the given 1-based day
	// of the given year.
	YearMonthDayFromDayOfYear(year, dayOfYear int) YearMonthDay

	// AddMonths adds the given (possibly negative) number of months to d,
	// overflowing into adjacent years and truncating the day of month if
	// the target month is shorter.
	AddMonths(d YearMonthDay, months int) YearMonthDay

	// MonthsBetween returns the signed number of calendar months by which
	// a is later than b, ignoring the days of month.
	MonthsBetween(a, b YearMonthDay) int

	// SetYear rebinds d to the given year, truncating the day of month if
	// the month is shorter in the target year (such as February 29 in a
	// non-leap year).
	SetYear(d YearMonthDay, year int) YearMonthDay
}

// Comparer is implemented by Systems whose dates do not order
// lexicographically by (year, month, day), for example because the year
// does not begin at month 1. [Engine.Compare] uses it when present.
type Comparer interface {
	Compare(a, b YearMonthDay) int
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// floorDiv returns a/b rounded towards negative infinity. b must be
// positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a-floorDiv(a,b)*b, which lies in [0, b). b must be
// positive.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
