// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// The Gregorian and Julian calendars share their month structure; only the
// leap year rule and the alignment of year 1 differ. The shared machinery
// lives in the gj* helpers below, parameterized by the leap year flag.

// daysBefore[m] counts the number of days in a non-leap year before month
// m+1 begins. There is an entry for m=12, counting the days before January
// of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// gjMonthDays counts the (maximum) number of days in a given month.
var gjMonthDays = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func gjDaysInMonth(leap bool, month int) int {
	if month == 2 && !leap {
		return 28
	}
	return gjMonthDays[month]
}

func gjDaysToMonth(leap bool, month int) int {
	d := daysBefore[month-1]
	if leap && month > 2 {
		d++
	}
	return d
}

// gjFromDayOfYear computes the month and day in which a 1-based day of year
// occurs.
func gjFromDayOfYear(year int, leap bool, dayOfYear int) YearMonthDay {
	day := dayOfYear - 1
	if leap {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			return YearMonthDay{Year: year, Month: 2, Day: 29}
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month := day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}
	return YearMonthDay{Year: year, Month: month + 1, Day: day - begin + 1}
}

// addMonths12 implements [System.AddMonths] for calendars with twelve
// months per year.
func addMonths12(sys System, d YearMonthDay, months int) YearMonthDay {
	year, m := norm(d.Year, d.Month-1+months, 12)
	month := m + 1
	day := d.Day
	if n := sys.DaysInMonth(year, month); day > n {
		day = n
	}
	return YearMonthDay{Year: year, Month: month, Day: day}
}

// monthsBetween12 implements [System.MonthsBetween] for calendars with
// twelve months per year.
func monthsBetween12(a, b YearMonthDay) int {
	return (a.Year-b.Year)*12 + a.Month - b.Month
}

// setYear12 implements [System.SetYear] for calendars whose months carry
// over between years unchanged.
func setYear12(sys System, d YearMonthDay, year int) YearMonthDay {
	day := d.Day
	if n := sys.DaysInMonth(year, d.Month); day > n {
		day = n
	}
	return YearMonthDay{Year: year, Month: d.Month, Day: day}
}

// gregorianDaysAtYear1 is the day count of 0001-01-01, with day 0 being
// 1970-01-01.
const gregorianDaysAtYear1 = -719162

// Gregorian is the proleptic Gregorian calendar: the leap year rule is
// applied even to dates before its introduction in 1582.
type Gregorian struct{}

// Bounds implements [System].
func (Gregorian) Bounds() Bounds {
	return Bounds{
		MinYear:               -9998,
		MaxYear:               9999,
		AverageDaysPer10Years: 3652,
		DaysAtStartOfYear1:    gregorianDaysAtYear1,
	}
}

// MonthsInYear implements [System].
func (Gregorian) MonthsInYear(int) int { return 12 }

// IsLeapYear implements [System].
func (Gregorian) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear implements [System].
func (g Gregorian) DaysInYear(year int) int {
	if g.IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth implements [System].
func (g Gregorian) DaysInMonth(year, month int) int {
	return gjDaysInMonth(g.IsLeapYear(year), month)
}

// DaysFromStartOfYearToStartOfMonth implements [System].
func (g Gregorian) DaysFromStartOfYearToStartOfMonth(year, month int) int {
	return gjDaysToMonth(g.IsLeapYear(year), month)
}

// CalculateStartOfYearDays implements [System]. This is basically
// (year-1970) * 365, but accounting for leap days.
func (Gregorian) CalculateStartOfYearDays(year int) int {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + gregorianDaysAtYear1
}

// YearMonthDayFromDayOfYear implements [System].
func (g Gregorian) YearMonthDayFromDayOfYear(year, dayOfYear int) YearMonthDay {
	return gjFromDayOfYear(year, g.IsLeapYear(year), dayOfYear)
}

// AddMonths implements [System].
func (g Gregorian) AddMonths(d YearMonthDay, months int) YearMonthDay {
	return addMonths12(g, d, months)
}

// MonthsBetween implements [System].
func (Gregorian) MonthsBetween(a, b YearMonthDay) int {
	return monthsBetween12(a, b)
}

// SetYear implements [System].
func (g Gregorian) SetYear(d YearMonthDay, year int) YearMonthDay {
	return setYear12(g, d, year)
}
