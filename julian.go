// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

// julianDaysAtYear1 is the day count of Julian 0001-01-01, which is two
// days before Gregorian 0001-01-01.
const julianDaysAtYear1 = gregorianDaysAtYear1 - 2

// Julian is the proleptic Julian calendar: every fourth year is a leap
// year, even before 8 CE where the historical calendar was applied
// erratically.
type Julian struct{}

// Bounds implements [System].
func (Julian) Bounds() Bounds {
	return Bounds{
		MinYear:               -9997,
		MaxYear:               9998,
		AverageDaysPer10Years: 3652,
		DaysAtStartOfYear1:    julianDaysAtYear1,
	}
}

// MonthsInYear implements [System].
func (Julian) MonthsInYear(int) int { return 12 }

// IsLeapYear implements [System].
func (Julian) IsLeapYear(year int) bool {
	return year%4 == 0
}

// DaysInYear implements [System].
func (j Julian) DaysInYear(year int) int {
	if j.IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth implements [System].
func (j Julian) DaysInMonth(year, month int) int {
	return gjDaysInMonth(j.IsLeapYear(year), month)
}

// DaysFromStartOfYearToStartOfMonth implements [System].
func (j Julian) DaysFromStartOfYearToStartOfMonth(year, month int) int {
	return gjDaysToMonth(j.IsLeapYear(year), month)
}

// CalculateStartOfYearDays implements [System].
func (Julian) CalculateStartOfYearDays(year int) int {
	y := year - 1
	return 365*y + floorDiv(y, 4) + julianDaysAtYear1
}

// YearMonthDayFromDayOfYear implements [System].
func (j Julian) YearMonthDayFromDayOfYear(year, dayOfYear int) YearMonthDay {
	return gjFromDayOfYear(year, j.IsLeapYear(year), dayOfYear)
}

// AddMonths implements [System].
func (j Julian) AddMonths(d YearMonthDay, months int) YearMonthDay {
	return addMonths12(j, d, months)
}

// MonthsBetween implements [System].
func (Julian) MonthsBetween(a, b YearMonthDay) int {
	return monthsBetween12(a, b)
}

// SetYear implements [System].
func (j Julian) SetYear(d YearMonthDay, year int) YearMonthDay {
	return setYear12(j, d, year)
}
