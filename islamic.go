// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "math/bits"

const (
	// islamicDaysAtYear1 is the day count of 1 Muharram 1 AH, the civil
	// epoch: Friday, 16 July 622 of the Julian calendar.
	islamicDaysAtYear1 = -492148

	// A 30-year cycle contains 19 years of 354 days and 11 leap years of
	// 355 days.
	daysPer30Years = 19*354 + 11*355

	// islamicLeapYears has bit r set if a year with year mod 30 == r is a
	// leap year. This is the most widely used of the tabular leap
	// patterns.
	islamicLeapYears uint32 = 1<<2 | 1<<5 | 1<<7 | 1<<10 | 1<<13 | 1<<16 |
		1<<18 | 1<<21 | 1<<24 | 1<<26 | 1<<29
)

// Islamic is the tabular Islamic calendar: twelve months alternating
// between 30 and 29 days, with a 30-day twelfth month in leap years, and
// leap years following a fixed 30-year cycle rather than lunar observation.
// Dates are counted from the civil epoch, Friday 16 July 622 (Julian).
type Islamic struct{}

// Bounds implements [System].
func (Islamic) Bounds() Bounds {
	return Bounds{
		MinYear:               1,
		MaxYear:               9665,
		AverageDaysPer10Years: 3544,
		DaysAtStartOfYear1:    islamicDaysAtYear1,
	}
}

// MonthsInYear implements [System].
func (Islamic) MonthsInYear(int) int { return 12 }

// IsLeapYear implements [System].
func (Islamic) IsLeapYear(year int) bool {
	return islamicLeapYears>>uint(floorMod(year, 30))&1 == 1
}

// DaysInYear implements [System].
func (c Islamic) DaysInYear(year int) int {
	if c.IsLeapYear(year) {
		return 355
	}
	return 354
}

// DaysInMonth implements [System].
func (c Islamic) DaysInMonth(year, month int) int {
	switch {
	case month == 12 && c.IsLeapYear(year):
		return 30
	case month%2 == 1:
		return 30
	default:
		return 29
	}
}

// DaysFromStartOfYearToStartOfMonth implements [System].
func (Islamic) DaysFromStartOfYearToStartOfMonth(year, month int) int {
	return (month-1)*30 - (month-1)/2
}

// CalculateStartOfYearDays implements [System].
func (Islamic) CalculateStartOfYearDays(year int) int {
	y := year - 1
	cycles := floorDiv(y, 30)
	r := y - cycles*30
	// Count the leap years among the first r years of the cycle, which
	// occupy bits 1 through r of the pattern.
	leaps := bits.OnesCount32(islamicLeapYears & (1<<(r+1) - 1))
	return cycles*daysPer30Years + 354*r + leaps + islamicDaysAtYear1
}

// YearMonthDayFromDayOfYear implements [System].
func (c Islamic) YearMonthDayFromDayOfYear(year, dayOfYear int) YearMonthDay {
	day := dayOfYear - 1
	// Months alternate 30/29, so a pair spans 59 days. The estimate is
	// exact except for the leap day at the end of a leap year.
	month := 2*day/59 + 1
	if month > 12 {
		month = 12
	}
	return YearMonthDay{
		Year:  year,
		Month: month,
		Day:   day - c.DaysFromStartOfYearToStartOfMonth(year, month) + 1,
	}
}

// AddMonths implements [System].
func (c Islamic) AddMonths(d YearMonthDay, months int) YearMonthDay {
	return addMonths12(c, d, months)
}

// MonthsBetween implements [System].
func (Islamic) MonthsBetween(a, b YearMonthDay) int {
	return monthsBetween12(a, b)
}

// SetYear implements [System].
func (c Islamic) SetYear(d YearMonthDay, year int) YearMonthDay {
	return setYear12(c, d, year)
}
