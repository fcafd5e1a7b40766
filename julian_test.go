// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "testing"

func TestJulianLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1900, true}, // leap in the Julian calendar, unlike the Gregorian
		{1970, false},
		{1972, true},
		{2000, true},
		{0, true},
		{-4, true},
		{-1, false},
	} {
		if got := (Julian{}).IsLeapYear(tc.year); got != tc.leap {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.leap)
		}
	}
}

// TestJulianGregorianOffset pins down the drift between the two calendars
// at a few well-known points.
func TestJulianGregorianOffset(t *testing.T) {
	j, g := MustNew(Julian{}), MustNew(Gregorian{})
	for _, tc := range []struct {
		julian    YearMonthDay
		gregorian YearMonthDay
	}{
		// The calendars were 10 days apart when the Gregorian calendar
		// was introduced: Julian 1582-10-04 was followed by Gregorian
		// 1582-10-15.
		{YearMonthDay{1582, 10, 4}, YearMonthDay{1582, 10, 14}},
		// 13 days apart during the 20th and 21st centuries.
		{YearMonthDay{1970, 1, 1}, YearMonthDay{1970, 1, 14}},
		{YearMonthDay{1917, 10, 25}, YearMonthDay{1917, 11, 7}},
		// Identical during the 3rd century.
		{YearMonthDay{250, 3, 1}, YearMonthDay{250, 3, 1}},
	} {
		days := j.Days(tc.julian)
		if got := g.FromDays(days); got != tc.gregorian {
			t.Errorf("Julian %v = day %d = Gregorian %v, want %v", tc.julian, days, got, tc.gregorian)
		}
	}
}

func TestJulianStartOfYear(t *testing.T) {
	jul := Julian{}
	for _, tc := range []struct {
		year int
		days int
	}{
		{1, -719164},
		{2, -719164 + 365},
		{1970, 13}, // Julian New Year 1970 is Gregorian January 14
	} {
		if got := jul.CalculateStartOfYearDays(tc.year); got != tc.days {
			t.Errorf("CalculateStartOfYearDays(%d) = %d, want %d", tc.year, got, tc.days)
		}
	}
}
