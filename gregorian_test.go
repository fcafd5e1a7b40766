// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"math/rand"
	"testing"
	"time"
)

// TestGregorianAgainstTime cross-checks the Gregorian system against the
// standard library's date calculations over random day counts.
func TestGregorianAgainstTime(t *testing.T) {
	e := MustNew(Gregorian{})
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		days := rnd.Intn(3652425+2900000) - 3652425 // roughly years -8000 to 9900
		got := e.FromDays(days)
		want := time.Date(1970, 1, 1+days, 6, 0, 0, 0, time.UTC)
		if got.Year != want.Year() || got.Month != int(want.Month()) || got.Day != want.Day() {
			t.Fatalf("FromDays(%d) = %v, want %s", days, got, want.Format(time.DateOnly))
		}
		if back := e.Days(got); back != days {
			t.Fatalf("Days(%v) = %d, want %d", got, back, days)
		}
	}
}

func TestGregorianLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1970, false},
		{1972, true},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		if got := (Gregorian{}).IsLeapYear(tc.year); got != tc.leap {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.leap)
		}
	}
}

func TestGregorianStartOfYear(t *testing.T) {
	g := Gregorian{}
	for _, tc := range []struct {
		year int
		days int
	}{
		{1970, 0},
		{1971, 365},
		{1969, -365},
		{1, -719162},
		{2, -719162 + 365},
		{0, -719162 - 366}, // year 0 is a leap year
	} {
		if got := g.CalculateStartOfYearDays(tc.year); got != tc.days {
			t.Errorf("CalculateStartOfYearDays(%d) = %d, want %d", tc.year, got, tc.days)
		}
	}
}

func TestGregorianDaysInMonth(t *testing.T) {
	g := Gregorian{}
	want := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for month := 1; month <= 12; month++ {
		if got := g.DaysInMonth(2023, month); got != want[month-1] {
			t.Errorf("DaysInMonth(2023, %d) = %d, want %d", month, got, want[month-1])
		}
	}
	if got := g.DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d, want 29", got)
	}
}

func TestGregorianAddMonths(t *testing.T) {
	g := Gregorian{}
	for _, tc := range []struct {
		d      YearMonthDay
		months int
		want   YearMonthDay
	}{
		{YearMonthDay{2023, 7, 14}, 0, YearMonthDay{2023, 7, 14}},
		{YearMonthDay{2023, 7, 14}, 1, YearMonthDay{2023, 8, 14}},
		{YearMonthDay{2023, 12, 14}, 1, YearMonthDay{2024, 1, 14}},
		{YearMonthDay{2023, 1, 31}, 1, YearMonthDay{2023, 2, 28}},
		{YearMonthDay{2024, 1, 31}, 1, YearMonthDay{2024, 2, 29}},
		{YearMonthDay{2023, 7, 14}, -7, YearMonthDay{2022, 12, 14}},
		{YearMonthDay{2023, 7, 14}, 25, YearMonthDay{2025, 8, 14}},
		{YearMonthDay{2024, 2, 29}, 12, YearMonthDay{2025, 2, 28}},
	} {
		if got := g.AddMonths(tc.d, tc.months); got != tc.want {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.d, tc.months, got, tc.want)
		}
	}
}

func TestGregorianMonthsBetween(t *testing.T) {
	g := Gregorian{}
	for _, tc := range []struct {
		a, b YearMonthDay
		want int
	}{
		{YearMonthDay{2023, 7, 14}, YearMonthDay{2023, 7, 1}, 0},
		{YearMonthDay{2023, 8, 1}, YearMonthDay{2023, 7, 31}, 1},
		{YearMonthDay{2024, 1, 1}, YearMonthDay{2023, 12, 31}, 1},
		{YearMonthDay{2023, 7, 14}, YearMonthDay{2024, 7, 14}, -12},
	} {
		if got := g.MonthsBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("MonthsBetween(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGregorianSetYear(t *testing.T) {
	g := Gregorian{}
	for _, tc := range []struct {
		d    YearMonthDay
		year int
		want YearMonthDay
	}{
		{YearMonthDay{2023, 7, 14}, 2025, YearMonthDay{2025, 7, 14}},
		{YearMonthDay{2024, 2, 29}, 2023, YearMonthDay{2023, 2, 28}},
		{YearMonthDay{2024, 2, 29}, 2028, YearMonthDay{2028, 2, 29}},
	} {
		if got := g.SetYear(tc.d, tc.year); got != tc.want {
			t.Errorf("SetYear(%v, %d) = %v, want %v", tc.d, tc.year, got, tc.want)
		}
	}
}
