// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// gregorian backs the Date type and the package-level Gregorian helpers.
var gregorian = MustNew(Gregorian{})

// GregorianEngine returns the package-level engine for the proleptic
// Gregorian calendar, shared by the [Date] type.
func GregorianEngine() *Engine {
	return gregorian
}

// A Date represents a Gregorian calendar date, as the number of days since
// January 1, 1970. Dates before it are negative; the Gregorian calendar is
// used even for dates lying before its introduction.
//
// Dates can be compared using Go's arithmetic operators, and the number of
// days between two Dates is their difference.
type Date int

// Of returns the Date corresponding to the given date.
//
// The arguments may be outside their usual ranges and will be normalized
// during the conversion, just as for [time.Date]. For example, October 32
// converts to November 1. Years outside the supported range (roughly
// ±10000) yield a meaningless Date.
func Of(year int, month time.Month, day int) Date {
	year, m := norm(year, int(month)-1, 12)

	d := gregorian.StartOfYearDays(year)
	d += gjDaysToMonth(Gregorian{}.IsLeapYear(year), m+1)
	d += day - 1

	return Date(d)
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	return Of(time.Now().In(loc).Date())
}

// AddDate returns the date corresponding to adding the given number of
// years, months, and days to d. For example, AddDate(-1, 2, 3) applied to
// January 1, 2011 returns March 4, 2010.
//
// AddDate normalizes its result in the same way that Of does, so, for
// example, adding one month to October 31 yields December 1, the
// normalized form for November 31.
//
// AddDate(0, 0, days) is equivalent to d+Date(days).
func (d Date) AddDate(years, months, days int) Date {
	year, month, day := d.Date()
	return Of(year+years, month+time.Month(months), day+days)
}

// Date returns the year, month and day specified by d.
func (d Date) Date() (year int, month time.Month, day int) {
	ymd := gregorian.FromDays(int(d))
	return ymd.Year, time.Month(ymd.Month), ymd.Day
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// GoString implements fmt.GoStringer and formats d to be printed in Go
// source code.
func (d Date) GoString() string {
	year, month, day := d.Date()
	return fmt.Sprintf("calendar.Of(%d, %d, %d)", year, month, day)
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
// Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to
// week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func (d Date) ISOWeek() (year, week int) {
	// The ISO week of d is the week of its nearest Thursday, as ISO weeks
	// start on Monday.
	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	d += Date(offset)
	year, yday := gregorian.YearFromDays(int(d))
	return year, yday/7 + 1
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date
// is represented as a [binary.Varint] representing the number of days since
// 1970-01-01.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d))], nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Month returns the month of the year specified by d.
func (d Date) Month() time.Month {
	_, month, _ := d.Date()
	return month
}

// Time returns the given moment in time in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(1970, 1, 1+int(d), hour, min, sec, nsec, loc)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || int64(int(v)) != v:
		return errors.New("encoded date overflows int")
	case i != len(b):
		return errors.New("extra data after date")
	}
	*d = Date(v)
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err == nil {
		*d = v
	}
	return err
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(int(d)+4, 7)) // 1970-01-01 was a Thursday
}

// Year returns the year in which d occurs.
func (d Date) Year() int {
	year, _ := gregorian.YearFromDays(int(d))
	return year
}

// YearDay returns the day of the year specified by d, in the range [1,365]
// for non-leap years, and [1,366] in leap years.
func (d Date) YearDay() int {
	_, yday := gregorian.YearFromDays(int(d))
	return yday + 1
}
