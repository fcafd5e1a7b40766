// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns d formatted as ISO 8601, like "2006-01-02". Years outside
// [0, 9999] get a sign and as many digits as needed.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	year, month, day := d.Date()
	return formatISO(year, int(month), day)
}

// String returns d formatted as ISO 8601. The rendering is only meaningful
// for calendars with at most two-digit month and day numbers.
func (d YearMonthDay) String() string {
	return formatISO(d.Year, d.Month, d.Day)
}

func formatISO(year, month, day int) string {
	sign := ""
	if year < 0 {
		sign, year = "-", -year
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, month, day)
}

// Parse parses an ISO 8601 date like "2006-01-02" as a Gregorian calendar
// date. A leading '-' denotes a negative year. The date is validated; the
// error for an out-of-range field is a [*RangeError].
func Parse(s string) (Date, error) {
	ymd, err := parseISO(s)
	if err != nil {
		return 0, err
	}
	if err := gregorian.Validate(ymd.Year, ymd.Month, ymd.Day); err != nil {
		return 0, err
	}
	return Date(gregorian.Days(ymd)), nil
}

func parseISO(s string) (YearMonthDay, error) {
	rest, neg := strings.CutPrefix(s, "-")
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return YearMonthDay{}, fmt.Errorf("cannot parse %q as an ISO 8601 date", s)
	}
	var f [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" || strings.ContainsAny(p, "+- ") {
			return YearMonthDay{}, fmt.Errorf("cannot parse %q as an ISO 8601 date", s)
		}
		f[i] = n
	}
	if neg {
		f[0] = -f[0]
	}
	return YearMonthDay{Year: f[0], Month: f[1], Day: f[2]}, nil
}
