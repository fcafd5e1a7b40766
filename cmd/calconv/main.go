// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calconv converts dates between calendar systems and their linear
// day counts. Day 0 is 1970-01-01 of the proleptic Gregorian calendar, so
// the day count doubles as a calendar-neutral exchange format.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gonih.org/calendar"
)

var engines = map[string]*calendar.Engine{
	"gregorian": calendar.MustNew(calendar.Gregorian{}),
	"julian":    calendar.MustNew(calendar.Julian{}),
	"islamic":   calendar.MustNew(calendar.Islamic{}),
}

var (
	system string
	from   string
	to     string
)

var rootCmd = &cobra.Command{
	Use:   "calconv",
	Short: "Convert dates between calendar systems and day counts",
	Long: `calconv converts calendar dates to and from linear day counts
(days since 1970-01-01 Gregorian) and between calendar systems.

Supported systems: gregorian, julian, islamic.`,
	SilenceUsage: true,
}

var daysCmd = &cobra.Command{
	Use:   "days DATE",
	Short: "Print the day count of a date (given as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine(system)
		if err != nil {
			return err
		}
		d, err := parseDate(eng, args[0])
		if err != nil {
			return err
		}
		fmt.Println(eng.Days(d))
		return nil
	},
}

var dateCmd = &cobra.Command{
	Use:   "date DAYS",
	Short: "Print the date of a day count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine(system)
		if err != nil {
			return err
		}
		days, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day count %q", args[0])
		}
		if err := checkDays(eng, days); err != nil {
			return err
		}
		fmt.Println(eng.FromDays(days))
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert DATE",
	Short: "Convert a date from one calendar system to another",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := engine(from)
		if err != nil {
			return err
		}
		dst, err := engine(to)
		if err != nil {
			return err
		}
		d, err := parseDate(src, args[0])
		if err != nil {
			return err
		}
		days := src.Days(d)
		if err := checkDays(dst, days); err != nil {
			return err
		}
		fmt.Println(dst.FromDays(days))
		return nil
	},
}

func engine(name string) (*calendar.Engine, error) {
	eng, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown calendar system %q", name)
	}
	return eng, nil
}

// parseDate parses a date of the form "YYYY-MM-DD" (with an optional
// leading '-' for negative years) and validates it against eng.
func parseDate(eng *calendar.Engine, s string) (calendar.YearMonthDay, error) {
	rest, neg := strings.CutPrefix(s, "-")
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return calendar.YearMonthDay{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	var f [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" {
			return calendar.YearMonthDay{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
		f[i] = n
	}
	if neg {
		f[0] = -f[0]
	}
	d := calendar.YearMonthDay{Year: f[0], Month: f[1], Day: f[2]}
	if err := eng.Validate(d.Year, d.Month, d.Day); err != nil {
		return calendar.YearMonthDay{}, err
	}
	return d, nil
}

// checkDays rejects day counts outside eng's supported years, since the
// conversion functions trust their input.
func checkDays(eng *calendar.Engine, days int) error {
	b := eng.Bounds()
	if days < eng.StartOfYearDays(b.MinYear) || days >= eng.StartOfYearDays(b.MaxYear+1) {
		return fmt.Errorf("day count %d out of range [%d, %d]",
			days, eng.StartOfYearDays(b.MinYear), eng.StartOfYearDays(b.MaxYear+1)-1)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&system, "system", "s", "gregorian", "Calendar system to use")
	convertCmd.Flags().StringVar(&from, "from", "gregorian", "Calendar system of the input date")
	convertCmd.Flags().StringVar(&to, "to", "islamic", "Calendar system of the output date")
	rootCmd.AddCommand(daysCmd, dateCmd, convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
