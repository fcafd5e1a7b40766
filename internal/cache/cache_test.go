// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"math"
	"testing"
)

func TestEmpty(t *testing.T) {
	c := New()
	for _, year := range []int{0, 1, -1, 1970, Sentinel + 1} {
		if _, ok := c.Get(year); ok {
			t.Errorf("Get(%d) on empty cache reports a hit", year)
		}
	}
}

func TestPutGet(t *testing.T) {
	c := New()
	for _, tc := range []struct {
		year, days int
	}{
		{1970, 0},
		{1969, -365},
		{-9999, -4371953},
		{10000, 2932897},
		{0, -719527},
	} {
		c.Put(tc.year, tc.days)
		days, ok := c.Get(tc.year)
		if !ok {
			t.Errorf("Get(%d) reports a miss after Put", tc.year)
			continue
		}
		if days != tc.days {
			t.Errorf("Get(%d) = %d, want %d", tc.year, days, tc.days)
		}
	}
}

func TestCollision(t *testing.T) {
	c := New()
	c.Put(1970, 0)
	// 1970+Size maps to the same slot and must evict the older entry.
	c.Put(1970+Size, 46751)
	if _, ok := c.Get(1970); ok {
		t.Errorf("Get(1970) reports a hit after colliding Put(%d)", 1970+Size)
	}
	if days, ok := c.Get(1970 + Size); !ok || days != 46751 {
		t.Errorf("Get(%d) = %d, %v, want 46751, true", 1970+Size, days, ok)
	}
	// Refilling restores the older year.
	c.Put(1970, 0)
	if days, ok := c.Get(1970); !ok || days != 0 {
		t.Errorf("Get(1970) = %d, %v, want 0, true", days, ok)
	}
}

func TestNegativeYears(t *testing.T) {
	c := New()
	c.Put(-1, -720257)
	if days, ok := c.Get(-1); !ok || days != -720257 {
		t.Errorf("Get(-1) = %d, %v, want -720257, true", days, ok)
	}
	// -1 and Size-1 must not share a slot entry.
	if _, ok := c.Get(Size - 1); ok {
		t.Errorf("Get(%d) reports a hit for an entry stored under -1", Size-1)
	}
}

func TestRepresentable(t *testing.T) {
	for _, tc := range []struct {
		year int
		want bool
	}{
		{0, true},
		{9999, true},
		{-9999, true},
		{math.MaxInt32, true},
		{Sentinel, false},
	} {
		if got := Representable(tc.year); got != tc.want {
			t.Errorf("Representable(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
}
