// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a small direct-mapped cache to memoize the day
// count at the start of a year.
package cache

import (
	"math"
	"sync/atomic"
)

// Size is the number of slots in a Cache. A year occupies the slot indexed
// by its value modulo Size, so consecutive years never evict each other.
const Size = 1 << 7

// Sentinel is a year value reserved to mark empty slots. It must never be
// used as a real calendar year, see [Representable].
const Sentinel = math.MinInt32

// Cache memoizes the day count at the start of a year. It holds at most one
// entry per slot; a colliding store simply overwrites the previous entry.
// Since the stored value is a pure function of the year, an overwritten
// entry is recomputed on the next access, never served incorrectly.
//
// A Cache is safe for concurrent use. Each entry is read and written as a
// single atomic word, so concurrent fills of the same slot race benignly:
// one of the stores wins and both hold correct values for their year.
type Cache struct {
	slots [Size]atomic.Uint64
}

// New returns a Cache with all slots empty.
func New() *Cache {
	c := new(Cache)
	empty := pack(Sentinel, 0)
	for i := range c.slots {
		c.slots[i].Store(empty)
	}
	return c
}

// Representable reports whether year can be stored in a cache entry without
// colliding with the empty-slot sentinel.
func Representable(year int) bool {
	return year > Sentinel && year <= math.MaxInt32
}

// RepresentableDays reports whether a day count can be stored in a cache
// entry without truncation.
func RepresentableDays(days int) bool {
	return days >= math.MinInt32 && days <= math.MaxInt32
}

// Get returns the memoized day count for year. ok is false if the slot is
// empty or occupied by a different year.
func (c *Cache) Get(year int) (days int, ok bool) {
	y, d := unpack(c.slots[uint(year)%Size].Load())
	return d, y == year
}

// Put memoizes days as the start of year, overwriting whatever entry
// occupies the slot.
func (c *Cache) Put(year, days int) {
	c.slots[uint(year)%Size].Store(pack(year, days))
}

// pack combines a year and a day count into a single word, so that an entry
// can be loaded and stored atomically.
func pack(year, days int) uint64 {
	return uint64(uint32(int32(year)))<<32 | uint64(uint32(int32(days)))
}

func unpack(e uint64) (year, days int) {
	return int(int32(e >> 32)), int(int32(e))
}
