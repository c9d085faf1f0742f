// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"github.com/mpaland/avl-array/counter"
)

// Tally - running operation totals, safe to read while a run is in
// progress
type Tally struct {
	Inserts counter.Counter
	Finds   counter.Counter
	Misses  counter.Counter
	Erases  counter.Counter
}

// Snapshot - the totals at one moment
type Snapshot struct {
	Inserts uint64
	Finds   uint64
	Misses  uint64
	Erases  uint64
}

// Snapshot - read all totals
func (t *Tally) Snapshot() Snapshot {
	return Snapshot{
		Inserts: t.Inserts.Uint64(),
		Finds:   t.Finds.Uint64(),
		Misses:  t.Misses.Uint64(),
		Erases:  t.Erases.Uint64(),
	}
}

// Sub - operations between an earlier snapshot and this one
func (s Snapshot) Sub(earlier Snapshot) Snapshot {
	return Snapshot{
		Inserts: s.Inserts - earlier.Inserts,
		Finds:   s.Finds - earlier.Finds,
		Misses:  s.Misses - earlier.Misses,
		Erases:  s.Erases - earlier.Erases,
	}
}

// Total - all operations
func (s Snapshot) Total() uint64 {
	return s.Inserts + s.Finds + s.Erases
}
