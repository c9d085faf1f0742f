// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"math/rand"

	"github.com/mpaland/avl-array/configuration"
)

// MissingKey - never inserted, used for lookups that must fail
const MissingKey = 0

// Workload - the keys shared by all containers of one run
type Workload struct {
	MapSize     int
	TestCount   int
	MissPercent int
	Keys        []int // 1..MapSize in random order
	Lookups     []int // inserted keys, MissingKey for an intended miss
	Misses      int   // number of MissingKey entries in Lookups
}

// NewWorkload - generate the key lists for a run, the same seed gives
// the same lists
func NewWorkload(run configuration.RunConfiguration) (*Workload, error) {
	if err := run.Validate(); nil != err {
		return nil, err
	}

	r := rand.New(rand.NewSource(run.Seed))

	keys := r.Perm(run.MapSize)
	for i := range keys {
		keys[i] += 1
	}

	misses := 0
	lookups := make([]int, run.MapSize)
	for i := range lookups {
		k := keys[r.Intn(run.MapSize)]
		if r.Intn(100) < run.MissPercent {
			k = MissingKey
			misses += 1
		}
		lookups[i] = k
	}

	return &Workload{
		MapSize:     run.MapSize,
		TestCount:   run.TestCount,
		MissPercent: run.MissPercent,
		Keys:        keys,
		Lookups:     lookups,
		Misses:      misses,
	}, nil
}
