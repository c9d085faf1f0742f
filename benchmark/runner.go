// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mpaland/avl-array/fault"
)

// names of the timed phases
const (
	PhaseInsert = "insert"
	PhaseFind   = "find"
	PhaseChurn  = "erase&insert"
	PhaseErase  = "erase"
)

// Phase - timing of one phase
type Phase struct {
	Name       string
	Operations uint64
	Duration   time.Duration
}

// QPS - operations per second
func (p Phase) QPS() float64 {
	s := p.Duration.Seconds()
	if s <= 0 {
		return 0
	}
	return float64(p.Operations) / s
}

// Result - outcome of a run for one container
type Result struct {
	Container   string
	MapSize     int
	TestCount   int
	MissPercent int
	Footprint   uintptr
	Misses      int
	Phases      []Phase
}

// Run - time all phases of a workload on containers from one factory
//
// the tally is updated after every pass so a reporter can follow
// progress; any container misbehaviour aborts the run
func Run(log *logger.L, w *Workload, factory Factory, tally *Tally) (Result, error) {

	if w.MapSize <= 0 {
		return Result{}, fault.ErrInvalidMapSize
	}
	if w.TestCount <= 0 {
		return Result{}, fault.ErrInvalidTestCount
	}
	if nil == tally {
		tally = &Tally{}
	}

	result := Result{
		MapSize:     w.MapSize,
		TestCount:   w.TestCount,
		MissPercent: w.MissPercent,
	}

	// insert: fill a new container on every pass
	var c Container
	start := time.Now()
	for j := 0; j < w.TestCount; j += 1 {
		var err error
		c, err = factory(w.MapSize)
		if nil != err {
			return result, err
		}
		for _, k := range w.Keys {
			if !c.Insert(k, k) {
				return result, fmt.Errorf("%w: %s: key: %d", fault.ErrInsertFailed, c.Name(), k)
			}
		}
		tally.Inserts.Add(uint64(w.MapSize))
	}
	result.Phases = append(result.Phases, phase(PhaseInsert, w.MapSize*w.TestCount, start))

	result.Container = c.Name()
	result.Footprint = c.Footprint()

	log.Debugf("%s: filled: %d  footprint: %d", result.Container, c.Len(), result.Footprint)

	if c.Len() != w.MapSize {
		return result, fmt.Errorf("%w: %s: after insert: %d  expected: %d", fault.ErrLengthMismatch, result.Container, c.Len(), w.MapSize)
	}

	// find: lookups on the last filled container
	start = time.Now()
	for j := 0; j < w.TestCount; j += 1 {
		misses := 0
		for _, k := range w.Lookups {
			v, ok := c.Get(k)
			if !ok {
				misses += 1
			} else if v != k {
				return result, fmt.Errorf("%w: %s: key: %d  value: %d", fault.ErrLookupMismatch, result.Container, k, v)
			}
		}
		if misses != w.Misses {
			return result, fmt.Errorf("%w: %s: misses: %d  expected: %d", fault.ErrLookupMismatch, result.Container, misses, w.Misses)
		}
		result.Misses = misses
		tally.Finds.Add(uint64(len(w.Lookups)))
		tally.Misses.Add(uint64(misses))
	}
	result.Phases = append(result.Phases, phase(PhaseFind, len(w.Lookups)*w.TestCount, start))

	// erase&insert: every key leaves and returns
	start = time.Now()
	for j := 0; j < w.TestCount; j += 1 {
		for _, k := range w.Keys {
			if !c.Erase(k) {
				return result, fmt.Errorf("%w: %s: key: %d", fault.ErrEraseFailed, result.Container, k)
			}
			if !c.Insert(k, k) {
				return result, fmt.Errorf("%w: %s: key: %d", fault.ErrInsertFailed, result.Container, k)
			}
		}
		tally.Erases.Add(uint64(w.MapSize))
		tally.Inserts.Add(uint64(w.MapSize))
	}
	result.Phases = append(result.Phases, phase(PhaseChurn, w.MapSize*w.TestCount, start))

	// erase: a single pass empties the container
	start = time.Now()
	for _, k := range w.Keys {
		if !c.Erase(k) {
			return result, fmt.Errorf("%w: %s: key: %d", fault.ErrEraseFailed, result.Container, k)
		}
	}
	tally.Erases.Add(uint64(w.MapSize))
	result.Phases = append(result.Phases, phase(PhaseErase, w.MapSize, start))

	if 0 != c.Len() {
		return result, fmt.Errorf("%w: %s: after erase: %d", fault.ErrLengthMismatch, result.Container, c.Len())
	}

	for _, p := range result.Phases {
		log.Infof("%s: size: %d  %s: %d in %s  QPS: %.0f", result.Container, w.MapSize, p.Name, p.Operations, p.Duration, p.QPS())
	}
	return result, nil
}

func phase(name string, operations int, start time.Time) Phase {
	return Phase{
		Name:       name,
		Operations: uint64(operations),
		Duration:   time.Since(start),
	}
}
