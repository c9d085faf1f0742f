// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// Reporter - background process logging the operations completed
// since its previous report
type Reporter struct {
	sync.Mutex
	log      *logger.L
	tally    *Tally
	interval time.Duration
	last     Snapshot
	lastTime time.Time
}

// NewReporter - create a reporter for a tally
func NewReporter(log *logger.L, tally *Tally, interval time.Duration) *Reporter {
	return &Reporter{
		log:      log,
		tally:    tally,
		interval: interval,
		last:     tally.Snapshot(),
		lastTime: time.Now(),
	}
}

// Run - report every interval until shutdown, then a final report
func (r *Reporter) Run(args interface{}, shutdown <-chan struct{}) {

	log := r.log
	log.Info("starting…")

	// no periodic reports without an interval
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-tick:
			r.Report()
		}
	}

	r.Report()
	log.Info("stopped")
}

// Report - log and return the operations since the previous report
func (r *Reporter) Report() Snapshot {
	r.Lock()
	defer r.Unlock()

	now := time.Now()
	current := r.tally.Snapshot()
	delta := current.Sub(r.last)
	elapsed := now.Sub(r.lastTime)

	r.last = current
	r.lastTime = now

	rate := 0.0
	if s := elapsed.Seconds(); s > 0 {
		rate = float64(delta.Total()) / s
	}
	r.log.Infof("inserts: %d  finds: %d  misses: %d  erases: %d  ops/s: %.0f",
		delta.Inserts, delta.Finds, delta.Misses, delta.Erases, rate)

	return delta
}
