// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mpaland/avl-array/background"
	"github.com/mpaland/avl-array/counter"
)

type ticker struct {
	ticks    counter.Counter
	args     interface{}
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			state.ticks.Increment()
		}
	}

	state.finished = true
}

func TestBackground(t *testing.T) {

	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, "argument")
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	// Stop waits for both to return
	assert.True(t, proc1.finished, "first process still running")
	assert.True(t, proc2.finished, "second process still running")

	assert.False(t, proc1.ticks.IsZero(), "first process did not run")
	assert.False(t, proc2.ticks.IsZero(), "second process did not run")

	assert.Equal(t, "argument", proc1.args)
	assert.Equal(t, "argument", proc2.args)

	// no more ticks after stop
	n := proc1.ticks.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, proc1.ticks.Uint64())
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, nil)
	p.Stop()
	p.Stop()
}

func TestNoProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
