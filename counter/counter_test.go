// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/mpaland/avl-array/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(1000); 1003 != n {
		t.Errorf("add returned: %d  expected: 1003", n)
	}

	if n := c1.Reset(); 1003 != n {
		t.Errorf("reset returned: %d  expected: 1003", n)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

// increments from many go routines must not be lost
func TestConcurrent(t *testing.T) {

	var c counter.Counter
	var wg sync.WaitGroup

	const routines = 8
	const increments = 10000

	for i := 0; i < routines; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if routines*increments != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), routines*increments)
	}
}
