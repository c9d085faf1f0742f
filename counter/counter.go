// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - an operation count that one go routine advances while
// others read it
//
// the zero value is ready to use, a Counter must not be copied after
// first use
type Counter struct {
	n atomic.Uint64
}

// Increment - count one operation, returns the new total
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Add - count a whole pass of operations, returns the new total
func (c *Counter) Add(operations uint64) uint64 {
	return c.n.Add(operations)
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - nothing counted yet
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// Reset - start again from zero, returns the total before the reset
func (c *Counter) Reset() uint64 {
	return c.n.Swap(0)
}
