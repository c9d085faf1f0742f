// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - compare the fixed capacity AVL tree against
// ordered and hashed map containers
//
// every run uses the same workload for each container: a shuffled
// list of distinct keys 1..N and a lookup list where a percentage of
// the entries is replaced by the absent key 0.  Four phases are
// timed: insert, find, erase&insert and erase.
package benchmark
