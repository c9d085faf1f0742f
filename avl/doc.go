// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a fixed capacity AVL balanced tree stored in
// parallel arrays and addressed by slot index instead of pointer
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// All storage is reserved when the tree is created; insert, find and
// erase never allocate.  A node carries no parent index, so whenever
// a parent is needed (rebalancing, iteration) it is found again by
// descending from the root using the node's key.
//
// Inserting an existing key overwrites the value in place.  Inserting
// a new key into a full tree fails and leaves the tree unchanged.
//
// New nodes are always placed in the first free slot (Size()); erase
// keeps the occupied slots dense by moving the last node into the slot
// that was released.  Slot indices, and therefore iterators, must not
// be kept across any insert or erase.
package avl
