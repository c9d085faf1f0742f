// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// occupy the first free slot, caller must have checked capacity
func (a *Array[K, V, I]) allocate(key K, value V) I {
	n := a.size
	a.keys[n] = key
	a.values[n] = value
	a.balance[n] = 0
	a.children[n] = child[I]{left: a.invalid, right: a.invalid}
	a.size += 1
	return n
}

// release a slot that is no longer part of the tree
//
// must be called after size has been decremented, so the last occupied
// slot is at index size. That node is moved into the released slot to
// keep every reachable index below size.
func (a *Array[K, V, I]) release(slot I) {
	last := a.size
	if slot != last {
		a.keys[slot] = a.keys[last]
		a.values[slot] = a.values[last]
		a.balance[slot] = a.balance[last]
		a.children[slot] = a.children[last]

		if last == a.root {
			a.root = slot
		} else {
			parent := a.findParent(last)
			if a.children[parent].left == last {
				a.children[parent].left = slot
			} else {
				a.children[parent].right = slot
			}
		}
	}

	// drop references held by the abandoned slot
	var zeroKey K
	var zeroValue V
	a.keys[last] = zeroKey
	a.values[last] = zeroValue
	a.balance[last] = 0
	a.children[last] = child[I]{left: a.invalid, right: a.invalid}
}

// copy the contents of the source slot over the target slot
func (a *Array[K, V, I]) replace(target I, source I) {
	a.keys[target] = a.keys[source]
	a.values[target] = a.values[source]
	a.balance[target] = a.balance[source]
	a.children[target] = a.children[source]
}
