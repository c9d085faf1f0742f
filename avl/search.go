// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - locate a key, returns the end iterator if it is not present
func (a *Array[K, V, I]) Find(key K) Iterator[K, V, I] {
	return Iterator[K, V, I]{
		array: a,
		index: a.search(key),
	}
}

// Get - fetch the value stored for a key
func (a *Array[K, V, I]) Get(key K) (V, bool) {
	i := a.search(key)
	if i == a.invalid {
		var zero V
		return zero, false
	}
	return a.values[i], true
}

// Count - number of nodes with the key, keys are unique so 0 or 1
func (a *Array[K, V, I]) Count(key K) I {
	if a.search(key) == a.invalid {
		return 0
	}
	return 1
}

// Contains - true if the key is present
func (a *Array[K, V, I]) Contains(key K) bool {
	return a.search(key) != a.invalid
}

// internal: slot of a key or invalid
func (a *Array[K, V, I]) search(key K) I {
	i := a.root
	for i != a.invalid {
		if key == a.keys[i] {
			return i
		}
		if a.less(key, a.keys[i]) {
			i = a.children[i].left
		} else {
			i = a.children[i].right
		}
	}
	return a.invalid
}

// internal: parent of a node, descending from the root by the node's
// key; invalid for the root
func (a *Array[K, V, I]) findParent(node I) I {
	key := a.keys[node]
	i := a.root
	for i != a.invalid {
		c := a.children[i]
		if c.left == node || c.right == node {
			return i
		}
		if a.less(key, a.keys[i]) {
			i = c.left
		} else {
			i = c.right
		}
	}
	return a.invalid
}
