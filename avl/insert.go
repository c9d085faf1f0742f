// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or update the value of an
// existing key
//
// returns false only when the key is new and the tree is full, the
// tree is then unchanged
func (a *Array[K, V, I]) Insert(key K, value V) bool {
	if a.root == a.invalid {
		a.root = a.allocate(key, value)
		return true
	}

	i := a.root
	for i != a.invalid {
		if key == a.keys[i] {
			a.values[i] = value
			return true
		}
		if a.less(key, a.keys[i]) {
			if a.children[i].left == a.invalid {
				if a.size >= a.invalid {
					return false
				}
				a.children[i].left = a.allocate(key, value)
				a.insertBalance(i, 1)
				return true
			}
			i = a.children[i].left
		} else {
			if a.children[i].right == a.invalid {
				if a.size >= a.invalid {
					return false
				}
				a.children[i].right = a.allocate(key, value)
				a.insertBalance(i, -1)
				return true
			}
			i = a.children[i].right
		}
	}
	return false
}

// insert: walk up from the parent of a new node
//
// delta is +1 when the left subtree of node grew, -1 for the right
func (a *Array[K, V, I]) insertBalance(node I, delta int8) {
	for node != a.invalid {
		a.balance[node] += delta

		switch a.balance[node] {
		case 0:
			return

		case 2:
			if 1 == a.balance[a.children[node].left] {
				a.rotateRight(node)
			} else {
				a.rotateLeftRight(node)
			}
			return

		case -2:
			if -1 == a.balance[a.children[node].right] {
				a.rotateLeft(node)
			} else {
				a.rotateRightLeft(node)
			}
			return
		}

		parent := a.findParent(node)
		if parent != a.invalid {
			if a.children[parent].left == node {
				delta = 1
			} else {
				delta = -1
			}
		}
		node = parent
	}
}
