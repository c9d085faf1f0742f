// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - removes a specific key from the tree
//
// returns false if the key was not found
func (a *Array[K, V, I]) Erase(key K) bool {
	return a.erase(a.search(key))
}

// EraseAt - removes the node an iterator points to
//
// returns false for an end iterator or one from a different tree
func (a *Array[K, V, I]) EraseAt(position Iterator[K, V, I]) bool {
	if position.array != a {
		return false
	}
	return a.erase(position.index)
}

// internal delete routine
func (a *Array[K, V, I]) erase(node I) bool {
	if a.IsEmpty() || node >= a.size {
		return false
	}

	left := a.children[node].left
	right := a.children[node].right

	// the slot that leaves the tree shape
	vacated := node

	if left == a.invalid {
		if right == a.invalid {
			// leaf
			if node == a.root {
				a.root = a.invalid
			} else {
				parent := a.findParent(node)
				if a.children[parent].left == node {
					a.children[parent].left = a.invalid
					a.deleteBalance(parent, -1)
				} else {
					a.children[parent].right = a.invalid
					a.deleteBalance(parent, 1)
				}
			}
		} else {
			// only a right child: pull it up into this slot
			a.replace(node, right)
			vacated = right
			a.deleteBalance(node, 0)
		}
	} else if right == a.invalid {
		// only a left child: pull it up into this slot
		a.replace(node, left)
		vacated = left
		a.deleteBalance(node, 0)
	} else {
		successor := right
		if a.children[successor].left == a.invalid {
			// in-order successor is the right child
			parent := a.findParent(node)
			a.children[successor].left = left
			a.balance[successor] = a.balance[node]
			a.relink(node, parent, successor)
			a.deleteBalance(successor, 1)
		} else {
			for a.children[successor].left != a.invalid {
				successor = a.children[successor].left
			}

			parent := a.findParent(node)
			successorParent := a.findParent(successor)
			successorRight := a.children[successor].right

			// detach successor, its right subtree takes its place
			if a.children[successorParent].left == successor {
				a.children[successorParent].left = successorRight
			} else {
				a.children[successorParent].right = successorRight
			}

			// successor takes over the position of node
			a.children[successor].left = left
			a.children[successor].right = right
			a.balance[successor] = a.balance[node]
			a.relink(node, parent, successor)

			a.deleteBalance(successorParent, -1)
		}
	}

	a.size -= 1
	a.release(vacated)
	return true
}

// point the parent link of node (or the root) at replacement
func (a *Array[K, V, I]) relink(node I, parent I, replacement I) {
	if node == a.root {
		a.root = replacement
	} else if a.children[parent].left == node {
		a.children[parent].left = replacement
	} else {
		a.children[parent].right = replacement
	}
}

// delete: walk up from the point where a subtree lost height
//
// delta is -1 when the left subtree of node shrank, +1 for the right
// and 0 when node itself already holds the shrunken subtree.  Unlike
// insert, a rotation here can shorten the subtree so propagation only
// stops when the new subtree root is left unbalanced by one.
func (a *Array[K, V, I]) deleteBalance(node I, delta int8) {
	for node != a.invalid {
		a.balance[node] += delta

		switch a.balance[node] {
		case 2:
			if a.balance[a.children[node].left] >= 0 {
				node = a.rotateRight(node)
				if -1 == a.balance[node] {
					return
				}
			} else {
				node = a.rotateLeftRight(node)
			}

		case -2:
			if a.balance[a.children[node].right] <= 0 {
				node = a.rotateLeft(node)
				if 1 == a.balance[node] {
					return
				}
			} else {
				node = a.rotateRightLeft(node)
			}

		case 0:
			// height of this subtree dropped, continue upwards

		default:
			return
		}

		parent := a.findParent(node)
		if parent != a.invalid {
			if a.children[parent].left == node {
				delta = -1
			} else {
				delta = 1
			}
		}
		node = parent
	}
}
