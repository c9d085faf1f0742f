// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the rotations relink the grandparent (or the root), which is found
// before any link changes, and return the slot of the new subtree
// root.  Balances are derived from the balances before the rotation,
// not recomputed from heights.

// single RR rotation
func (a *Array[K, V, I]) rotateLeft(node I) I {
	right := a.children[node].right
	rightLeft := a.children[right].left
	parent := a.findParent(node)

	a.children[right].left = node
	a.children[node].right = rightLeft

	a.relink(node, parent, right)

	a.balance[right] += 1
	a.balance[node] = -a.balance[right]

	return right
}

// single LL rotation
func (a *Array[K, V, I]) rotateRight(node I) I {
	left := a.children[node].left
	leftRight := a.children[left].right
	parent := a.findParent(node)

	a.children[left].right = node
	a.children[node].left = leftRight

	a.relink(node, parent, left)

	a.balance[left] -= 1
	a.balance[node] = -a.balance[left]

	return left
}

// double LR rotation
func (a *Array[K, V, I]) rotateLeftRight(node I) I {
	left := a.children[node].left
	leftRight := a.children[left].right
	leftRightRight := a.children[leftRight].right
	leftRightLeft := a.children[leftRight].left
	parent := a.findParent(node)

	a.children[node].left = leftRightRight
	a.children[left].right = leftRightLeft
	a.children[leftRight].left = left
	a.children[leftRight].right = node

	a.relink(node, parent, leftRight)

	switch a.balance[leftRight] {
	case -1:
		a.balance[node] = 0
		a.balance[left] = 1
	case 0:
		a.balance[node] = 0
		a.balance[left] = 0
	default:
		a.balance[node] = -1
		a.balance[left] = 0
	}
	a.balance[leftRight] = 0

	return leftRight
}

// double RL rotation
func (a *Array[K, V, I]) rotateRightLeft(node I) I {
	right := a.children[node].right
	rightLeft := a.children[right].left
	rightLeftLeft := a.children[rightLeft].left
	rightLeftRight := a.children[rightLeft].right
	parent := a.findParent(node)

	a.children[node].right = rightLeftLeft
	a.children[right].left = rightLeftRight
	a.children[rightLeft].right = right
	a.children[rightLeft].left = node

	a.relink(node, parent, rightLeft)

	switch a.balance[rightLeft] {
	case 1:
		a.balance[node] = 0
		a.balance[right] = -1
	case 0:
		a.balance[node] = 0
		a.balance[right] = 0
	default:
		a.balance[node] = 1
		a.balance[right] = 0
	}
	a.balance[rightLeft] = 0

	return rightLeft
}
