// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/mpaland/avl-array/fault"
)

// Check - verify that every occupied slot is ordered with respect to
// its children
func (a *Array[K, V, I]) Check() bool {
	for i := I(0); i < a.size; i += 1 {
		l := a.children[i].left
		r := a.children[i].right
		if l != a.invalid {
			if l >= a.size || !a.less(a.keys[l], a.keys[i]) || a.keys[l] == a.keys[i] {
				return false
			}
		}
		if r != a.invalid {
			if r >= a.size || a.less(a.keys[r], a.keys[i]) || a.keys[r] == a.keys[i] {
				return false
			}
		}
	}
	return true
}

// Verify - full structural consistency check, slower than Check
//
// verifies the root/size relation, that exactly size nodes are
// reachable without cycles, strictly ascending keys in order and
// that each stored balance matches the subtree heights
func (a *Array[K, V, I]) Verify() error {
	if (a.root == a.invalid) != (0 == a.size) {
		return fmt.Errorf("%w: root: %d  size: %d", fault.ErrCorruptTree, a.root, a.size)
	}
	v := verifier[K, V, I]{
		array: a,
		seen:  make([]bool, int(a.size)),
	}
	if _, err := v.check(a.root); nil != err {
		return err
	}
	if v.count != int(a.size) {
		return fmt.Errorf("%w: reachable: %d  size: %d", fault.ErrCorruptTree, v.count, a.size)
	}
	return nil
}

// Height - number of levels in the tree, 0 when empty
func (a *Array[K, V, I]) Height() int {
	return a.height(a.root)
}

func (a *Array[K, V, I]) height(i I) int {
	if i == a.invalid {
		return 0
	}
	return 1 + max(a.height(a.children[i].left), a.height(a.children[i].right))
}

// state of one Verify pass
type verifier[K comparable, V any, I Index] struct {
	array   *Array[K, V, I]
	seen    []bool
	count   int
	last    K
	hasLast bool
}

// in-order walk returning the height of the subtree at i
func (v *verifier[K, V, I]) check(i I) (int, error) {
	a := v.array
	if i == a.invalid {
		return 0, nil
	}
	if i < 0 || i >= a.size {
		return 0, fmt.Errorf("%w: slot: %d  outside size: %d", fault.ErrCorruptTree, i, a.size)
	}
	if v.seen[i] {
		return 0, fmt.Errorf("%w: slot: %d  reached twice", fault.ErrCorruptTree, i)
	}
	v.seen[i] = true

	lh, err := v.check(a.children[i].left)
	if nil != err {
		return 0, err
	}

	if v.hasLast && !a.less(v.last, a.keys[i]) {
		return 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrCorruptTree, a.keys[i], v.last)
	}
	v.last = a.keys[i]
	v.hasLast = true
	v.count += 1

	rh, err := v.check(a.children[i].right)
	if nil != err {
		return 0, err
	}

	b := a.balance[i]
	if b < -1 || b > 1 || int(b) != lh-rh {
		return 0, fmt.Errorf("%w: slot: %d  balance: %d  heights: %d/%d", fault.ErrCorruptTree, i, b, lh, rh)
	}
	return 1 + max(lh, rh), nil
}
