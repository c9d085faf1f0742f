// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - in-order position in a tree
//
// any insert or erase invalidates all iterators of that tree
type Iterator[K comparable, V any, I Index] struct {
	array *Array[K, V, I]
	index I
}

// Begin - iterator at the node with the lowest key, End() if empty
func (a *Array[K, V, I]) Begin() Iterator[K, V, I] {
	return Iterator[K, V, I]{
		array: a,
		index: a.first(a.root),
	}
}

// First - same as Begin
func (a *Array[K, V, I]) First() Iterator[K, V, I] {
	return a.Begin()
}

// Last - iterator at the node with the highest key, End() if empty
func (a *Array[K, V, I]) Last() Iterator[K, V, I] {
	return Iterator[K, V, I]{
		array: a,
		index: a.last(a.root),
	}
}

// End - the past the end iterator
func (a *Array[K, V, I]) End() Iterator[K, V, I] {
	return Iterator[K, V, I]{
		array: a,
		index: a.invalid,
	}
}

// internal: lowest node in a sub-tree
func (a *Array[K, V, I]) first(i I) I {
	n := a.invalid
	for ; i != a.invalid; i = a.children[i].left {
		n = i
	}
	return n
}

// internal: highest node in a sub-tree
func (a *Array[K, V, I]) last(i I) I {
	n := a.invalid
	for ; i != a.invalid; i = a.children[i].right {
		n = i
	}
	return n
}

// IsEnd - true once the iterator has moved past the last node
func (it Iterator[K, V, I]) IsEnd() bool {
	return nil == it.array || it.index == it.array.invalid
}

// Equal - iterators are equal if they denote the same slot
func (it Iterator[K, V, I]) Equal(other Iterator[K, V, I]) bool {
	return it.index == other.index
}

// Key - key of the current node, must not be called at the end
func (it Iterator[K, V, I]) Key() K {
	return it.array.keys[it.index]
}

// Value - value of the current node, must not be called at the end
func (it Iterator[K, V, I]) Value() V {
	return it.array.values[it.index]
}

// SetValue - overwrite the value of the current node
func (it Iterator[K, V, I]) SetValue(value V) {
	it.array.values[it.index] = value
}

// Next - advance to the node with the next highest key, an iterator
// at the end stays there
func (it *Iterator[K, V, I]) Next() {
	a := it.array
	if it.IsEnd() {
		return
	}

	// successor is the furthest left node of the right subtree
	if r := a.children[it.index].right; r != a.invalid {
		it.index = a.first(r)
		return
	}

	// otherwise climb while coming up from a right subtree, the first
	// parent reached from its left subtree is the successor
	i := a.findParent(it.index)
	for i != a.invalid && it.index == a.children[i].right {
		it.index = i
		i = a.findParent(it.index)
	}
	it.index = i
}

// Prev - move to the node with the next lowest key; from the end the
// iterator moves to the last node, before the first it becomes End()
func (it *Iterator[K, V, I]) Prev() {
	a := it.array
	if nil == a {
		return
	}
	if it.index == a.invalid {
		it.index = a.last(a.root)
		return
	}

	if l := a.children[it.index].left; l != a.invalid {
		it.index = a.last(l)
		return
	}

	i := a.findParent(it.index)
	for i != a.invalid && it.index == a.children[i].left {
		it.index = i
		i = a.findParent(it.index)
	}
	it.index = i
}

// All - key/value pairs in ascending key order
func (a *Array[K, V, I]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := a.Begin(); !it.IsEnd(); it.Next() {
			if !yield(a.keys[it.index], a.values[it.index]) {
				return
			}
		}
	}
}

// Keys - keys in ascending order
func (a *Array[K, V, I]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := a.Begin(); !it.IsEnd(); it.Next() {
			if !yield(a.keys[it.index]) {
				return
			}
		}
	}
}

// Values - values in ascending key order
func (a *Array[K, V, I]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := a.Begin(); !it.IsEnd(); it.Next() {
			if !yield(a.values[it.index]) {
				return
			}
		}
	}
}
