// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"unsafe"

	"github.com/mpaland/avl-array/fault"
)

// Index - integer type used for slot indices and the size of a tree
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// child links of a slot, invalid index if absent
type child[I Index] struct {
	left  I
	right I
}

// Array - type to hold a fixed capacity tree
//
// separate arrays are used instead of a node structure to avoid
// padding between the small balance field and the keys/values
type Array[K comparable, V any, I Index] struct {
	keys     []K
	values   []V
	balance  []int8 // height(left) - height(right)
	children []child[I]
	less     func(a, b K) bool
	size     I // live nodes, also the next free slot
	root     I
	invalid  I // == capacity, the end sentinel
}

// New - create an initially empty tree for an ordered key type
func New[K cmp.Ordered, V any, I Index](capacity I) (*Array[K, V, I], error) {
	return NewFunc[K, V](capacity, cmp.Less[K])
}

// NewFunc - create an initially empty tree ordered by a strict less
// function, equality of keys uses ==
func NewFunc[K comparable, V any, I Index](capacity I, less func(a, b K) bool) (*Array[K, V, I], error) {
	if capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	if nil == less {
		return nil, fault.ErrMissingLessFunction
	}
	n := int(capacity)
	return &Array[K, V, I]{
		keys:     make([]K, n),
		values:   make([]V, n),
		balance:  make([]int8, n),
		children: make([]child[I], n),
		less:     less,
		size:     0,
		root:     capacity,
		invalid:  capacity,
	}, nil
}

// IsEmpty - true if tree contains no data
func (a *Array[K, V, I]) IsEmpty() bool {
	return 0 == a.size
}

// Size - number of nodes currently in the tree
func (a *Array[K, V, I]) Size() I {
	return a.size
}

// MaxSize - the fixed capacity of the tree
func (a *Array[K, V, I]) MaxSize() I {
	return a.invalid
}

// Clear - remove all nodes, storage is retained
func (a *Array[K, V, I]) Clear() {
	var zeroKey K
	var zeroValue V
	for i := I(0); i < a.size; i += 1 {
		a.keys[i] = zeroKey
		a.values[i] = zeroValue
	}
	a.size = 0
	a.root = a.invalid
}

// Footprint - bytes reserved by the tree and its backing arrays
func (a *Array[K, V, I]) Footprint() uintptr {
	var k K
	var v V
	var c child[I]
	n := uintptr(len(a.keys))
	return unsafe.Sizeof(*a) +
		n*unsafe.Sizeof(k) +
		n*unsafe.Sizeof(v) +
		n*unsafe.Sizeof(int8(0)) +
		n*unsafe.Sizeof(c)
}
