// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/tidwall/btree"

	"github.com/mpaland/avl-array/avl"
	"github.com/mpaland/avl-array/fault"
)

//go:generate mockgen -source=container.go -destination=mocks/container.go -package=mocks

// Container - the operations timed by a benchmark run
type Container interface {
	Name() string
	Insert(key int, value int) bool
	Get(key int) (int, bool)
	Erase(key int) bool
	Len() int
	Footprint() uintptr
}

// Factory - create an empty container able to hold capacity keys
type Factory func(capacity int) (Container, error)

// container names used in the configuration
const (
	AVLName   = "avl"
	BTreeName = "btree"
	MapName   = "map"
)

var factories = map[string]Factory{
	AVLName:   NewAVL,
	BTreeName: NewBTree,
	MapName:   NewMap,
}

// Lookup - find the factory for a configured container name
func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotFoundContainer, name)
	}
	return f, nil
}

// Names - all container names in sorted order
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fixed capacity AVL tree
type avlContainer struct {
	tree *avl.Array[int, int, int]
}

// NewAVL - container backed by avl.Array
func NewAVL(capacity int) (Container, error) {
	tree, err := avl.New[int, int](capacity)
	if nil != err {
		return nil, err
	}
	return &avlContainer{tree: tree}, nil
}

func (c *avlContainer) Name() string {
	return AVLName
}

func (c *avlContainer) Insert(key int, value int) bool {
	return c.tree.Insert(key, value)
}

func (c *avlContainer) Get(key int) (int, bool) {
	return c.tree.Get(key)
}

func (c *avlContainer) Erase(key int) bool {
	return c.tree.Erase(key)
}

func (c *avlContainer) Len() int {
	return c.tree.Size()
}

func (c *avlContainer) Footprint() uintptr {
	return c.tree.Footprint()
}

// ordered baseline
type btreeContainer struct {
	tree btree.Map[int, int]
}

// NewBTree - container backed by a tidwall B-tree map, capacity is
// not enforced
func NewBTree(capacity int) (Container, error) {
	if capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	return &btreeContainer{}, nil
}

func (c *btreeContainer) Name() string {
	return BTreeName
}

func (c *btreeContainer) Insert(key int, value int) bool {
	c.tree.Set(key, value)
	return true
}

func (c *btreeContainer) Get(key int) (int, bool) {
	return c.tree.Get(key)
}

func (c *btreeContainer) Erase(key int) bool {
	_, deleted := c.tree.Delete(key)
	return deleted
}

func (c *btreeContainer) Len() int {
	return c.tree.Len()
}

// lower bound: the key/value payload only, node overhead is not visible
func (c *btreeContainer) Footprint() uintptr {
	return unsafe.Sizeof(*c) + uintptr(c.tree.Len())*2*unsafe.Sizeof(int(0))
}

// hashed baseline
type mapContainer struct {
	m map[int]int
}

// NewMap - container backed by a builtin map sized for capacity,
// capacity is not enforced
func NewMap(capacity int) (Container, error) {
	if capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	return &mapContainer{m: make(map[int]int, capacity)}, nil
}

func (c *mapContainer) Name() string {
	return MapName
}

func (c *mapContainer) Insert(key int, value int) bool {
	c.m[key] = value
	return true
}

func (c *mapContainer) Get(key int) (int, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *mapContainer) Erase(key int) bool {
	if _, ok := c.m[key]; !ok {
		return false
	}
	delete(c.m, key)
	return true
}

func (c *mapContainer) Len() int {
	return len(c.m)
}

// lower bound: the key/value payload only, bucket overhead is not visible
func (c *mapContainer) Footprint() uintptr {
	return unsafe.Sizeof(*c) + uintptr(len(c.m))*2*unsafe.Sizeof(int(0))
}
