// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// which side of its parent a node hangs from
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// the connector drawn in front of a node
var connector = [...]string{
	rootBranch:  "|------+ ",
	leftBranch:  "\\------+ ",
	rightBranch: "/------+ ",
}

type printer[K comparable, V any, I Index] struct {
	a    *Array[K, V, I]
	w    io.Writer
	data bool
}

// Print - display an ASCII graphic representation of the tree on
// stdout, right subtrees above left ones
func (a *Array[K, V, I]) Print(printData bool) int {
	return a.Fprint(os.Stdout, printData)
}

// Fprint - as Print but to any writer, returns the depth of the tree
//
// with printData each line also shows the value, the slot and the
// balance factor
func (a *Array[K, V, I]) Fprint(w io.Writer, printData bool) int {
	p := printer[K, V, I]{a: a, w: w, data: printData}
	return p.node(a.root, "", rootBranch)
}

func (p *printer[K, V, I]) node(i I, prefix string, br branch) int {
	if i == p.a.invalid {
		return 0
	}
	c := p.a.children[i]

	// the vertical bar continues only on the inner side of a branch
	rd := p.node(c.right, prefix+indent(leftBranch == br), rightBranch)

	fmt.Fprint(p.w, prefix, connector[br])
	if p.data {
		fmt.Fprintf(p.w, "%v → %v @%d %+2d\n", p.a.keys[i], p.a.values[i], i, p.a.balance[i])
	} else {
		fmt.Fprintf(p.w, "%v\n", p.a.keys[i])
	}

	ld := p.node(c.left, prefix+indent(rightBranch == br), leftBranch)
	return 1 + max(ld, rd)
}

func indent(bar bool) string {
	if bar {
		return "|      "
	}
	return "       "
}
