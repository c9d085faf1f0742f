// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - apply a script of operations to a fixed capacity tree
//
// a script has one operation per line, blank lines and lines starting
// with # are ignored:
//
//   insert KEY VALUE
//   erase KEY
//   find KEY
//
// keys and values are strings, the value is the rest of the line.
//
// every command reads the script named by its argument, or standard
// input when that is "-" or missing, applies it to an empty tree of
// --capacity slots and then:
//
//   run    prints the outcome of each operation and a JSON summary
//   print  draws the tree, --data adds values, slots and balances
//   check  verifies the tree structure
//   list   prints the contents in key order as JSON
package main
