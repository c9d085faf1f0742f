// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mpaland/avl-array/avl"
	"github.com/mpaland/avl-array/fault"
)

type tree = avl.Array[string, string, int]

// script operations
const (
	opInsert = "insert"
	opErase  = "erase"
	opFind   = "find"
)

type operation struct {
	line  int
	kind  string
	key   string
	value string
}

// summary of applying a script
type outcome struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Rejected int `json:"rejected"`
	Erased   int `json:"erased"`
	Found    int `json:"found"`
	Missing  int `json:"missing"`
}

// read all operations, nothing is applied if any line is bad
func parseScript(r io.Reader) ([]operation, error) {
	ops := []operation{}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		op := operation{
			line: n,
			kind: fields[0],
		}
		switch op.kind {
		case opInsert:
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line: %d  insert needs KEY VALUE", fault.ErrInvalidScriptLine, n)
			}
			op.key = fields[1]
			rest := strings.TrimSpace(line[len(opInsert):])
			op.value = strings.TrimSpace(rest[len(op.key):])

		case opErase, opFind:
			if 2 != len(fields) {
				return nil, fmt.Errorf("%w: line: %d  %s needs KEY", fault.ErrInvalidScriptLine, n, op.kind)
			}
			op.key = fields[1]

		default:
			return nil, fmt.Errorf("%w: line: %d  %q", fault.ErrUnknownScriptOperation, n, op.kind)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return ops, nil
}

var (
	good = color.New(color.FgGreen)
	bad  = color.New(color.FgRed)
)

// apply operations in order, a line per operation is written to w
// unless it is nil
func apply(t *tree, ops []operation, w io.Writer) outcome {
	result := outcome{}
	for _, op := range ops {
		switch op.kind {
		case opInsert:
			exists := t.Contains(op.key)
			if !t.Insert(op.key, op.value) {
				result.Rejected += 1
				report(w, bad, op, "full")
			} else if exists {
				result.Updated += 1
				report(w, good, op, "updated")
			} else {
				result.Inserted += 1
				report(w, good, op, "inserted")
			}

		case opErase:
			if t.Erase(op.key) {
				result.Erased += 1
				report(w, good, op, "erased")
			} else {
				result.Missing += 1
				report(w, bad, op, "missing")
			}

		case opFind:
			if v, ok := t.Get(op.key); ok {
				result.Found += 1
				report(w, good, op, "found: "+v)
			} else {
				result.Missing += 1
				report(w, bad, op, "missing")
			}
		}
	}
	return result
}

func report(w io.Writer, c *color.Color, op operation, message string) {
	if nil == w {
		return
	}
	fmt.Fprintf(w, "%4d: %-6s %s  ", op.line, op.kind, op.key)
	c.Fprintf(w, "%s", message)
	fmt.Fprintln(w)
}
