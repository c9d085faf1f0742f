// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mpaland/avl-array/avl"
	"github.com/mpaland/avl-array/fault"
)

const script = `
# fill
insert b  second value
insert a first
insert c third

find a
find z
insert a replaced
erase b
erase b
insert d fourth
`

func TestParseScript(t *testing.T) {
	ops, err := parseScript(strings.NewReader(script))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	assert.Equal(t, 9, len(ops))
	assert.Equal(t, operation{line: 3, kind: opInsert, key: "b", value: "second value"}, ops[0])
	assert.Equal(t, operation{line: 7, kind: opFind, key: "a"}, ops[3])
	assert.Equal(t, operation{line: 10, kind: opErase, key: "b"}, ops[6])
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		text     string
		expected error
	}{
		{"insert a", fault.ErrInvalidScriptLine},
		{"find", fault.ErrInvalidScriptLine},
		{"erase a b", fault.ErrInvalidScriptLine},
		{"\n\ndelete a", fault.ErrUnknownScriptOperation},
	}

	for i, test := range tests {
		ops, err := parseScript(strings.NewReader(test.text))
		assert.Nil(t, ops, "%d: operations returned", i)
		assert.True(t, errors.Is(err, test.expected), "%d: actual: %v  expected: %v", i, err, test.expected)
	}

	_, err := parseScript(strings.NewReader("delete a"))
	assert.Contains(t, err.Error(), "line: 1")
}

func TestApply(t *testing.T) {
	color.NoColor = true

	ops, err := parseScript(strings.NewReader(script))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	tr, _ := avl.New[string, string](3)
	buffer := &bytes.Buffer{}
	result := apply(tr, ops, buffer)

	expected := outcome{
		Inserted: 4,
		Updated:  1,
		Rejected: 0,
		Erased:   1,
		Found:    1,
		Missing:  2,
	}
	assert.Equal(t, expected, result)
	assert.Equal(t, []entry{{"a", "replaced"}, {"c", "third"}, {"d", "fourth"}}, contents(tr))
	assert.Nil(t, tr.Verify())

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 9, len(lines))
	assert.Equal(t, "   7: find   a  found: first", lines[3])
	assert.Equal(t, "   8: find   z  missing", lines[4])
}

func TestApplyFull(t *testing.T) {
	ops, _ := parseScript(strings.NewReader("insert a 1\ninsert b 2\ninsert c 3\ninsert a 4\n"))

	tr, _ := avl.New[string, string](2)
	result := apply(tr, ops, nil)

	assert.Equal(t, outcome{Inserted: 2, Updated: 1, Rejected: 1}, result)
	v, ok := tr.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	assert.False(t, tr.Contains("c"))
}
