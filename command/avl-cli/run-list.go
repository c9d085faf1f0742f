// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func runList(c *cli.Context) error {

	m, t, _, err := load(c, nil)
	if nil != err {
		return err
	}

	return printJson(m.w, contents(t))
}

// key/value pairs in ascending key order
func contents(t *tree) []entry {
	list := make([]entry, 0, t.Size())
	for k, v := range t.All() {
		list = append(list, entry{Key: k, Value: v})
	}
	return list
}
