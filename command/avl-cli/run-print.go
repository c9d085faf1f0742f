// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m, t, _, err := load(c, nil)
	if nil != err {
		return err
	}

	if t.IsEmpty() {
		fmt.Fprintf(m.w, "empty tree\n")
		return nil
	}

	depth := t.Fprint(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}
