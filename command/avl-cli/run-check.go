// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mpaland/avl-array/fault"
)

func runCheck(c *cli.Context) error {

	m, t, _, err := load(c, nil)
	if nil != err {
		return err
	}

	if !t.Check() {
		return fault.ErrCorruptTree
	}
	if err := t.Verify(); nil != err {
		return err
	}

	fmt.Fprintf(m.w, "ok: size: %d  height: %d\n", t.Size(), t.Height())
	return nil
}
