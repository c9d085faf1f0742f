// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/mpaland/avl-array/avl"
)

// read the script named by the first argument ("-" or none for
// standard input) and apply it to a new tree
func load(c *cli.Context, w io.Writer) (*metadata, *tree, outcome, error) {

	m := c.App.Metadata["config"].(*metadata)

	r := io.Reader(os.Stdin)
	name := c.Args().First()
	if "" != name && "-" != name {
		f, err := os.Open(name)
		if nil != err {
			return m, nil, outcome{}, err
		}
		defer f.Close()
		r = f
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %q  capacity: %d\n", name, m.capacity)
	}

	ops, err := parseScript(r)
	if nil != err {
		return m, nil, outcome{}, err
	}

	t, err := avl.New[string, string](m.capacity)
	if nil != err {
		return m, nil, outcome{}, err
	}

	result := apply(t, ops, w)

	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  size: %d  height: %d\n", len(ops), t.Size(), t.Height())
	}
	return m, t, result, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
