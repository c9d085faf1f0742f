// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

type metadata struct {
	capacity int
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "apply operation scripts to a fixed capacity AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.IntFlag{
			Name:  "capacity, c",
			Value: 1024,
			Usage: " maximum number of keys in the tree `COUNT`",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: " plain output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "apply a script and show the outcome of every operation",
			ArgsUsage: "[SCRIPT-FILE]\n   (standard input if omitted)",
			Action:    runApply,
		},
		{
			Name:      "print",
			Usage:     "apply a script and draw the resulting tree",
			ArgsUsage: "[SCRIPT-FILE]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " show values, slots and balance factors",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "check",
			Usage:     "apply a script and verify the tree structure",
			ArgsUsage: "[SCRIPT-FILE]",
			Action:    runCheck,
		},
		{
			Name:      "list",
			Usage:     "apply a script and list the contents in key order as JSON",
			ArgsUsage: "[SCRIPT-FILE]",
			Action:    runList,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		if c.GlobalBool("no-color") {
			color.NoColor = true
		}

		capacity := c.GlobalInt("capacity")
		if capacity <= 0 {
			return fmt.Errorf("capacity: %d must be positive", capacity)
		}

		c.App.Metadata["config"] = &metadata{
			capacity: capacity,
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
