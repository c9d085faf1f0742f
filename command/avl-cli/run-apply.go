// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runApply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	_, t, result, err := load(c, m.w)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		outcome
		Size     int `json:"size"`
		Capacity int `json:"capacity"`
	}{
		outcome:  result,
		Size:     t.Size(),
		Capacity: t.MaxSize(),
	})
}
