// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"io"

	"github.com/mpaland/avl-array/util"
)

// FormatResults - write a report grouped by run, one line per phase
// and container
func FormatResults(w io.Writer, results []Result) error {
	previous := ""
	for _, r := range results {
		header := fmt.Sprintf("mapSize: %d  testCount: %d  missPercent: %d", r.MapSize, r.TestCount, r.MissPercent)
		if header != previous {
			if "" != previous {
				if _, err := fmt.Fprintln(w); nil != err {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, header); nil != err {
				return err
			}
			previous = header
		}

		if _, err := fmt.Fprintf(w, "%-6s footprint: %s  misses: %d\n", r.Container, util.FormatSize(r.Footprint), r.Misses); nil != err {
			return err
		}
		for _, p := range r.Phases {
			_, err := fmt.Fprintf(w, "%-6s %-13s %9d ops  %12s  QPS: %.0f\n", r.Container, p.Name, p.Operations, p.Duration, p.QPS())
			if nil != err {
				return err
			}
		}
	}
	return nil
}
