// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
)

const (
	kiloByte = 1024
	megaByte = 1024 * kiloByte
	gigaByte = 1024 * megaByte
)

// FormatSize - human readable memory size, scaled only when strictly
// above a unit so exactly 1024 bytes is "1024b"
func FormatSize(size uintptr) string {
	s := uint64(size)
	switch {
	case s > gigaByte:
		return fmt.Sprintf("%.2fGb", float64(s)/gigaByte)
	case s > megaByte:
		return fmt.Sprintf("%.2fMb", float64(s)/megaByte)
	case s > kiloByte:
		return fmt.Sprintf("%.2fkb", float64(s)/kiloByte)
	}
	return fmt.Sprintf("%db", s)
}
