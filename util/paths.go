// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configured path against a base directory
//
// absolute paths are only cleaned, so "/var/log/" gives "/var/log"
func EnsureAbsolute(base string, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(base, configured)
}

// IsDirectory - name exists and is a directory
func IsDirectory(name string) bool {
	return isKind(name, true)
}

// IsFile - name exists and is not a directory
func IsFile(name string) bool {
	return isKind(name, false)
}

func isKind(name string, directory bool) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return directory == info.IsDir()
}
