// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpaland/avl-array/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"))
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./x/../log"))
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log/"))
}

func TestIsDirectoryAndFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "util-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "bench.conf")
	if err := os.WriteFile(file, []byte("return {}\n"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	assert.True(t, util.IsDirectory(dir))
	assert.False(t, util.IsFile(dir))
	assert.True(t, util.IsFile(file))
	assert.False(t, util.IsDirectory(file))
	assert.False(t, util.IsFile(filepath.Join(dir, "missing")))
}
