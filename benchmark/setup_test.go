// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

// test log files
const (
	testingDirName = "testing"
	logCategory    = "benchmark"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	if err := setup(); err != nil {
		os.Exit(1)
	}
	result := m.Run()
	teardown()
	os.Exit(result)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup() error {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	return logger.Initialise(logging)
}

// post test cleanup
func teardown() {
	logger.Finalise()
	removeFiles()
}
