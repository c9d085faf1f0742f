// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/mpaland/avl-array/fault"
	"github.com/mpaland/avl-array/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory  = "." // same directory as the config file
	defaultReportInterval = 0   // seconds, zero disables progress reports

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"benchmark":       "info",
		"reporter":        "info",
		logger.DefaultTag: "critical",
	}

	// DefaultContainers - compared by every run unless a run names its own
	DefaultContainers = []string{"avl", "btree", "map"}
)

// RunConfiguration - one benchmark size
type RunConfiguration struct {
	MapSize     int      `gluamapper:"map_size" json:"map_size"`
	TestCount   int      `gluamapper:"test_count" json:"test_count"`
	MissPercent int      `gluamapper:"miss_percent" json:"miss_percent"`
	Seed        int64    `gluamapper:"seed" json:"seed"`
	Containers  []string `gluamapper:"containers" json:"containers"`
}

// Configuration - the complete benchmark setup
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Runs           []RunConfiguration   `gluamapper:"benchmark" json:"benchmark"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DefaultRuns - the sizes compared when the configuration has none
func DefaultRuns() []RunConfiguration {
	sizes := []struct {
		mapSize     int
		testCount   int
		missPercent int
	}{
		{128, 10000, 20},
		{128, 10000, 10},
		{128, 10000, 1},
		{1024, 1000, 10},
		{1024, 1000, 0},
		{65535, 50, 10},
		{65535, 50, 0},
		{500000, 5, 10},
		{500000, 5, 0},
	}

	runs := make([]RunConfiguration, len(sizes))
	for i, s := range sizes {
		runs[i] = RunConfiguration{
			MapSize:     s.mapSize,
			TestCount:   s.testCount,
			MissPercent: s.missPercent,
			Seed:        1,
			Containers:  DefaultContainers,
		}
	}
	return runs
}

// GetConfiguration - read decode and verify the configuration
//
// an empty file name gives the defaults based in the current directory
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		ReportInterval: defaultReportInterval,
		Runs:           nil, // filled after parsing, the mapper merges into existing slices

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(map[string]string),
		},
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	// levels from the file override individual defaults
	for tag, level := range defaultLogLevels {
		if _, ok := options.Logging.Levels[tag]; !ok {
			options.Logging.Levels[tag] = level
		}
	}

	if err := options.validate(baseDirectory); nil != err {
		return nil, err
	}

	return options, nil
}

// apply defaults and check all values, directories are resolved from
// base and the log directory is created
func (options *Configuration) validate(baseDirectory string) error {

	if options.ReportInterval < 0 {
		return fault.ErrInvalidReportInterval
	}

	if 0 == len(options.Runs) {
		options.Runs = DefaultRuns()
	}
	for i := range options.Runs {
		if err := options.Runs[i].Validate(); nil != err {
			return fmt.Errorf("benchmark[%d]: %w", i+1, err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fault.ErrRequiredDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return fmt.Errorf("%w: %q is not a directory", fault.ErrRequiredDataDirectory, options.DataDirectory)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("%w: log file: %q is not plain name", fault.ErrInvalidLogFile, options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0o700)
}

// Validate - check the values of a single run; a run without
// containers compares the defaults
func (run *RunConfiguration) Validate() error {
	if run.MapSize <= 0 {
		return fault.ErrInvalidMapSize
	}
	if run.TestCount <= 0 {
		return fault.ErrInvalidTestCount
	}
	if run.MissPercent < 0 || run.MissPercent > 100 {
		return fault.ErrInvalidMissPercent
	}
	if 0 == len(run.Containers) {
		run.Containers = DefaultContainers
	}
	return nil
}
