// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/mpaland/avl-array/configuration"
)

// values for a command line run when only some options are given
const (
	defaultMapSize     = 1024
	defaultTestCount   = 1000
	defaultMissPercent = 10
	defaultSeed        = 1
)

// any of the run options replaces the configured runs by a single run
func commandLineRuns(options map[string][]string, configured []configuration.RunConfiguration) ([]configuration.RunConfiguration, error) {

	run := configuration.RunConfiguration{
		MapSize:     defaultMapSize,
		TestCount:   defaultTestCount,
		MissPercent: defaultMissPercent,
		Seed:        defaultSeed,
		Containers:  options["container"],
	}

	integers := []struct {
		name  string
		value *int
	}{
		{"size", &run.MapSize},
		{"count", &run.TestCount},
		{"miss", &run.MissPercent},
	}

	given := len(run.Containers) > 0
	for _, item := range integers {
		v := options[item.name]
		if 0 == len(v) {
			continue
		}
		n, err := strconv.Atoi(v[len(v)-1])
		if nil != err {
			return nil, fmt.Errorf("%s: %q is not a number", item.name, v[len(v)-1])
		}
		*item.value = n
		given = true
	}

	if v := options["seed"]; len(v) > 0 {
		n, err := strconv.ParseInt(v[len(v)-1], 10, 64)
		if nil != err {
			return nil, fmt.Errorf("seed: %q is not a number", v[len(v)-1])
		}
		run.Seed = n
		given = true
	}

	if !given {
		return configured, nil
	}

	if err := run.Validate(); nil != err {
		return nil, err
	}
	return []configuration.RunConfiguration{run}, nil
}
