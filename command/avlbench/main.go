// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/mpaland/avl-array/background"
	"github.com/mpaland/avl-array/benchmark"
	"github.com/mpaland/avl-array/configuration"
	"github.com/mpaland/avl-array/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "size", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "miss", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "container", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--size=N] [--count=N] [--miss=PERCENT] [--seed=N] [--container=NAME...]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	runs, err := commandLineRuns(options, masterConfiguration.Runs)
	if nil != err {
		exitwithstatus.Message("%s: invalid benchmark option: %s", program, err)
	}

	// every container name must be known before anything runs
	for _, run := range runs {
		for _, name := range run.Containers {
			if _, err := benchmark.Lookup(name); nil != err {
				exitwithstatus.Message("%s: %s  valid containers: %v", program, err, benchmark.Names())
			}
		}
	}

	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	tally := &benchmark.Tally{}
	reporter := benchmark.NewReporter(
		logger.New("reporter"),
		tally,
		time.Duration(masterConfiguration.ReportInterval)*time.Second,
	)
	processes := background.Start(background.Processes{reporter}, nil)

	results, err := runAll(logger.New("benchmark"), runs, tally)
	processes.Stop()
	if nil != err {
		fault.Criticalf("benchmark failed: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}

	if !quiet {
		if err := benchmark.FormatResults(os.Stdout, results); nil != err {
			exitwithstatus.Message("%s: output error: %s", program, err)
		}
	}
}

// each run with every one of its containers
func runAll(log *logger.L, runs []configuration.RunConfiguration, tally *benchmark.Tally) ([]benchmark.Result, error) {
	results := make([]benchmark.Result, 0, len(runs)*len(configuration.DefaultContainers))
	for _, run := range runs {
		w, err := benchmark.NewWorkload(run)
		if nil != err {
			return nil, err
		}
		log.Infof("mapSize: %d  testCount: %d  missPercent: %d  seed: %d", run.MapSize, run.TestCount, run.MissPercent, run.Seed)

		for _, name := range run.Containers {
			factory, err := benchmark.Lookup(name)
			if nil != err {
				return nil, err
			}
			result, err := benchmark.Run(log, w, factory, tally)
			if nil != err {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}
