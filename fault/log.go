// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for the last messages before a command gives up
var panicLog *logger.L

// Initialise - open the channel, the logger must already be running
func Initialise() error {
	if nil != panicLog {
		return ErrAlreadyInitialised
	}
	panicLog = logger.New("PANIC")
	if nil == panicLog {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and detach, later messages go to stderr
func Finalise() {
	if nil != panicLog {
		panicLog.Flush()
	}
	panicLog = nil
}

// Criticalf - log a message tagged with the caller's source position
func Criticalf(format string, arguments ...interface{}) {
	critical(caller() + fmt.Sprintf(format, arguments...))
}

// PanicIfError - log and panic unless err is nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	critical(caller() + s)
	panic(s)
}

// position of the function that called into this package
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s:%d) ", filepath.Base(file), line)
}

func critical(message string) {
	if nil == panicLog {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
		return
	}
	panicLog.Criticalf("%s", message)
	panicLog.Flush()
}
