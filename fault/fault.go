// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrCorruptTree            = ProcessError("tree structure is corrupt")
	ErrEraseFailed            = ProcessError("erase failed")
	ErrInsertFailed           = ProcessError("insert failed")
	ErrInvalidCapacity        = InvalidError("capacity must be positive")
	ErrInvalidConfigResult    = InvalidError("configuration file must return a table")
	ErrInvalidLogFile         = InvalidError("invalid log file name")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidMapSize         = InvalidError("map size must be positive")
	ErrInvalidMissPercent     = InvalidError("miss percent must be in the range 0..100")
	ErrInvalidReportInterval  = InvalidError("report interval must not be negative")
	ErrInvalidScriptLine      = InvalidError("invalid script line")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTestCount       = InvalidError("test count must be positive")
	ErrLengthMismatch         = ProcessError("container length is incorrect")
	ErrLookupMismatch         = ProcessError("lookup returned an unexpected result")
	ErrMissingLessFunction    = InvalidError("less function is required")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotFoundContainer      = NotFoundError("container name is not recognised")
	ErrRequiredDataDirectory  = InvalidError("data directory is required")
	ErrUnknownScriptOperation = NotFoundError("unknown script operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool {
	var x ExistsError
	return errors.As(e, &x)
}

// IsErrInvalid - true for an InvalidError
func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x)
}

// IsErrNotFound - true for a NotFoundError
func IsErrNotFound(e error) bool {
	var x NotFoundError
	return errors.As(e, &x)
}

// IsErrProcess - true for a ProcessError
func IsErrProcess(e error) bool {
	var x ProcessError
	return errors.As(e, &x)
}
