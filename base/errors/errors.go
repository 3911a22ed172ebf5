// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small error-logging helpers used throughout the
// engine so that collaborator failures (entity lookups, callbacks) can be
// logged without ever becoming fatal to the running frame.
package errors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error, if non-nil, at ERROR level with caller info, and
// returns it unchanged. The intended usage is:
//
//	return errors.Log(doThing())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 logs a non-nil error the same way as [Log], and returns v regardless.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// callerInfo returns file:line of the function that called the Log helper.
func callerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
