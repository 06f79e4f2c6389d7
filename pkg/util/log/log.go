// Copyright 2026 The Cascade Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package log provides the structured logging facade used throughout the
// planner. Events carry the log tags attached to the context via
// github.com/cockroachdb/logtags.
package log

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/cockroachdb/logtags"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// verbosity gates VEventf; events with a level above it are dropped.
var verbosity int32

// SetVerbosity sets the maximum verbosity level for VEventf and returns the
// previous value.
func SetVerbosity(level int32) int32 {
	return atomic.SwapInt32(&verbosity, level)
}

// V returns true if the given verbosity level is currently enabled.
func V(level int32) bool {
	return atomic.LoadInt32(&verbosity) >= level
}

func event(ctx context.Context, lvl zerolog.Level, format string, args ...interface{}) {
	ev := logger.WithLevel(lvl)
	if buf := logtags.FromContext(ctx); buf != nil {
		for _, tag := range buf.Get() {
			ev = ev.Str(tag.Key(), tag.ValueStr())
		}
	}
	ev.Msgf(format, args...)
}

// VEventf emits a debug-level event if the given verbosity level is enabled.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if !V(level) {
		return
	}
	event(ctx, zerolog.DebugLevel, format, args...)
}

// Eventf emits an info-level event.
func Eventf(ctx context.Context, format string, args ...interface{}) {
	event(ctx, zerolog.InfoLevel, format, args...)
}

// Warningf emits a warning-level event.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	event(ctx, zerolog.WarnLevel, format, args...)
}

// Errorf emits an error-level event.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	event(ctx, zerolog.ErrorLevel, format, args...)
}
