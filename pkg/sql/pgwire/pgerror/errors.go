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

// Package pgerror constructs the user-facing planning errors reported back
// to the statement handler. These are recoverable by the client and are
// kept strictly apart from assertion failures, which signal planner
// defects.
package pgerror

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/cascadedb/cascade/pkg/sql/pgwire/pgcode"
)

// Newf creates a new error with a pg code.
func Newf(code pgcode.Code, format string, args ...interface{}) error {
	return WithCandidateCode(errors.NewWithDepthf(1, format, args...), code)
}

// New creates a new error with a pg code.
func New(code pgcode.Code, msg string) error {
	return WithCandidateCode(errors.NewWithDepthf(1, "%s", msg), code)
}

// Wrapf wraps an error and adds a pg code, to be used if the underlying
// error does not have one already.
func Wrapf(err error, code pgcode.Code, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return WithCandidateCode(errors.WrapWithDepthf(1, err, format, args...), code)
}

// WithCandidateCode annotates err with a candidate pg code.
func WithCandidateCode(err error, code pgcode.Code) error {
	if err == nil {
		return nil
	}
	return &withCandidateCode{cause: err, code: code.String()}
}

// GetPGCode returns the pg code carried by an error. An error chain
// containing an assertion failure always reports an internal error,
// regardless of any candidate code; otherwise the innermost candidate code
// wins, and errors without one report Uncategorized.
func GetPGCode(err error) pgcode.Code {
	if err == nil {
		return pgcode.MakeCode("")
	}
	if errors.HasAssertionFailure(err) {
		return pgcode.Internal
	}
	code := pgcode.Uncategorized
	for c := err; c != nil; c = errors.UnwrapOnce(c) {
		if w, ok := c.(*withCandidateCode); ok {
			code = pgcode.MakeCode(w.code)
		}
	}
	return code
}

// HasCandidateCode returns true if the error carries an explicit pg code.
func HasCandidateCode(err error) bool {
	for c := err; c != nil; c = errors.UnwrapOnce(c) {
		if _, ok := c.(*withCandidateCode); ok {
			return true
		}
	}
	return false
}

type withCandidateCode struct {
	cause error
	code  string
}

var _ error = (*withCandidateCode)(nil)
var _ fmt.Formatter = (*withCandidateCode)(nil)
var _ errors.SafeFormatter = (*withCandidateCode)(nil)

func (w *withCandidateCode) Error() string { return w.cause.Error() }
func (w *withCandidateCode) Cause() error  { return w.cause }
func (w *withCandidateCode) Unwrap() error { return w.cause }

func (w *withCandidateCode) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withCandidateCode) SafeFormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("candidate pg code: %s", w.code)
	}
	return w.cause
}
