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

// Package pgcode defines the SQLSTATE codes attached to user-facing
// planning errors.
package pgcode

// Code is a wrapper around a SQLSTATE string.
type Code struct {
	code string
}

// MakeCode converts a SQLSTATE string into a Code.
func MakeCode(code string) Code {
	return Code{code: code}
}

// String returns the SQLSTATE string.
func (c Code) String() string {
	return c.code
}

// Codes used by the planner.
var (
	// Uncategorized is the fallback for errors without a specific code.
	Uncategorized = MakeCode("XXUUU")
	// Internal marks invariant violations surfaced to a client.
	Internal = MakeCode("XX000")
	// InvalidTableDefinition covers objects that cannot be created as
	// requested, e.g. a view with no derivable primary key.
	InvalidTableDefinition = MakeCode("42P16")
	// DuplicateColumn covers repeated output column names.
	DuplicateColumn = MakeCode("42701")
	// FeatureNotSupported covers requests outside the engine's capabilities.
	FeatureNotSupported = MakeCode("0A000")
)
