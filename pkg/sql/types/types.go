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

// Package types defines the column types understood by the planner.
package types

// Family classifies a type by the kind of value it stores.
type Family uint8

const (
	// UnknownFamily is an invalid family, used as a zero value.
	UnknownFamily Family = iota
	// BoolFamily is the family of boolean types.
	BoolFamily
	// IntFamily is the family of signed integer types.
	IntFamily
	// FloatFamily is the family of floating point types.
	FloatFamily
	// DecimalFamily is the family of arbitrary-precision decimal types.
	DecimalFamily
	// StringFamily is the family of character types.
	StringFamily
	// BytesFamily is the family of byte array types.
	BytesFamily
	// TimestampFamily is the family of timestamp types.
	TimestampFamily
	// IntervalFamily is the family of interval types.
	IntervalFamily
)

// T is the type of a column. Instances are immutable and shared; compare
// them with Identical, not pointer equality.
type T struct {
	family Family
}

// Canonical instances for each family.
var (
	Bool      = &T{family: BoolFamily}
	Int       = &T{family: IntFamily}
	Float     = &T{family: FloatFamily}
	Decimal   = &T{family: DecimalFamily}
	String    = &T{family: StringFamily}
	Bytes     = &T{family: BytesFamily}
	Timestamp = &T{family: TimestampFamily}
	Interval  = &T{family: IntervalFamily}
)

// Family returns the family of the type.
func (t *T) Family() Family {
	return t.family
}

// Identical returns true if the two types are the same.
func (t *T) Identical(other *T) bool {
	return t.family == other.family
}

var familyNames = map[Family]string{
	UnknownFamily:   "unknown",
	BoolFamily:      "BOOL",
	IntFamily:       "INT8",
	FloatFamily:     "FLOAT8",
	DecimalFamily:   "DECIMAL",
	StringFamily:    "STRING",
	BytesFamily:     "BYTES",
	TimestampFamily: "TIMESTAMP",
	IntervalFamily:  "INTERVAL",
}

// SQLString returns the SQL name of the type, as it appears in a table
// definition.
func (t *T) SQLString() string {
	return familyNames[t.family]
}

func (t *T) String() string {
	return t.SQLString()
}
