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

package props

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Cardinality is an estimated range of row counts for a stream plan stage.
// The zero value means "exactly zero rows"; use AnyCardinality for an
// unknown estimate.
type Cardinality struct {
	Min uint32
	Max uint32
}

// AnyCardinality indicates that the number of rows is unknown.
var AnyCardinality = Cardinality{Min: 0, Max: math.MaxUint32}

// IsUnknown returns true if the estimate carries no information.
func (c Cardinality) IsUnknown() bool {
	return c == AnyCardinality
}

// IsUnbounded returns true if the estimate has no upper bound.
func (c Cardinality) IsUnbounded() bool {
	return c.Max == math.MaxUint32
}

func (c Cardinality) String() string {
	if c.IsUnbounded() {
		return fmt.Sprintf("[%s - ]", humanize.Comma(int64(c.Min)))
	}
	return fmt.Sprintf("[%s - %s]", humanize.Comma(int64(c.Min)), humanize.Comma(int64(c.Max)))
}
