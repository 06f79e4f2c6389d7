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

package opt

import (
	"bytes"
	"fmt"
)

// OrderingColumn is one column of an ordering, with its sort direction.
// ColumnIDs are zero-based schema positions, so the direction is carried
// explicitly rather than encoded in the sign of the id.
type OrderingColumn struct {
	ID         ColumnID
	Descending bool
}

// MakeOrderingColumn initializes an ordering column with a ColumnID and a
// flag indicating whether the direction is descending.
func MakeOrderingColumn(id ColumnID, descending bool) OrderingColumn {
	return OrderingColumn{ID: id, Descending: descending}
}

func (c OrderingColumn) String() string {
	if c.Descending {
		return fmt.Sprintf("-%d", c.ID)
	}
	return fmt.Sprintf("+%d", c.ID)
}

// Ordering defines the order of rows requested or provided by an operator.
// The empty ordering imposes no constraint.
type Ordering []OrderingColumn

// Any returns true if this ordering imposes no constraint on row order.
func (o Ordering) Any() bool {
	return len(o) == 0
}

// ColSet returns the set of column IDs used in the ordering.
func (o Ordering) ColSet() ColSet {
	var colSet ColSet
	for _, col := range o {
		colSet.Add(col.ID)
	}
	return colSet
}

// Equals returns true if the two orderings are identical.
func (o Ordering) Equals(rhs Ordering) bool {
	if len(o) != len(rhs) {
		return false
	}
	for i := range o {
		if o[i] != rhs[i] {
			return false
		}
	}
	return true
}

func (o Ordering) String() string {
	var buf bytes.Buffer
	for i, col := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(col.String())
	}
	return buf.String()
}
