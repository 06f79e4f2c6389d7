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

	"github.com/cascadedb/cascade/pkg/sql/types"
)

// Field is one column of a stage's output schema.
type Field struct {
	Name string
	Typ  *types.T
}

// Schema is the ordered output column list of a stream plan stage. Column
// order is significant and stable; a ColumnID is an index into Fields.
type Schema struct {
	Fields []Field
}

// MakeSchema constructs a schema from the given fields.
func MakeSchema(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// Len returns the number of columns in the schema.
func (s Schema) Len() int {
	return len(s.Fields)
}

// ColSet returns the set of all column ids in the schema.
func (s Schema) ColSet() ColSet {
	var set ColSet
	for i := range s.Fields {
		set.Add(ColumnID(i))
	}
	return set
}

// EqualTypes returns true if both schemas have the same number of columns
// with identical types, position by position. Column names are not
// compared; renames do not change row semantics.
func (s Schema) EqualTypes(rhs Schema) bool {
	if len(s.Fields) != len(rhs.Fields) {
		return false
	}
	for i := range s.Fields {
		if !s.Fields[i].Typ.Identical(rhs.Fields[i].Typ) {
			return false
		}
	}
	return true
}

func (s Schema) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, f := range s.Fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", f.Name, f.Typ.SQLString())
	}
	buf.WriteByte(')')
	return buf.String()
}
