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

package stream

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Attribute is one key/value pair of a node's EXPLAIN output. The keys
// emitted by ExplainAttrs are a contract with external tooling; renderers
// may change formatting but not the attribute names or their meaning.
type Attribute struct {
	Key   string
	Value string
}

// ExplainAttrs returns the diagnostics attributes of the materialize node.
func (m Materialize) ExplainAttrs() []Attribute {
	table := m.Table()

	columnNames := make([]string, len(table.Columns))
	for i := range table.Columns {
		columnNames[i] = table.Columns[i].NameWithHidden()
	}

	streamKey := make([]string, len(table.StreamKey))
	for i, col := range table.StreamKey {
		streamKey[i] = table.Columns[col].Name
	}

	pkColumns := make([]string, len(table.PrimaryKey))
	for i, o := range table.PrimaryKey {
		pkColumns[i] = table.Columns[o.ColumnIdx].Name
	}

	attrs := make([]Attribute, 0, 6)
	attrs = append(attrs,
		Attribute{Key: "columns", Value: formatList(columnNames)},
		Attribute{Key: "stream_key", Value: formatList(streamKey)},
		Attribute{Key: "pk_columns", Value: formatList(pkColumns)},
		Attribute{Key: "pk_conflict", Value: table.ConflictBehavior.String()},
	)

	if table.Cardinality.Max != math.MaxUint64 {
		attrs = append(attrs, Attribute{Key: "cardinality", Value: fmt.Sprintf("[%s - %s]",
			humanize.Comma(int64(table.Cardinality.Min)), humanize.Comma(int64(table.Cardinality.Max)))})
	}

	if len(table.WatermarkColumns) > 0 {
		watermarkNames := make([]string, len(table.WatermarkColumns))
		for i, col := range table.WatermarkColumns {
			watermarkNames[i] = table.Columns[col].NameWithHidden()
		}
		attrs = append(attrs, Attribute{Key: "watermark_columns", Value: formatList(watermarkNames)})
	}
	return attrs
}

func formatList(elems []string) string {
	return "[" + strings.Join(elems, ", ") + "]"
}
