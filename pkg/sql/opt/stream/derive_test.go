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
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
	"github.com/cascadedb/cascade/pkg/sql/opt"
	"github.com/cascadedb/cascade/pkg/sql/opt/props"
	"github.com/cascadedb/cascade/pkg/sql/opt/props/physical"
	"github.com/cascadedb/cascade/pkg/sql/types"
)

// TestDerivePK exercises primary key derivation on datadriven cases in
// testdata/derive_pk. The command is:
//
//	derive-pk cols=<n> [key=(<col>,...)] [order=(<±col>,...)] [fd=(<from.cols:to.cols>,...)]
//
// where cols is the schema width, key is the input's stream key, order is
// the requested ordering (+ ascending, - descending) and each fd is a
// functional dependency with dot-separated column lists.
func TestDerivePK(t *testing.T) {
	datadriven.RunTest(t, "testdata/derive_pk", func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "derive-pk" {
			d.Fatalf(t, "unknown command %s", d.Cmd)
		}

		parseCol := func(s string) opt.ColumnID {
			col, err := strconv.Atoi(s)
			if err != nil {
				d.Fatalf(t, "invalid column %q: %v", s, err)
			}
			return opt.ColumnID(col)
		}
		parseColSet := func(s string) opt.ColSet {
			var set opt.ColSet
			if s == "" {
				// Empty determinant: the columns are constant.
				return set
			}
			for _, part := range strings.Split(s, ".") {
				set.Add(parseCol(part))
			}
			return set
		}

		var numCols int
		var streamKey opt.ColList
		var order opt.Ordering
		var fdSpecs []string
		for _, arg := range d.CmdArgs {
			switch arg.Key {
			case "cols":
				numCols = int(parseCol(arg.Vals[0]))
			case "key":
				for _, v := range arg.Vals {
					streamKey = append(streamKey, parseCol(v))
				}
			case "order":
				for _, v := range arg.Vals {
					if len(v) < 2 || (v[0] != '+' && v[0] != '-') {
						d.Fatalf(t, "ordering column %q must be signed", v)
					}
					order = append(order, opt.MakeOrderingColumn(parseCol(v[1:]), v[0] == '-'))
				}
			case "fd":
				fdSpecs = arg.Vals
			default:
				d.Fatalf(t, "unknown argument %s", arg.Key)
			}
		}

		fields := make([]opt.Field, numCols)
		for i := range fields {
			fields[i] = opt.Field{Name: fmt.Sprintf("c%d", i), Typ: types.Int}
		}
		schema := opt.MakeSchema(fields...)

		fd := props.MakeFuncDepSet(schema.ColSet())
		for _, spec := range fdSpecs {
			parts := strings.SplitN(spec, ":", 2)
			if len(parts) != 2 {
				d.Fatalf(t, "invalid fd %q", spec)
			}
			fd.AddDependency(parseColSet(parts[0]), parseColSet(parts[1]))
		}

		a := NewArena()
		input := a.AddSource(RelProps{
			Schema:       schema,
			StreamKey:    streamKey,
			FuncDeps:     fd,
			Distribution: physical.Single(),
		})

		pk, sk, err := derivePK(a, input, order, "t")
		if err != nil {
			return fmt.Sprintf("error: %v\n", err)
		}

		var buf strings.Builder
		buf.WriteString("pk: [")
		for i, o := range pk {
			if i > 0 {
				buf.WriteString(", ")
			}
			sign := "+"
			if o.Direction == descpb.SortDirection_DESC {
				sign = "-"
			}
			fmt.Fprintf(&buf, "%s%d", sign, o.ColumnIdx)
		}
		buf.WriteString("]\nstream key: (")
		for i, col := range sk {
			if i > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%d", col)
		}
		buf.WriteString(")\n")
		return buf.String()
	})
}
