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
	"github.com/cockroachdb/errors"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
	"github.com/cascadedb/cascade/pkg/sql/opt"
	"github.com/cascadedb/cascade/pkg/sql/pgwire/pgcode"
	"github.com/cascadedb/cascade/pkg/sql/pgwire/pgerror"
)

// deriveColumns builds the stored column descriptors from the input
// schema. Columns in userCols are user-visible and take the caller's
// output names, in schema order; the remaining columns keep their schema
// names and are marked hidden.
func deriveColumns(
	schema opt.Schema, outNames []string, userCols opt.ColSet,
) ([]descpb.ColumnDescriptor, error) {
	if !userCols.SubsetOf(schema.ColSet()) {
		return nil, errors.AssertionFailedf(
			"user columns %s not contained in schema columns %s", userCols, schema.ColSet())
	}
	if len(outNames) != userCols.Len() {
		return nil, errors.AssertionFailedf(
			"%d output names supplied for %d user columns", len(outNames), userCols.Len())
	}

	// Hidden columns keep their schema names, so user-chosen names must not
	// collide with them either.
	seen := make(map[string]struct{}, len(schema.Fields))
	for i, f := range schema.Fields {
		if !userCols.Contains(opt.ColumnID(i)) {
			seen[f.Name] = struct{}{}
		}
	}
	columns := make([]descpb.ColumnDescriptor, len(schema.Fields))
	nameIdx := 0
	for i, f := range schema.Fields {
		col := descpb.ColumnDescriptor{
			Name:     f.Name,
			TypeName: f.Typ.SQLString(),
			Hidden:   true,
		}
		if userCols.Contains(opt.ColumnID(i)) {
			name := outNames[nameIdx]
			nameIdx++
			if _, ok := seen[name]; ok {
				return nil, pgerror.Newf(pgcode.DuplicateColumn,
					"column %q specified more than once", name)
			}
			seen[name] = struct{}{}
			col.Name = name
			col.Hidden = false
		}
		columns[i] = col
	}
	return columns, nil
}

// derivePK derives the primary key and stream key of a materialized view
// or index from the requested ordering and the input's functional
// dependencies.
//
// The requested ordering columns always open the primary key, in their
// requested directions, so the persisted row order matches the caller's
// ORDER BY. If those columns do not yet determine the row, the key is
// extended with the input's stream-key columns (ascending) until it does.
// The stream key is the minimal determining subset of the accumulated
// columns, so trailing ordering columns kept only for output order do not
// dilute the changelog identity.
func derivePK(
	a *Arena, input NodeID, userOrderBy opt.Ordering, name string,
) ([]descpb.ColumnOrder, []uint32, error) {
	fd := a.FuncDeps(input)
	schemaCols := a.Schema(input).ColSet()

	if obCols := userOrderBy.ColSet(); !obCols.SubsetOf(schemaCols) {
		return nil, nil, errors.AssertionFailedf(
			"ordering %s references columns outside the schema %s", userOrderBy, schemaCols)
	}

	var pk []descpb.ColumnOrder
	var accumulated opt.ColSet
	addCol := func(col opt.ColumnID, descending bool) {
		if accumulated.Contains(col) {
			return
		}
		accumulated.Add(col)
		dir := descpb.SortDirection_ASC
		if descending {
			dir = descpb.SortDirection_DESC
		}
		pk = append(pk, descpb.ColumnOrder{ColumnIdx: uint32(col), Direction: dir})
	}

	for _, oc := range userOrderBy {
		addCol(oc.ID, oc.Descending)
	}
	if streamKey, ok := a.StreamKey(input); ok {
		for _, col := range streamKey {
			if fd.ColsAreStrictKey(accumulated) {
				break
			}
			addCol(col, false /* descending */)
		}
	}
	if len(pk) == 0 || !fd.ColsAreStrictKey(accumulated) {
		return nil, nil, pgerror.Newf(pgcode.InvalidTableDefinition,
			"cannot determine a primary key for %q", name)
	}

	streamSet := fd.ReduceCols(accumulated)
	if streamSet.Empty() {
		// Constant rows: the dependencies determine every column from nothing,
		// so reduction drops everything. The changelog identity still needs a
		// column to match updates on; keep the leading key column.
		streamSet.Add(opt.ColumnID(pk[0].ColumnIdx))
	}
	streamKey := make([]uint32, 0, streamSet.Len())
	streamSet.ForEach(func(col opt.ColumnID) {
		streamKey = append(streamKey, uint32(col))
	})
	return pk, streamKey, nil
}
