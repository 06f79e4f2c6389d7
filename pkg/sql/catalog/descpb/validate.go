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

package descpb

import (
	"github.com/cockroachdb/errors"

	"github.com/cascadedb/cascade/pkg/util/intsets"
)

// Validate checks the structural invariants of a planned table descriptor.
// A violation is always a planner defect, never a user error, so failures
// are reported as assertion errors.
func (m *TableDescriptor) Validate() error {
	numCols := len(m.Columns)
	inRange := func(idx uint32) bool { return int(idx) < numCols }

	if len(m.PrimaryKey) == 0 {
		return errors.AssertionFailedf("table %q has an empty primary key", m.Name)
	}

	var pkCols intsets.Fast
	for _, o := range m.PrimaryKey {
		if !inRange(o.ColumnIdx) {
			return errors.AssertionFailedf(
				"table %q: primary key column %d out of range (%d columns)",
				m.Name, o.ColumnIdx, numCols)
		}
		if pkCols.Contains(int(o.ColumnIdx)) {
			return errors.AssertionFailedf(
				"table %q: duplicate primary key column %d", m.Name, o.ColumnIdx)
		}
		pkCols.Add(int(o.ColumnIdx))
	}

	if len(m.StreamKey) == 0 {
		return errors.AssertionFailedf("table %q has an empty stream key", m.Name)
	}
	var streamKey intsets.Fast
	for _, c := range m.StreamKey {
		streamKey.Add(int(c))
	}
	if !streamKey.SubsetOf(pkCols) {
		return errors.AssertionFailedf(
			"table %q: stream key %s is not a subset of primary key columns %s",
			m.Name, streamKey, pkCols)
	}

	if m.TableType == TableType_TABLE && !streamKey.Equals(pkCols) {
		return errors.AssertionFailedf(
			"user table %q: stream key %s differs from primary key columns %s",
			m.Name, streamKey, pkCols)
	}

	for _, c := range m.DistributionKey {
		if !inRange(c) {
			return errors.AssertionFailedf(
				"table %q: distribution key column %d out of range (%d columns)",
				m.Name, c, numCols)
		}
	}
	for _, c := range m.WatermarkColumns {
		if !inRange(c) {
			return errors.AssertionFailedf(
				"table %q: watermark column %d out of range (%d columns)",
				m.Name, c, numCols)
		}
	}
	if m.RowIDColumn != nil && !inRange(*m.RowIDColumn) {
		return errors.AssertionFailedf(
			"table %q: row-id column %d out of range (%d columns)",
			m.Name, *m.RowIDColumn, numCols)
	}

	if int(m.ReadPrefixLen) != len(m.PrimaryKey) {
		return errors.AssertionFailedf(
			"table %q: read prefix length %d differs from primary key length %d",
			m.Name, m.ReadPrefixLen, len(m.PrimaryKey))
	}

	if len(m.ValueIndices) != numCols {
		return errors.AssertionFailedf(
			"table %q: value indices cover %d of %d columns",
			m.Name, len(m.ValueIndices), numCols)
	}
	for i, v := range m.ValueIndices {
		if int(v) != i {
			return errors.AssertionFailedf(
				"table %q: value indices are not the identity permutation at %d",
				m.Name, i)
		}
	}
	return nil
}

// PrimaryKeyColumnSet returns the set of column indices in the primary key.
func (m *TableDescriptor) PrimaryKeyColumnSet() intsets.Fast {
	var s intsets.Fast
	for _, o := range m.PrimaryKey {
		s.Add(int(o.ColumnIdx))
	}
	return s
}
