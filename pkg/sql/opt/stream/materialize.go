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
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	proto "github.com/gogo/protobuf/proto"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
	"github.com/cascadedb/cascade/pkg/sql/opt"
	"github.com/cascadedb/cascade/pkg/sql/opt/props"
	"github.com/cascadedb/cascade/pkg/sql/opt/props/physical"
	"github.com/cascadedb/cascade/pkg/util/log"
)

// Materialize is a handle to a materialize node: the stage that persists
// its input's changelog into a distributed table. The node passes its
// input's observable properties through unchanged; materialization changes
// the physical representation of the rows, not their logical semantics.
type Materialize struct {
	arena *Arena
	id    NodeID
}

// Create plans a materialize node for a MATERIALIZED VIEW or INDEX.
//
// The table's columns, primary key and stream key are derived from the
// input; userDistributedBy must be unconstrained for a view and a resolved
// hash-shard request for an index.
func Create(
	ctx context.Context,
	a *Arena,
	input NodeID,
	name string,
	userDistributedBy physical.RequiredDist,
	userOrderBy opt.Ordering,
	userCols opt.ColSet,
	outNames []string,
	definition string,
	tableType descpb.TableType,
	cardinality props.Cardinality,
) (Materialize, error) {
	ctx = logtags.AddTag(ctx, "materialize", name)

	input, err := rewriteInput(ctx, a, input, userDistributedBy, tableType)
	if err != nil {
		return Materialize{}, err
	}
	columns, err := deriveColumns(a.Schema(input), outNames, userCols)
	if err != nil {
		return Materialize{}, err
	}
	table, err := deriveTableDesc(a, input, tableDescArgs{
		name:             name,
		userOrderBy:      userOrderBy,
		columns:          columns,
		definition:       definition,
		conflictBehavior: descpb.ConflictBehavior_NO_CHECK,
		tableType:        tableType,
		cardinality:      cardinality,
	})
	if err != nil {
		return Materialize{}, err
	}
	m := makeMaterialize(a, input, table)
	log.VEventf(ctx, 1, "planned %s %q: distribution %s, cardinality %s",
		tableType, name, a.Distribution(input), cardinality)
	return m, nil
}

// CreateForTable plans a materialize node for a user TABLE.
//
// Unlike Create, the columns and key column indices are passed in directly
// instead of being derived from the input, preserving the column identity
// established during binding so it stays consistent with the table's
// source and DML stages.
func CreateForTable(
	ctx context.Context,
	a *Arena,
	input NodeID,
	name string,
	userDistributedBy physical.RequiredDist,
	columns []descpb.ColumnDescriptor,
	definition string,
	conflictBehavior descpb.ConflictBehavior,
	pkColumnIndices opt.ColList,
	rowIDColumn *uint32,
	version *descpb.TableVersion,
) (Materialize, error) {
	ctx = logtags.AddTag(ctx, "materialize", name)

	input, err := rewriteInput(ctx, a, input, userDistributedBy, descpb.TableType_TABLE)
	if err != nil {
		return Materialize{}, err
	}
	table, err := deriveTableDesc(a, input, tableDescArgs{
		name:             name,
		columns:          columns,
		definition:       definition,
		conflictBehavior: conflictBehavior,
		pkColumnIndices:  pkColumnIndices,
		rowIDColumn:      rowIDColumn,
		tableType:        descpb.TableType_TABLE,
		version:          version,
		// Cardinality is never estimated for user tables.
		cardinality: props.AnyCardinality,
	})
	if err != nil {
		return Materialize{}, err
	}
	return makeMaterialize(a, input, table), nil
}

// rewriteInput returns an input whose output satisfies the distribution
// the persisted table needs, inserting an exchange stage when necessary.
//
// The caller-declared requirement must be consistent with the table type;
// a mismatch is a defect in the statement handler, not a user error.
func rewriteInput(
	ctx context.Context,
	a *Arena,
	input NodeID,
	userDistributedBy physical.RequiredDist,
	tableType descpb.TableType,
) (NodeID, error) {
	var requiredDist physical.RequiredDist
	if a.Distribution(input).Kind == physical.SingleDist {
		// A single-writer table needs no sharding decision.
		requiredDist = physical.SingleRequirement()
	} else {
		switch tableType {
		case descpb.TableType_TABLE:
			if !userDistributedBy.IsShardByKey() {
				return 0, errors.AssertionFailedf(
					"creating a table requires a shard-by-key distribution, got %s", userDistributedBy)
			}
			requiredDist = userDistributedBy

		case descpb.TableType_MATERIALIZED_VIEW:
			if !userDistributedBy.IsAny() {
				return 0, errors.AssertionFailedf(
					"creating a materialized view requires an unconstrained distribution, got %s",
					userDistributedBy)
			}
			streamKey, ok := a.StreamKey(input)
			if !ok {
				return 0, errors.AssertionFailedf(
					"materialized view input %s has no stream key", a.Op(input))
			}
			// Shard by the stream key so that all rows sharing a changelog
			// identity route to the same worker.
			requiredDist = physical.ShardByKey(streamKey.ToSet())

			// If the input is a stream join, keep the join's own distribution
			// instead: re-sharding by the view's key would re-partition the
			// join state during backfill, which is prohibitively expensive
			// when a large dimension table is joined. The join already routes
			// its output key-consistently.
			if a.Op(input).IsStreamJoin() {
				return EnforceIfNotSatisfied(
					ctx, a, input, physical.PhysicalDist(a.Distribution(input)), opt.Ordering{})
			}

		case descpb.TableType_INDEX:
			if !userDistributedBy.IsPhysicalHashShard() {
				return 0, errors.AssertionFailedf(
					"creating an index requires a resolved hash-shard distribution, got %s",
					userDistributedBy)
			}
			requiredDist = userDistributedBy

		case descpb.TableType_INTERNAL:
			return 0, errors.AssertionFailedf(
				"internal tables are not created through materialization planning")

		default:
			return 0, errors.AssertionFailedf("unknown table type %d", int32(tableType))
		}
	}

	// Row order is not required for redistribution.
	return EnforceIfNotSatisfied(ctx, a, input, requiredDist, opt.Ordering{})
}

// tableDescArgs are the table-type-specific inputs of deriveTableDesc.
type tableDescArgs struct {
	name             string
	userOrderBy      opt.Ordering
	columns          []descpb.ColumnDescriptor
	definition       string
	conflictBehavior descpb.ConflictBehavior

	// pkColumnIndices is set only when creating a user table; it bypasses
	// key derivation entirely.
	pkColumnIndices opt.ColList
	rowIDColumn     *uint32

	tableType   descpb.TableType
	version     *descpb.TableVersion
	cardinality props.Cardinality
}

// deriveTableDesc assembles the table descriptor from the rewritten input
// and the creation arguments. It is a pure function; identity fields are
// placeholders to be assigned by the catalog service at commit time.
func deriveTableDesc(a *Arena, input NodeID, args tableDescArgs) (*descpb.TableDescriptor, error) {
	var pk []descpb.ColumnOrder
	var streamKey []uint32
	if args.pkColumnIndices != nil {
		// Explicit-key path: there is no ORDER BY when creating a table, so
		// the stream key is identical to the primary key.
		pk = make([]descpb.ColumnOrder, len(args.pkColumnIndices))
		streamKey = make([]uint32, len(args.pkColumnIndices))
		for i, col := range args.pkColumnIndices {
			pk[i] = descpb.ColumnOrder{ColumnIdx: uint32(col), Direction: descpb.SortDirection_ASC}
			streamKey[i] = uint32(col)
		}
	} else {
		var err error
		pk, streamKey, err = derivePK(a, input, args.userOrderBy, args.name)
		if err != nil {
			return nil, err
		}
	}

	distCols := a.Distribution(input).DistColumnIndices()
	distributionKey := make([]uint32, len(distCols))
	for i, col := range distCols {
		distributionKey[i] = uint32(col)
	}

	valueIndices := make([]uint32, len(args.columns))
	for i := range valueIndices {
		valueIndices[i] = uint32(i)
	}

	var watermarkColumns []uint32
	a.WatermarkCols(input).ForEach(func(col opt.ColumnID) {
		watermarkColumns = append(watermarkColumns, uint32(col))
	})

	desc := &descpb.TableDescriptor{
		ID:               descpb.PlaceholderID,
		Name:             args.name,
		OwnerID:          descpb.DefaultSuperUserID,
		Definition:       args.definition,
		FragmentID:       descpb.PlaceholderFragmentID,
		Columns:          args.columns,
		PrimaryKey:       pk,
		StreamKey:        streamKey,
		DistributionKey:  distributionKey,
		TableType:        args.tableType,
		ConflictBehavior: args.conflictBehavior,
		AppendOnly:       a.AppendOnly(input),
		WatermarkColumns: watermarkColumns,
		RowIDColumn:      args.rowIDColumn,
		ValueIndices:     valueIndices,
		ReadPrefixLen:    uint32(len(pk)),
		Version:          args.version,
		Cardinality:      toDescCardinality(args.cardinality),
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return desc, nil
}

func toDescCardinality(c props.Cardinality) descpb.Cardinality {
	out := descpb.Cardinality{Min: uint64(c.Min), Max: uint64(c.Max)}
	if c.IsUnbounded() {
		out.Max = math.MaxUint64
	}
	return out
}

// makeMaterialize wraps the rewritten input and the table descriptor in a
// materialize node. All observable properties pass through from the input,
// except that the stream key becomes the table's stream key.
func makeMaterialize(a *Arena, input NodeID, table *descpb.TableDescriptor) Materialize {
	streamKey := make(opt.ColList, len(table.StreamKey))
	for i, col := range table.StreamKey {
		streamKey[i] = opt.ColumnID(col)
	}
	p := RelProps{
		Schema:            a.Schema(input),
		StreamKey:         streamKey,
		FuncDeps:          *a.FuncDeps(input),
		Distribution:      a.Distribution(input),
		AppendOnly:        a.AppendOnly(input),
		EmitOnWindowClose: a.EmitOnWindowClose(input),
		WatermarkCols:     a.WatermarkCols(input),
	}
	id := a.add(node{op: opt.MaterializeOp, children: []NodeID{input}, props: p, table: table})
	return Materialize{arena: a, id: id}
}

// ID returns the node's id in the arena.
func (m Materialize) ID() NodeID {
	return m.id
}

// Input returns the id of the node's single child.
func (m Materialize) Input() NodeID {
	return m.arena.Child(m.id, 0)
}

// Table returns the planned table descriptor.
func (m Materialize) Table() *descpb.TableDescriptor {
	return m.arena.node(m.id).table
}

// Name returns the name of the table to be persisted.
func (m Materialize) Name() string {
	return m.Table().Name
}

// StreamKey returns the node's changelog key columns.
func (m Materialize) StreamKey() opt.ColList {
	sk, _ := m.arena.StreamKey(m.id)
	return sk
}

// CloneWithInput re-wraps the node around a new child of equivalent
// schema, the mechanism by which later optimizer passes relocate a
// materialize node. The clone must expose byte-for-byte identical schema
// types and stream key; any drift means an upstream pass silently changed
// key semantics, so it panics rather than propagating a corrupt plan.
func (m Materialize) CloneWithInput(newInput NodeID) Materialize {
	table := proto.Clone(m.Table()).(*descpb.TableDescriptor)
	clone := makeMaterialize(m.arena, newInput, table)

	oldSchema, newSchema := m.arena.Schema(m.id), m.arena.Schema(clone.id)
	if !newSchema.EqualTypes(oldSchema) {
		panic(errors.AssertionFailedf(
			"materialize clone changed schema types: %s -> %s", oldSchema, newSchema))
	}
	oldKey, newKey := m.StreamKey(), clone.StreamKey()
	if len(oldKey) != len(newKey) {
		panic(errors.AssertionFailedf(
			"materialize clone changed stream key: %v -> %v", oldKey, newKey))
	}
	for i := range oldKey {
		if oldKey[i] != newKey[i] {
			panic(errors.AssertionFailedf(
				"materialize clone changed stream key: %v -> %v", oldKey, newKey))
		}
	}
	return clone
}
