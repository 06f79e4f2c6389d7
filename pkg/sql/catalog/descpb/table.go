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

// Package descpb defines the serialized form of table metadata exchanged
// with the catalog service and embedded in physical plan fragments. The
// schema is owned by the catalog service; the planner only populates it.
package descpb

import (
	"math"

	proto "github.com/gogo/protobuf/proto"
)

// ID is a durable identifier for a table, assigned by the catalog service.
type ID uint32

// FragmentID identifies the dataflow fragment a materialization executes
// in, assigned by the scheduler.
type FragmentID uint32

const (
	// InvalidID is the zero table ID.
	InvalidID ID = 0

	// PlaceholderID marks a descriptor whose table ID has not yet been
	// assigned by the catalog service. A freshly planned descriptor always
	// carries this value; callers must never persist it.
	PlaceholderID ID = math.MaxUint32

	// PlaceholderFragmentID marks a descriptor whose fragment has not yet
	// been assigned by the scheduler.
	PlaceholderFragmentID FragmentID = math.MaxUint32 - 1

	// DefaultSuperUserID is the owner recorded for objects created before
	// session ownership is resolved.
	DefaultSuperUserID uint32 = 1
)

// SortDirection is the direction of a column in a sort key.
type SortDirection int32

const (
	// SortDirection_ASC sorts in ascending order.
	SortDirection_ASC SortDirection = 0
	// SortDirection_DESC sorts in descending order.
	SortDirection_DESC SortDirection = 1
)

var SortDirection_name = map[int32]string{
	0: "ASC",
	1: "DESC",
}
var SortDirection_value = map[string]int32{
	"ASC":  0,
	"DESC": 1,
}

func (x SortDirection) String() string {
	return proto.EnumName(SortDirection_name, int32(x))
}

// TableType distinguishes the kinds of persisted tables the planner can
// create.
type TableType int32

const (
	// TableType_TABLE is a user table fed by DML and sources.
	TableType_TABLE TableType = 0
	// TableType_MATERIALIZED_VIEW is the persisted result of a streaming
	// query.
	TableType_MATERIALIZED_VIEW TableType = 1
	// TableType_INDEX is a secondary index over another table.
	TableType_INDEX TableType = 2
	// TableType_INTERNAL is operator-internal state, never created through
	// materialization planning.
	TableType_INTERNAL TableType = 3
)

var TableType_name = map[int32]string{
	0: "TABLE",
	1: "MATERIALIZED_VIEW",
	2: "INDEX",
	3: "INTERNAL",
}
var TableType_value = map[string]int32{
	"TABLE":             0,
	"MATERIALIZED_VIEW": 1,
	"INDEX":             2,
	"INTERNAL":          3,
}

func (x TableType) String() string {
	return proto.EnumName(TableType_name, int32(x))
}

// ConflictBehavior is the policy applied by the materialize executor when a
// new row's primary key duplicates an existing stored row's key. It is
// chosen by the statement handler and passed through planning unchanged.
type ConflictBehavior int32

const (
	// ConflictBehavior_NO_CHECK performs blind writes; upstream guarantees
	// key consistency.
	ConflictBehavior_NO_CHECK ConflictBehavior = 0
	// ConflictBehavior_OVERWRITE replaces the stored row.
	ConflictBehavior_OVERWRITE ConflictBehavior = 1
	// ConflictBehavior_IGNORE keeps the stored row.
	ConflictBehavior_IGNORE ConflictBehavior = 2
	// ConflictBehavior_DO_UPDATE_IF_NOT_NULL overwrites only the non-null
	// columns of the new row.
	ConflictBehavior_DO_UPDATE_IF_NOT_NULL ConflictBehavior = 3
)

var ConflictBehavior_name = map[int32]string{
	0: "NO_CHECK",
	1: "OVERWRITE",
	2: "IGNORE",
	3: "DO_UPDATE_IF_NOT_NULL",
}
var ConflictBehavior_value = map[string]int32{
	"NO_CHECK":              0,
	"OVERWRITE":             1,
	"IGNORE":                2,
	"DO_UPDATE_IF_NOT_NULL": 3,
}

func (x ConflictBehavior) String() string {
	return proto.EnumName(ConflictBehavior_name, int32(x))
}

// ColumnOrder pairs a column index with a sort direction. A sequence of
// ColumnOrders defines the physical row ordering within a shard.
type ColumnOrder struct {
	ColumnIdx uint32        `protobuf:"varint,1,opt,name=column_idx,json=columnIdx" json:"column_idx"`
	Direction SortDirection `protobuf:"varint,2,opt,name=direction,enum=cascade.sql.catalog.SortDirection" json:"direction"`
}

func (m *ColumnOrder) Reset()         { *m = ColumnOrder{} }
func (m *ColumnOrder) String() string { return proto.CompactTextString(m) }
func (*ColumnOrder) ProtoMessage()    {}

// ColumnDescriptor describes one stored column.
type ColumnDescriptor struct {
	Name string `protobuf:"bytes,1,opt,name=name" json:"name"`
	// TypeName is the SQL name of the column type.
	TypeName string `protobuf:"bytes,2,opt,name=type_name,json=typeName" json:"type_name"`
	// Hidden columns are stored but not user-visible; they exist to carry
	// ordering or identity columns the user did not select.
	Hidden bool `protobuf:"varint,3,opt,name=hidden" json:"hidden"`
}

func (m *ColumnDescriptor) Reset()         { *m = ColumnDescriptor{} }
func (m *ColumnDescriptor) String() string { return proto.CompactTextString(m) }
func (*ColumnDescriptor) ProtoMessage()    {}

// NameWithHidden returns the column name, annotated when hidden.
func (m *ColumnDescriptor) NameWithHidden() string {
	if m.Hidden {
		return m.Name + "(hidden)"
	}
	return m.Name
}

// TableVersion tracks schema-change state for user tables.
type TableVersion struct {
	Version      uint64 `protobuf:"varint,1,opt,name=version" json:"version"`
	NextColumnID uint32 `protobuf:"varint,2,opt,name=next_column_id,json=nextColumnId" json:"next_column_id"`
}

func (m *TableVersion) Reset()         { *m = TableVersion{} }
func (m *TableVersion) String() string { return proto.CompactTextString(m) }
func (*TableVersion) ProtoMessage()    {}

// Cardinality is the planner's estimated row count range. Max of
// math.MaxUint64 means unbounded.
type Cardinality struct {
	Min uint64 `protobuf:"varint,1,opt,name=min" json:"min"`
	Max uint64 `protobuf:"varint,2,opt,name=max" json:"max"`
}

func (m *Cardinality) Reset()         { *m = Cardinality{} }
func (m *Cardinality) String() string { return proto.CompactTextString(m) }
func (*Cardinality) ProtoMessage()    {}

// TableDescriptor is the full physical and logical metadata record of a
// persisted table. It is constructed once during planning and immutable
// thereafter; ID and FragmentID hold placeholder values until the catalog
// service and scheduler assign durable ones at commit time.
type TableDescriptor struct {
	ID         ID         `protobuf:"varint,1,opt,name=id,casttype=ID" json:"id"`
	Name       string     `protobuf:"bytes,2,opt,name=name" json:"name"`
	OwnerID    uint32     `protobuf:"varint,3,opt,name=owner_id,json=ownerId" json:"owner_id"`
	Definition string     `protobuf:"bytes,4,opt,name=definition" json:"definition"`
	FragmentID FragmentID `protobuf:"varint,5,opt,name=fragment_id,json=fragmentId,casttype=FragmentID" json:"fragment_id"`

	Columns []ColumnDescriptor `protobuf:"bytes,6,rep,name=columns" json:"columns"`

	// PrimaryKey defines the physical row ordering within a shard. Order is
	// significant.
	PrimaryKey []ColumnOrder `protobuf:"bytes,7,rep,name=primary_key,json=primaryKey" json:"primary_key"`

	// StreamKey identifies a changelog row for upsert/delete matching. The
	// column set is always a subset of the primary key's columns.
	StreamKey []uint32 `protobuf:"varint,8,rep,name=stream_key,json=streamKey" json:"stream_key"`

	// DistributionKey lists the columns rows are hash-sharded by across
	// workers.
	DistributionKey []uint32 `protobuf:"varint,9,rep,name=distribution_key,json=distributionKey" json:"distribution_key"`

	TableType        TableType        `protobuf:"varint,10,opt,name=table_type,json=tableType,enum=cascade.sql.catalog.TableType" json:"table_type"`
	ConflictBehavior ConflictBehavior `protobuf:"varint,11,opt,name=conflict_behavior,json=conflictBehavior,enum=cascade.sql.catalog.ConflictBehavior" json:"conflict_behavior"`

	AppendOnly bool `protobuf:"varint,12,opt,name=append_only,json=appendOnly" json:"append_only"`

	// WatermarkColumns are known monotonically non-decreasing columns,
	// enabling retraction elision downstream.
	WatermarkColumns []uint32 `protobuf:"varint,13,rep,name=watermark_columns,json=watermarkColumns" json:"watermark_columns"`

	// RowIDColumn, when set, is the index of a synthetic row-id column
	// generated because the table had no user-declared key.
	RowIDColumn *uint32 `protobuf:"varint,14,opt,name=row_id_column,json=rowIdColumn" json:"row_id_column,omitempty"`

	// ValueIndices maps stored value positions to declared columns. It is
	// currently always the identity permutation over all columns.
	ValueIndices []uint32 `protobuf:"varint,15,rep,name=value_indices,json=valueIndices" json:"value_indices"`

	// ReadPrefixLen is a hint for point-read encoding; it always equals
	// len(PrimaryKey).
	ReadPrefixLen uint32 `protobuf:"varint,16,opt,name=read_prefix_len,json=readPrefixLen" json:"read_prefix_len"`

	Version     *TableVersion `protobuf:"bytes,17,opt,name=version" json:"version,omitempty"`
	Cardinality Cardinality   `protobuf:"bytes,18,opt,name=cardinality" json:"cardinality"`
}

func (m *TableDescriptor) Reset()         { *m = TableDescriptor{} }
func (m *TableDescriptor) String() string { return proto.CompactTextString(m) }
func (*TableDescriptor) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("cascade.sql.catalog.SortDirection", SortDirection_name, SortDirection_value)
	proto.RegisterEnum("cascade.sql.catalog.TableType", TableType_name, TableType_value)
	proto.RegisterEnum("cascade.sql.catalog.ConflictBehavior", ConflictBehavior_name, ConflictBehavior_value)
	proto.RegisterType((*ColumnOrder)(nil), "cascade.sql.catalog.ColumnOrder")
	proto.RegisterType((*ColumnDescriptor)(nil), "cascade.sql.catalog.ColumnDescriptor")
	proto.RegisterType((*TableVersion)(nil), "cascade.sql.catalog.TableVersion")
	proto.RegisterType((*Cardinality)(nil), "cascade.sql.catalog.Cardinality")
	proto.RegisterType((*TableDescriptor)(nil), "cascade.sql.catalog.TableDescriptor")
}
