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

// Package execinfrapb holds the inter-stage physical plan schema consumed
// by the fragment builder and the scheduler. The schema is owned by the
// execution layer; the planner only populates it.
package execinfrapb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
)

// MaterializerSpec describes a physical materialize operator: it consumes
// its input's changelog and writes it into the given table.
type MaterializerSpec struct {
	// TableID is left zero by the planner; the durable id is assigned by the
	// catalog service before the fragment is scheduled.
	TableID uint64 `protobuf:"varint,1,opt,name=table_id,json=tableId" json:"table_id"`

	// ColumnOrders is the table's primary key as ordered (index, direction)
	// pairs.
	ColumnOrders []descpb.ColumnOrder `protobuf:"bytes,2,rep,name=column_orders,json=columnOrders" json:"column_orders"`

	// Table is the full table descriptor, still carrying placeholder
	// identity.
	Table *descpb.TableDescriptor `protobuf:"bytes,3,opt,name=table" json:"table,omitempty"`
}

func (m *MaterializerSpec) Reset()         { *m = MaterializerSpec{} }
func (m *MaterializerSpec) String() string { return proto.CompactTextString(m) }
func (*MaterializerSpec) ProtoMessage()    {}

// ProcessorCoreUnion has exactly one of its fields set, identifying which
// physical operator a processor runs.
type ProcessorCoreUnion struct {
	Materializer *MaterializerSpec `protobuf:"bytes,1,opt,name=materializer" json:"materializer,omitempty"`
}

func (m *ProcessorCoreUnion) Reset()         { *m = ProcessorCoreUnion{} }
func (m *ProcessorCoreUnion) String() string { return proto.CompactTextString(m) }
func (*ProcessorCoreUnion) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MaterializerSpec)(nil), "cascade.sql.distsqlrun.MaterializerSpec")
	proto.RegisterType((*ProcessorCoreUnion)(nil), "cascade.sql.distsqlrun.ProcessorCoreUnion")
}
