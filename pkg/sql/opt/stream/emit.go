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
	"github.com/cockroachdb/redact"
	proto "github.com/gogo/protobuf/proto"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
	"github.com/cascadedb/cascade/pkg/sql/execinfrapb"
	"github.com/cascadedb/cascade/pkg/sql/opt"
)

type emitFunc func(a *Arena, id NodeID) (execinfrapb.ProcessorCoreUnion, error)

var emitFuncMap [opt.NumOperators]emitFunc

func init() {
	emitFuncMap[opt.MaterializeOp] = emitMaterialize
}

// EmitPhysical renders a node into the physical processor spec consumed by
// the fragment builder. Only operators declaring the emit-physical
// capability can be rendered; the rest exist only during planning.
func EmitPhysical(a *Arena, id NodeID) (execinfrapb.ProcessorCoreUnion, error) {
	op := a.Op(id)
	if !op.Capabilities().Has(opt.CapEmitPhysical) {
		return execinfrapb.ProcessorCoreUnion{}, errors.AssertionFailedf(
			"operator %s does not emit a physical spec", redact.Safe(op))
	}
	fn := emitFuncMap[op]
	if fn == nil {
		return execinfrapb.ProcessorCoreUnion{}, errors.AssertionFailedf(
			"no emit function registered for operator %s", redact.Safe(op))
	}
	return fn(a, id)
}

// emitMaterialize is pure: the table id stays zero and is assigned by the
// catalog service before scheduling.
func emitMaterialize(a *Arena, id NodeID) (execinfrapb.ProcessorCoreUnion, error) {
	table := a.node(id).table
	columnOrders := make([]descpb.ColumnOrder, len(table.PrimaryKey))
	copy(columnOrders, table.PrimaryKey)
	return execinfrapb.ProcessorCoreUnion{
		Materializer: &execinfrapb.MaterializerSpec{
			TableID:      0,
			ColumnOrders: columnOrders,
			Table:        proto.Clone(table).(*descpb.TableDescriptor),
		},
	}, nil
}
