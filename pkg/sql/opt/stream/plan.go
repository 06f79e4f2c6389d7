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

// Package stream implements materialization planning for streaming
// dataflow plans: it turns the root of a stream plan into a persisted,
// distributed table descriptor and a physical materialize operator that
// writes into it.
//
// The plan is held in an Arena: an append-only slice of immutable nodes
// addressed by NodeID. Children are always earlier ids, so subtree sharing
// is explicit (one id can be referenced by several parents) and cycles are
// structurally impossible. Nodes are never mutated after construction,
// which makes sharing safe without locking; planning is single-threaded
// and synchronous.
package stream

import (
	"fmt"

	"github.com/cascadedb/cascade/pkg/sql/catalog/descpb"
	"github.com/cascadedb/cascade/pkg/sql/opt"
	"github.com/cascadedb/cascade/pkg/sql/opt/props"
	"github.com/cascadedb/cascade/pkg/sql/opt/props/physical"
)

// NodeID is a stable index of a node within its Arena.
type NodeID int32

// RelProps are the logical and stream-physical properties every stream
// plan node exposes to its consumers.
type RelProps struct {
	// Schema is the ordered output column list.
	Schema opt.Schema

	// StreamKey identifies a changelog row for upsert/delete matching. A
	// nil value means the stage has no known changelog identity.
	StreamKey opt.ColList

	// FuncDeps is the functional-dependency set of the output.
	FuncDeps props.FuncDepSet

	// Distribution is the physical partitioning of the output rows.
	Distribution physical.Distribution

	// AppendOnly is true if the stage never emits updates or deletes.
	AppendOnly bool

	// EmitOnWindowClose is true if the stage emits only when a window
	// closes.
	EmitOnWindowClose bool

	// WatermarkCols are output columns known to be monotonically
	// non-decreasing.
	WatermarkCols opt.ColSet
}

// node is one immutable stream plan stage.
type node struct {
	op       opt.Operator
	children []NodeID
	props    RelProps

	// table is set only for MaterializeOp.
	table *descpb.TableDescriptor
}

// Arena owns the nodes of one statement's stream plan. Each planning
// invocation operates on its own arena and shares no mutable state.
type Arena struct {
	nodes []node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NumNodes returns the number of nodes added so far.
func (a *Arena) NumNodes() int {
	return len(a.nodes)
}

func (a *Arena) node(id NodeID) *node {
	if id < 0 || int(id) >= len(a.nodes) {
		panic(fmt.Sprintf("node id %d out of range (%d nodes)", id, len(a.nodes)))
	}
	return &a.nodes[id]
}

// add appends a node and returns its id. Children must already be in the
// arena, which keeps the structure acyclic by construction.
func (a *Arena) add(n node) NodeID {
	id := NodeID(len(a.nodes))
	for _, c := range n.children {
		if c < 0 || c >= id {
			panic(fmt.Sprintf("node %d (%s) references child %d not yet in arena", id, n.op, c))
		}
	}
	if !n.op.Capabilities().Has(opt.CapSchemaProvider) {
		panic(fmt.Sprintf("operator %s cannot be added to a stream plan", n.op))
	}
	a.nodes = append(a.nodes, n)
	return id
}

// Op returns the node's operator.
func (a *Arena) Op(id NodeID) opt.Operator {
	return a.node(id).op
}

// Children returns the node's children. The caller must not modify the
// result.
func (a *Arena) Children(id NodeID) []NodeID {
	return a.node(id).children
}

// Child returns the node's i-th child.
func (a *Arena) Child(id NodeID, i int) NodeID {
	return a.node(id).children[i]
}

// Schema returns the node's output schema.
func (a *Arena) Schema(id NodeID) opt.Schema {
	return a.node(id).props.Schema
}

// StreamKey returns the node's changelog key columns, if known.
func (a *Arena) StreamKey(id NodeID) (opt.ColList, bool) {
	sk := a.node(id).props.StreamKey
	return sk, sk != nil
}

// FuncDeps returns the node's functional-dependency set.
func (a *Arena) FuncDeps(id NodeID) *props.FuncDepSet {
	return &a.node(id).props.FuncDeps
}

// Distribution returns the node's physical distribution.
func (a *Arena) Distribution(id NodeID) physical.Distribution {
	return a.node(id).props.Distribution
}

// AppendOnly returns the node's append-only flag.
func (a *Arena) AppendOnly(id NodeID) bool {
	return a.node(id).props.AppendOnly
}

// EmitOnWindowClose returns the node's emit-on-window-close flag.
func (a *Arena) EmitOnWindowClose(id NodeID) bool {
	return a.node(id).props.EmitOnWindowClose
}

// WatermarkCols returns the node's watermark column set.
func (a *Arena) WatermarkCols(id NodeID) opt.ColSet {
	return a.node(id).props.WatermarkCols
}

// AddSource adds a leaf stage with the given properties.
func (a *Arena) AddSource(p RelProps) NodeID {
	return a.add(node{op: opt.SourceOp, props: p})
}

// AddStreamJoin adds a stream join stage over two inputs. op must be one
// of the stream join operators.
func (a *Arena) AddStreamJoin(op opt.Operator, left, right NodeID, p RelProps) NodeID {
	if !op.IsStreamJoin() {
		panic(fmt.Sprintf("operator %s is not a stream join", op))
	}
	return a.add(node{op: op, children: []NodeID{left, right}, props: p})
}

// addExchange adds a redistribution stage over the input. All properties
// other than the distribution pass through; an exchange changes where rows
// live, not what they mean.
func (a *Arena) addExchange(input NodeID, dist physical.Distribution) NodeID {
	p := a.node(input).props
	p.Distribution = dist
	return a.add(node{op: opt.ExchangeOp, children: []NodeID{input}, props: p})
}
