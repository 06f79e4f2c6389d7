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

// Operator describes the type of operation that a stream plan node performs.
type Operator uint8

const (
	// UnknownOp is an invalid operator, used as a zero value.
	UnknownOp Operator = iota

	// SourceOp reads a changelog from an external stream or table scan.
	SourceOp

	// ExchangeOp redistributes its input's rows across workers to produce a
	// new physical distribution. Row order is not preserved.
	ExchangeOp

	// StreamHashJoinOp is an incremental hash join between two streams.
	StreamHashJoinOp

	// StreamTemporalJoinOp joins a stream against a temporal (versioned)
	// table lookup.
	StreamTemporalJoinOp

	// StreamDeltaJoinOp is an index-based delta join between two streams.
	StreamDeltaJoinOp

	// MaterializeOp persists its input stream into a distributed table.
	MaterializeOp

	// NumOperators tracks the total count of operators.
	NumOperators
)

var opNames = [NumOperators]string{
	UnknownOp:            "unknown",
	SourceOp:             "source",
	ExchangeOp:           "exchange",
	StreamHashJoinOp:     "stream-hash-join",
	StreamTemporalJoinOp: "stream-temporal-join",
	StreamDeltaJoinOp:    "stream-delta-join",
	MaterializeOp:        "materialize",
}

func (op Operator) String() string {
	if op >= NumOperators {
		return "unknown"
	}
	return opNames[op]
}

// SafeValue implements the redact.SafeValue interface.
func (op Operator) SafeValue() {}

// IsStreamJoin returns true if the operator is one of the incremental
// stream join variants. Materialization over a stream join preserves the
// join's distribution rather than re-sharding by the view's own key.
func (op Operator) IsStreamJoin() bool {
	switch op {
	case StreamHashJoinOp, StreamTemporalJoinOp, StreamDeltaJoinOp:
		return true
	}
	return false
}

// Capabilities declares which behaviors a node of a given operator
// supports. Dispatch tables are keyed by Operator and consult this mask
// instead of relying on open-ended dynamic dispatch.
type Capabilities uint8

const (
	// CapSchemaProvider marks operators that expose an output schema.
	CapSchemaProvider Capabilities = 1 << iota
	// CapDistributionAware marks operators that expose a physical
	// distribution.
	CapDistributionAware
	// CapRewriteChildren marks operators whose children may be substituted
	// by later optimizer passes.
	CapRewriteChildren
	// CapVisitExprs marks operators that carry scalar expressions.
	CapVisitExprs
	// CapEmitPhysical marks operators that render a physical processor spec.
	CapEmitPhysical
)

// Has returns true if all capabilities in mask are present.
func (c Capabilities) Has(mask Capabilities) bool {
	return c&mask == mask
}

var opCapabilities = [NumOperators]Capabilities{
	SourceOp:             CapSchemaProvider | CapDistributionAware,
	ExchangeOp:           CapSchemaProvider | CapDistributionAware | CapRewriteChildren,
	StreamHashJoinOp:     CapSchemaProvider | CapDistributionAware | CapRewriteChildren | CapVisitExprs,
	StreamTemporalJoinOp: CapSchemaProvider | CapDistributionAware | CapRewriteChildren | CapVisitExprs,
	StreamDeltaJoinOp:    CapSchemaProvider | CapDistributionAware | CapRewriteChildren | CapVisitExprs,
	MaterializeOp:        CapSchemaProvider | CapDistributionAware | CapRewriteChildren | CapEmitPhysical,
}

// Capabilities returns the capability mask declared for the operator.
func (op Operator) Capabilities() Capabilities {
	if op >= NumOperators {
		return 0
	}
	return opCapabilities[op]
}
