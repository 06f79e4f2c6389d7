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

// Package physical defines the physical properties of stream plan stages:
// characteristics that affect where and in what form rows are produced,
// but not their logical content.
package physical

import (
	"bytes"
	"fmt"

	"github.com/cascadedb/cascade/pkg/sql/opt"
)

// DistributionKind classifies how a stage's output rows are physically
// partitioned across workers.
type DistributionKind uint8

const (
	// SingleDist places all rows on a single worker.
	SingleDist DistributionKind = iota
	// HashShardDist partitions rows across workers by a hash of the listed
	// columns.
	HashShardDist
)

// Distribution describes the physical partitioning a stage actually
// provides. It is a value type; the zero value is SingleDist.
type Distribution struct {
	// Kind is the partitioning scheme.
	Kind DistributionKind
	// Cols are the hash columns for HashShardDist, in hashing order. Empty
	// for SingleDist.
	Cols opt.ColList
}

// Single returns the single-worker distribution.
func Single() Distribution {
	return Distribution{Kind: SingleDist}
}

// HashShard returns a distribution hash-partitioned by the given columns.
func HashShard(cols opt.ColList) Distribution {
	return Distribution{Kind: HashShardDist, Cols: cols}
}

// DistColumnIndices returns the columns rows are hash-partitioned by.
// Empty for a single-worker distribution.
func (d Distribution) DistColumnIndices() opt.ColList {
	return d.Cols
}

// Equals returns true if the two distributions are identical.
func (d Distribution) Equals(rhs Distribution) bool {
	if d.Kind != rhs.Kind || len(d.Cols) != len(rhs.Cols) {
		return false
	}
	for i := range d.Cols {
		if d.Cols[i] != rhs.Cols[i] {
			return false
		}
	}
	return true
}

func (d Distribution) String() string {
	var buf bytes.Buffer
	d.format(&buf)
	return buf.String()
}

func (d Distribution) format(buf *bytes.Buffer) {
	switch d.Kind {
	case SingleDist:
		buf.WriteString("single")
	case HashShardDist:
		buf.WriteString("hash")
		formatCols(buf, d.Cols)
	default:
		fmt.Fprintf(buf, "invalid(%d)", d.Kind)
	}
}

// RequiredDistKind classifies a distribution requirement.
type RequiredDistKind uint8

const (
	// AnyRequired accepts any distribution.
	AnyRequired RequiredDistKind = iota
	// SingleRequired requires all rows on one worker.
	SingleRequired
	// ShardByKeyRequired is a logical sharding request: rows must be
	// hash-partitioned by some non-empty subset of the given key columns.
	// The worker count is not yet resolved.
	ShardByKeyRequired
	// PhysicalRequired requires one exact physically-bound distribution.
	PhysicalRequired
)

// RequiredDist describes the distribution an input must satisfy before it
// can feed a consumer. It is a value type; the zero value is AnyRequired.
type RequiredDist struct {
	kind RequiredDistKind
	cols opt.ColSet   // ShardByKeyRequired
	dist Distribution // PhysicalRequired
}

// AnyDist returns the unconstrained requirement.
func AnyDist() RequiredDist {
	return RequiredDist{kind: AnyRequired}
}

// SingleRequirement returns the single-worker requirement.
func SingleRequirement() RequiredDist {
	return RequiredDist{kind: SingleRequired}
}

// ShardByKey returns a requirement that rows be hash-partitioned by a
// non-empty subset of the given key columns.
func ShardByKey(key opt.ColSet) RequiredDist {
	return RequiredDist{kind: ShardByKeyRequired, cols: key.Copy()}
}

// PhysicalDist returns a requirement for one exact distribution.
func PhysicalDist(d Distribution) RequiredDist {
	return RequiredDist{kind: PhysicalRequired, dist: d}
}

// Kind returns the requirement's kind.
func (r RequiredDist) Kind() RequiredDistKind {
	return r.kind
}

// IsAny returns true for the unconstrained requirement.
func (r RequiredDist) IsAny() bool {
	return r.kind == AnyRequired
}

// IsShardByKey returns true for a logical shard-by-key request.
func (r RequiredDist) IsShardByKey() bool {
	return r.kind == ShardByKeyRequired
}

// IsPhysicalHashShard returns true for a physically-bound hash-shard
// requirement.
func (r RequiredDist) IsPhysicalHashShard() bool {
	return r.kind == PhysicalRequired && r.dist.Kind == HashShardDist
}

// KeyCols returns the key column set of a ShardByKeyRequired requirement.
func (r RequiredDist) KeyCols() opt.ColSet {
	return r.cols
}

// Physical returns the exact distribution of a PhysicalRequired requirement.
func (r RequiredDist) Physical() Distribution {
	return r.dist
}

// IsSatisfiedBy returns true if a stage providing the given distribution
// needs no redistribution to meet this requirement.
func (r RequiredDist) IsSatisfiedBy(d Distribution) bool {
	switch r.kind {
	case AnyRequired:
		return true
	case SingleRequired:
		return d.Kind == SingleDist
	case ShardByKeyRequired:
		// Any non-empty hash key drawn from the requested set routes rows of
		// the same key to the same worker.
		if d.Kind != HashShardDist || len(d.Cols) == 0 {
			return false
		}
		for _, col := range d.Cols {
			if !r.cols.Contains(col) {
				return false
			}
		}
		return true
	case PhysicalRequired:
		return d.Equals(r.dist)
	default:
		return false
	}
}

// TargetDistribution returns the concrete distribution that a
// redistribution stage should produce to satisfy this requirement. The
// requirement must not be AnyRequired.
func (r RequiredDist) TargetDistribution() Distribution {
	switch r.kind {
	case SingleRequired:
		return Single()
	case ShardByKeyRequired:
		return HashShard(r.cols.ToList())
	case PhysicalRequired:
		return r.dist
	default:
		panic(fmt.Sprintf("no target distribution for requirement kind %d", r.kind))
	}
}

func (r RequiredDist) String() string {
	var buf bytes.Buffer
	switch r.kind {
	case AnyRequired:
		buf.WriteString("any")
	case SingleRequired:
		buf.WriteString("single")
	case ShardByKeyRequired:
		buf.WriteString("shard-by-key")
		formatCols(&buf, r.cols.ToList())
	case PhysicalRequired:
		r.dist.format(&buf)
	}
	return buf.String()
}

func formatCols(buf *bytes.Buffer, cols opt.ColList) {
	buf.WriteByte('(')
	for i, col := range cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, "%d", col)
	}
	buf.WriteByte(')')
}
