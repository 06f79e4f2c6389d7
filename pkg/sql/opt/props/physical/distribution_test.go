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

package physical

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cascadedb/cascade/pkg/sql/opt"
)

func TestRequiredDist_IsSatisfiedBy(t *testing.T) {
	testcases := []struct {
		required RequiredDist
		provided Distribution
		exp      bool
	}{
		{required: AnyDist(), provided: Single(), exp: true},
		{required: AnyDist(), provided: HashShard(opt.ColList{1}), exp: true},

		{required: SingleRequirement(), provided: Single(), exp: true},
		{required: SingleRequirement(), provided: HashShard(opt.ColList{1}), exp: false},

		// Any non-empty hash key drawn from the requested key set satisfies a
		// shard-by-key request.
		{required: ShardByKey(opt.MakeColSet(1, 2)), provided: HashShard(opt.ColList{1, 2}), exp: true},
		{required: ShardByKey(opt.MakeColSet(1, 2)), provided: HashShard(opt.ColList{2}), exp: true},
		{required: ShardByKey(opt.MakeColSet(1, 2)), provided: HashShard(opt.ColList{0, 1}), exp: false},
		{required: ShardByKey(opt.MakeColSet(1, 2)), provided: Single(), exp: false},

		{required: PhysicalDist(HashShard(opt.ColList{0})), provided: HashShard(opt.ColList{0}), exp: true},
		{required: PhysicalDist(HashShard(opt.ColList{0})), provided: HashShard(opt.ColList{0, 1}), exp: false},
		{required: PhysicalDist(Single()), provided: Single(), exp: true},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.exp, tc.required.IsSatisfiedBy(tc.provided),
			"required %s, provided %s", tc.required, tc.provided)
	}
}

func TestRequiredDist_TargetDistribution(t *testing.T) {
	require.Equal(t, Single(), SingleRequirement().TargetDistribution())

	target := ShardByKey(opt.MakeColSet(2, 1)).TargetDistribution()
	require.Equal(t, HashShardDist, target.Kind)
	require.Equal(t, opt.ColList{1, 2}, target.Cols)

	d := HashShard(opt.ColList{3})
	require.True(t, PhysicalDist(d).TargetDistribution().Equals(d))

	require.Panics(t, func() { AnyDist().TargetDistribution() })
}

func TestDistributionString(t *testing.T) {
	require.Equal(t, "single", Single().String())
	require.Equal(t, "hash(1,2)", HashShard(opt.ColList{1, 2}).String())
	require.Equal(t, "any", AnyDist().String())
	require.Equal(t, "shard-by-key(1,2)", ShardByKey(opt.MakeColSet(2, 1)).String())
}
