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

package props

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cascadedb/cascade/pkg/sql/opt"
)

func TestFuncDepSet_ComputeClosure(t *testing.T) {
	// Columns: 0, 1, 2, 3 with 1-->0 and (0,2)-->3.
	fd := MakeFuncDepSet(opt.MakeColSet(0, 1, 2, 3))
	fd.AddDependency(opt.MakeColSet(1), opt.MakeColSet(0))
	fd.AddDependency(opt.MakeColSet(0, 2), opt.MakeColSet(3))

	testcases := []struct {
		cols opt.ColSet
		exp  opt.ColSet
	}{
		{cols: opt.MakeColSet(), exp: opt.MakeColSet()},
		{cols: opt.MakeColSet(1), exp: opt.MakeColSet(0, 1)},
		{cols: opt.MakeColSet(0, 2), exp: opt.MakeColSet(0, 2, 3)},
		// Transitive: 1-->0, then (0,2)-->3.
		{cols: opt.MakeColSet(1, 2), exp: opt.MakeColSet(0, 1, 2, 3)},
		{cols: opt.MakeColSet(3), exp: opt.MakeColSet(3)},
	}
	for _, tc := range testcases {
		require.True(t, fd.ComputeClosure(tc.cols).Equals(tc.exp),
			"closure of %s: expected %s, got %s", tc.cols, tc.exp, fd.ComputeClosure(tc.cols))
	}
}

func TestFuncDepSet_ColsAreStrictKey(t *testing.T) {
	fd := MakeFuncDepSet(opt.MakeColSet(0, 1, 2))
	fd.AddDependency(opt.MakeColSet(1, 2), opt.MakeColSet(0))

	require.False(t, fd.ColsAreStrictKey(opt.MakeColSet(1)))
	require.False(t, fd.ColsAreStrictKey(opt.MakeColSet(2)))
	require.True(t, fd.ColsAreStrictKey(opt.MakeColSet(1, 2)))
	// The full column set trivially determines every other column.
	require.True(t, fd.ColsAreStrictKey(opt.MakeColSet(0, 1, 2)))
}

func TestFuncDepSet_ReduceCols(t *testing.T) {
	fd := MakeFuncDepSet(opt.MakeColSet(0, 1, 2, 3))
	fd.AddStrictKey(opt.MakeColSet(1))

	// Column 1 alone is a key, so everything else is redundant.
	reduced := fd.ReduceCols(opt.MakeColSet(0, 1, 2))
	require.True(t, reduced.Equals(opt.MakeColSet(1)), "got %s", reduced)

	// No dependency lets either of (1, 2) go once the other is removed.
	fd2 := MakeFuncDepSet(opt.MakeColSet(0, 1, 2))
	fd2.AddDependency(opt.MakeColSet(1, 2), opt.MakeColSet(0))
	reduced2 := fd2.ReduceCols(opt.MakeColSet(1, 2))
	require.True(t, reduced2.Equals(opt.MakeColSet(1, 2)), "got %s", reduced2)
}

func TestCardinality(t *testing.T) {
	require.True(t, AnyCardinality.IsUnknown())
	require.True(t, AnyCardinality.IsUnbounded())

	c := Cardinality{Min: 0, Max: 1500000}
	require.False(t, c.IsUnknown())
	require.Equal(t, "[0 - 1,500,000]", c.String())
	require.Equal(t, "[10 - ]", Cardinality{Min: 10, Max: AnyCardinality.Max}.String())
}
