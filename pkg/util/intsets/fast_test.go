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

package intsets

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func TestFast(t *testing.T) {
	for _, mVal := range []int{1, 8, 30, smallCutoff, 2 * smallCutoff, 4 * smallCutoff} {
		m := mVal
		t.Run(fmt.Sprintf("%d", m), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(m)))
			in := make([]bool, m)
			forEachRes := make([]bool, m)

			var s Fast
			for i := 0; i < 1000; i++ {
				v := rng.Intn(m)
				if rng.Intn(2) == 0 {
					in[v] = true
					s.Add(v)
				} else {
					in[v] = false
					s.Remove(v)
				}
				empty := true
				for j := 0; j < m; j++ {
					empty = empty && !in[j]
					if in[j] != s.Contains(j) {
						t.Fatalf("incorrect result for Contains(%d), expected %t", j, in[j])
					}
				}
				if empty != s.Empty() {
					t.Fatalf("incorrect result for Empty(), expected %t", empty)
				}
				// Test ForEach.
				for j := range forEachRes {
					forEachRes[j] = false
				}
				s.ForEach(func(j int) {
					forEachRes[j] = true
				})
				for j := 0; j < m; j++ {
					if in[j] != forEachRes[j] {
						t.Fatalf("incorrect ForEach result for %d (%t, expected %t)", j, forEachRes[j], in[j])
					}
				}
				// Cross-check Ordered and Next().
				var vals []int
				for i, ok := s.Next(0); ok; i, ok = s.Next(i + 1) {
					vals = append(vals, i)
				}
				if o := s.Ordered(); !reflect.DeepEqual(vals, o) {
					t.Fatalf("set built with Next doesn't match Ordered: %v vs %v", vals, o)
				}
				if s.Len() != len(vals) {
					t.Fatalf("Len() = %d, expected %d", s.Len(), len(vals))
				}
			}
		})
	}
}

func TestFastSetOps(t *testing.T) {
	a := MakeFast(1, 2, 3, 70)
	b := MakeFast(2, 3, 4, 70, 71)

	if got := a.Union(b); !got.Equals(MakeFast(1, 2, 3, 4, 70, 71)) {
		t.Errorf("incorrect union: %s", got)
	}
	if got := a.Intersection(b); !got.Equals(MakeFast(2, 3, 70)) {
		t.Errorf("incorrect intersection: %s", got)
	}
	if got := a.Difference(b); !got.Equals(MakeFast(1)) {
		t.Errorf("incorrect difference: %s", got)
	}
	if !a.Intersects(b) {
		t.Error("expected Intersects to be true")
	}
	if a.SubsetOf(b) {
		t.Error("expected SubsetOf to be false")
	}
	if !MakeFast(2, 70).SubsetOf(a) {
		t.Error("expected SubsetOf to be true")
	}

	// Copies must be independent of the original.
	c := a.Copy()
	c.Add(100)
	if a.Contains(100) {
		t.Error("Copy aliases the original set")
	}
}

func TestFastString(t *testing.T) {
	testcases := []struct {
		vals []int
		exp  string
	}{
		{vals: nil, exp: "()"},
		{vals: []int{5}, exp: "(5)"},
		{vals: []int{0, 1, 2, 5, 6, 10}, exp: "(0-2,5,6,10)"},
		{vals: []int{1, 2, 70, 71, 72}, exp: "(1,2,70-72)"},
	}
	for _, tc := range testcases {
		if got := MakeFast(tc.vals...).String(); got != tc.exp {
			t.Errorf("%v: expected %s, got %s", tc.vals, tc.exp, got)
		}
	}
}
