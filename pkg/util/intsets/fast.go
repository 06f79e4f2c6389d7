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

// Package intsets provides set structures for non-negative integers
// optimized for the small sets that dominate plan-level column sets.
package intsets

import (
	"bytes"
	"fmt"
	"math/bits"
	"sort"
)

// smallCutoff is the size of the fast bitmap; values in [0, smallCutoff)
// are stored inline without allocation.
const smallCutoff = 64

// Fast keeps track of a set of non-negative integers. It is optimized for
// sets with small elements: values below smallCutoff live in an inline
// bitmap and incur no allocations.
//
// Fast is a value type with reference semantics for the (rare) large
// spill; use Copy to obtain an independent set.
type Fast struct {
	small uint64
	large map[int]struct{}
}

// MakeFast returns a set initialized with the given values.
func MakeFast(vals ...int) Fast {
	var s Fast
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add adds a value to the set. No-op if the value is already in the set.
func (s *Fast) Add(i int) {
	if i < 0 {
		panic(fmt.Sprintf("cannot add negative value %d to set", i))
	}
	if i < smallCutoff {
		s.small |= 1 << uint64(i)
		return
	}
	if s.large == nil {
		s.large = make(map[int]struct{})
	}
	s.large[i] = struct{}{}
}

// Remove removes a value from the set. No-op if the value is not in the set.
func (s *Fast) Remove(i int) {
	if i < 0 {
		return
	}
	if i < smallCutoff {
		s.small &^= 1 << uint64(i)
		return
	}
	delete(s.large, i)
}

// Contains returns true if the set contains the value.
func (s Fast) Contains(i int) bool {
	if i < 0 {
		return false
	}
	if i < smallCutoff {
		return s.small&(1<<uint64(i)) != 0
	}
	_, ok := s.large[i]
	return ok
}

// Empty returns true if the set is empty.
func (s Fast) Empty() bool {
	return s.small == 0 && len(s.large) == 0
}

// Len returns the number of the elements in the set.
func (s Fast) Len() int {
	return bits.OnesCount64(s.small) + len(s.large)
}

// Next returns the first value in the set which is >= startVal. If there is
// no value, the second return value is false.
func (s Fast) Next(startVal int) (int, bool) {
	if startVal < 0 {
		startVal = 0
	}
	if startVal < smallCutoff {
		if rest := s.small >> uint64(startVal); rest != 0 {
			return startVal + bits.TrailingZeros64(rest), true
		}
		startVal = smallCutoff
	}
	found := -1
	for v := range s.large {
		if v >= startVal && (found == -1 || v < found) {
			found = v
		}
	}
	if found == -1 {
		return -1, false
	}
	return found, true
}

// ForEach calls a function for each value in the set (in increasing order).
func (s Fast) ForEach(f func(i int)) {
	for v := s.small; v != 0; {
		i := bits.TrailingZeros64(v)
		f(i)
		v &^= 1 << uint(i)
	}
	if len(s.large) > 0 {
		vals := make([]int, 0, len(s.large))
		for v := range s.large {
			vals = append(vals, v)
		}
		sort.Ints(vals)
		for _, v := range vals {
			f(v)
		}
	}
}

// Ordered returns a slice with all the integers in the set, in increasing
// order.
func (s Fast) Ordered() []int {
	if s.Empty() {
		return nil
	}
	result := make([]int, 0, s.Len())
	s.ForEach(func(i int) {
		result = append(result, i)
	})
	return result
}

// Copy returns a copy of s which can be modified independently.
func (s Fast) Copy() Fast {
	var c Fast
	c.small = s.small
	if len(s.large) > 0 {
		c.large = make(map[int]struct{}, len(s.large))
		for v := range s.large {
			c.large[v] = struct{}{}
		}
	}
	return c
}

// CopyFrom sets the receiver to a copy of rhs, which can then be modified
// independently.
func (s *Fast) CopyFrom(rhs Fast) {
	*s = rhs.Copy()
}

// UnionWith adds all the elements from rhs to this set.
func (s *Fast) UnionWith(rhs Fast) {
	s.small |= rhs.small
	for v := range rhs.large {
		s.Add(v)
	}
}

// Union returns the union of s and rhs as a new set.
func (s Fast) Union(rhs Fast) Fast {
	r := s.Copy()
	r.UnionWith(rhs)
	return r
}

// IntersectionWith removes any elements not in rhs from this set.
func (s *Fast) IntersectionWith(rhs Fast) {
	s.small &= rhs.small
	for v := range s.large {
		if !rhs.Contains(v) {
			delete(s.large, v)
		}
	}
}

// Intersection returns the intersection of s and rhs as a new set.
func (s Fast) Intersection(rhs Fast) Fast {
	r := s.Copy()
	r.IntersectionWith(rhs)
	return r
}

// Intersects returns true if s has any elements in common with rhs.
func (s Fast) Intersects(rhs Fast) bool {
	if s.small&rhs.small != 0 {
		return true
	}
	for v := range s.large {
		if rhs.Contains(v) {
			return true
		}
	}
	return false
}

// DifferenceWith removes any elements in rhs from this set.
func (s *Fast) DifferenceWith(rhs Fast) {
	s.small &^= rhs.small
	for v := range rhs.large {
		s.Remove(v)
	}
}

// Difference returns the elements of s that are not in rhs as a new set.
func (s Fast) Difference(rhs Fast) Fast {
	r := s.Copy()
	r.DifferenceWith(rhs)
	return r
}

// SubsetOf returns true if rhs contains all the elements in s.
func (s Fast) SubsetOf(rhs Fast) bool {
	if s.small&rhs.small != s.small {
		return false
	}
	for v := range s.large {
		if !rhs.Contains(v) {
			return false
		}
	}
	return true
}

// Equals returns true if the two sets are identical.
func (s Fast) Equals(rhs Fast) bool {
	return s.small == rhs.small && len(s.large) == len(rhs.large) && s.SubsetOf(rhs)
}

// String returns a list representation of elements. Sequential runs of
// possible values are shown as ranges. For example, for the set {0, 1, 2, 5,
// 6, 10}, the output is "(0-2,5,6,10)".
func (s Fast) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	appendRange := func(start, end int) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if start == end {
			fmt.Fprintf(&buf, "%d", start)
		} else if start+1 == end {
			fmt.Fprintf(&buf, "%d,%d", start, end)
		} else {
			fmt.Fprintf(&buf, "%d-%d", start, end)
		}
	}
	rangeStart, rangeEnd := -1, -1
	s.ForEach(func(i int) {
		if rangeStart != -1 && rangeEnd == i-1 {
			rangeEnd = i
		} else {
			if rangeStart != -1 {
				appendRange(rangeStart, rangeEnd)
			}
			rangeStart, rangeEnd = i, i
		}
	})
	if rangeStart != -1 {
		appendRange(rangeStart, rangeEnd)
	}
	buf.WriteByte(')')
	return buf.String()
}
