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
	"bytes"
	"fmt"

	"github.com/cascadedb/cascade/pkg/sql/opt"
)

// funcDep stores a single functional dependency: the "from" column set
// uniquely determines the value of every column in the "to" set.
type funcDep struct {
	from opt.ColSet
	to   opt.ColSet
}

// FuncDepSet is a set of functional dependencies for the output of a stream
// plan stage. It answers the question central to key derivation: does a
// candidate column set determine every other column of the row?
//
// The set tracks the full output column set of the stage so that strict-key
// tests do not need the caller to re-supply it.
type FuncDepSet struct {
	all  opt.ColSet
	deps []funcDep
}

// MakeFuncDepSet returns a dependency set over the given output columns,
// with no dependencies yet.
func MakeFuncDepSet(allCols opt.ColSet) FuncDepSet {
	return FuncDepSet{all: allCols}
}

// AllCols returns the output column set the dependencies range over.
func (f *FuncDepSet) AllCols() opt.ColSet {
	return f.all
}

// AddDependency adds a functional dependency: from determines to. Both
// sides must be subsets of the output columns.
func (f *FuncDepSet) AddDependency(from, to opt.ColSet) {
	if !from.SubsetOf(f.all) || !to.SubsetOf(f.all) {
		panic(fmt.Sprintf("dependency %s-->%s not contained in %s", from, to, f.all))
	}
	if to.SubsetOf(from) {
		// Trivial dependency.
		return
	}
	f.deps = append(f.deps, funcDep{from: from.Copy(), to: to.Difference(from)})
}

// AddStrictKey registers the given columns as a strict key: they determine
// all other output columns.
func (f *FuncDepSet) AddStrictKey(key opt.ColSet) {
	f.AddDependency(key, f.all)
}

// ComputeClosure returns the column set that is functionally determined by
// the given columns: the fixpoint of repeatedly applying every dependency
// whose determinant is already in the closure.
func (f *FuncDepSet) ComputeClosure(cols opt.ColSet) opt.ColSet {
	closure := cols.Copy()
	for {
		grew := false
		for i := range f.deps {
			dep := &f.deps[i]
			if dep.from.SubsetOf(closure) && !dep.to.SubsetOf(closure) {
				closure.UnionWith(dep.to)
				grew = true
			}
		}
		if !grew {
			return closure
		}
	}
}

// ColsAreStrictKey returns true if the given columns functionally determine
// every other output column.
func (f *FuncDepSet) ColsAreStrictKey(cols opt.ColSet) bool {
	return f.all.SubsetOf(f.ComputeClosure(cols))
}

// ReduceCols removes redundant columns from the given strict key: a column
// is dropped if the remaining columns still form a strict key. The result
// is a minimal determining subset (minimal with respect to removal, not
// globally minimum). The caller must pass a strict key.
func (f *FuncDepSet) ReduceCols(cols opt.ColSet) opt.ColSet {
	reduced := cols.Copy()
	cols.ForEach(func(col opt.ColumnID) {
		reduced.Remove(col)
		if !f.ColsAreStrictKey(reduced) {
			reduced.Add(col)
		}
	})
	return reduced
}

func (f *FuncDepSet) String() string {
	var buf bytes.Buffer
	for i := range f.deps {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s-->%s", f.deps[i].from, f.deps[i].to)
	}
	return buf.String()
}
