// Copyright rvzk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package trace implements the column-schema and trace-table core described
// by the prover: a fixed layout of named, fixed-width column groups backed
// by one contiguous flat column table, with row-random-access writes and
// conversion to commitment-order evaluations.
package trace

import "fmt"

// Group is a single named, fixed-width column group within a schema. Width
// is a compile-time constant for any given schema; Schema derives each
// group's offset as a prefix sum over the declared widths.
type Group struct {
	Name  string
	Width uint
}

// Schema is a closed, ordered enumeration of column groups sharing one flat
// column table. Mismatch between a caller-supplied width and a group's
// declared width is a programmer error, detected by assertion at every
// access site (see Schema.checkSize).
type Schema struct {
	groups  []Group
	offsets map[string]uint
	sizes   map[string]uint
	order   []string
	total   uint
}

// NewSchema constructs a schema from an ordered list of groups. Offsets are
// strictly increasing in declaration order and no two groups overlap.
func NewSchema(groups ...Group) Schema {
	offsets := make(map[string]uint, len(groups))
	sizes := make(map[string]uint, len(groups))
	order := make([]string, len(groups))

	var total uint

	for i, g := range groups {
		if _, ok := sizes[g.Name]; ok {
			panic(fmt.Sprintf("schema: duplicate column group %q", g.Name))
		}

		offsets[g.Name] = total
		sizes[g.Name] = g.Width
		order[i] = g.Name
		total += g.Width
	}

	return Schema{groups: groups, offsets: offsets, sizes: sizes, order: order, total: total}
}

// Offset returns the starting cell index inside the flat column table for
// the named group. Panics if the group does not exist in this schema.
func (s Schema) Offset(name string) uint {
	off, ok := s.offsets[name]
	if !ok {
		panic(fmt.Sprintf("schema: no such column group %q", name))
	}

	return off
}

// Size returns the declared width, in F-cells, of the named group.
func (s Schema) Size(name string) uint {
	w, ok := s.sizes[name]
	if !ok {
		panic(fmt.Sprintf("schema: no such column group %q", name))
	}

	return w
}

// Width returns COLUMNS_NUM, the total number of F-cells spanned by this
// schema (the sum of all group widths).
func (s Schema) Width() uint {
	return s.total
}

// Groups returns the ordered list of groups making up this schema. The
// order returned is the declaration order, which is also the order the row
// evaluator consumes interaction masks in (see pkg/air).
func (s Schema) Groups() []Group {
	return s.groups
}

// checkSize is the explicit assertion every access site must perform:
// a caller-supplied N must equal the group's declared width.
func (s Schema) checkSize(name string, n uint) {
	if got := s.Size(name); got != n {
		panic(fmt.Sprintf("schema: column %q has width %d, but caller supplied %d", name, got, n))
	}
}
